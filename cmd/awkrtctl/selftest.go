package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"
)

// probeSource is a minimal C program exercising a handful of
// cmd/abiexport's exported symbols directly, the same way JIT-emitted
// code would: create a runtime, round-trip a string through
// int_to_str/str_to_int, and tear the runtime down. It prints "OK" and
// exits 0 on success.
const probeSource = `
#include <stdint.h>
#include <stdio.h>
#include "libawkabi.h"

int main(void) {
    uint64_t rt = awk_runtime_new();

    AwkStr s = awk_int_to_str(42);
    int64_t back = awk_str_to_int(&s);
    if (back != 42) {
        fprintf(stderr, "round trip mismatch: got %lld\n", (long long)back);
        return 1;
    }
    awk_drop_str(&s);

    awk_runtime_close(rt);
    printf("OK\n");
    return 0;
}
`

// newSelftestCmd compiles probeSource against a cmd/abiexport c-archive
// (built separately via `go build -buildmode=c-archive`) and runs it,
// the same gcc-tempdir-and-run recipe a JIT compiler uses to execute
// its own generated C against an embedded or external runtime.
func newSelftestCmd() *cobra.Command {
	var archiveDir string
	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Compile and run a C probe against a built abiexport archive",
		Long: `selftest expects archiveDir to contain libawkabi.a and libawkabi.h,
produced by running:

    go build -buildmode=c-archive -o libawkabi.a ./cmd/abiexport

from the module root. It compiles a small C probe against that archive
and runs it, verifying the exported symbols link and behave.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := exec.LookPath("gcc"); err != nil {
				return fmt.Errorf("selftest requires gcc on PATH: %w", err)
			}
			archive := filepath.Join(archiveDir, "libawkabi.a")
			header := filepath.Join(archiveDir, "libawkabi.h")
			for _, p := range []string{archive, header} {
				if _, err := os.Stat(p); err != nil {
					return fmt.Errorf("missing %s (build the archive first): %w", p, err)
				}
			}

			dir, err := os.MkdirTemp("", "awkrtctl_selftest_")
			if err != nil {
				return err
			}
			defer os.RemoveAll(dir)

			srcPath := filepath.Join(dir, "probe.c")
			if err := os.WriteFile(srcPath, []byte(probeSource), 0644); err != nil {
				return err
			}
			exePath := filepath.Join(dir, "probe")

			build := exec.Command("gcc", "-std=c99", "-pthread", "-O0",
				"-I", archiveDir,
				"-o", exePath,
				srcPath,
				archive,
			)
			if out, err := build.CombinedOutput(); err != nil {
				return fmt.Errorf("gcc compilation failed: %w\n%s", err, out)
			}

			run := exec.Command(exePath)
			out, err := run.CombinedOutput()
			if !quiet {
				fmt.Print(string(out))
			}
			if err != nil {
				return fmt.Errorf("probe execution failed: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&archiveDir, "archive-dir", ".", "directory containing libawkabi.a and libawkabi.h")
	return cmd
}

func init() {
	rootCmd.AddCommand(newSelftestCmd())
}
