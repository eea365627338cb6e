// Command awkrtctl is a small operator CLI over the awkrt intrinsic
// catalog and runtime: dump the registered symbol table, exercise
// field-splitting and record-pattern operations against ad-hoc input
// without going through a real JIT caller, and self-test a built
// cmd/abiexport archive by compiling and running a tiny C probe
// against it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	jsonOut bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:     "awkrtctl",
	Short:   "Inspect and exercise the awkrt intrinsic runtime",
	Long:    `awkrtctl is an operator tool for the awkrt C-ABI intrinsic runtime: it dumps the registered symbol catalog, exercises field/pattern/map operations directly, and self-tests a built cmd/abiexport archive.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printErr(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
