package main

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"awkrt/pkg/record"
	"awkrt/pkg/regexcache"
	"awkrt/pkg/sharedmap"
	"awkrt/pkg/value"
)

func init() {
	rootCmd.AddCommand(newFieldsCmd())
	rootCmd.AddCommand(newSplitCmd())
}

// newFieldsCmd exercises get_col/set_col/NF against an ad-hoc line and
// FS, without a JIT caller or a cgo boundary in the loop — useful for
// spot-checking field-splitting behavior interactively.
func newFieldsCmd() *cobra.Command {
	var fs string
	cmd := &cobra.Command{
		Use:   "fields <line> <col...>",
		Short: "Split a line by FS and print the requested columns",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			line := args[0]
			fields := record.New()
			cache := regexcache.New()
			fsVal := value.FromString(fs)
			if _, err := fields.SetCol(cache, fsVal, 0, value.FromString(line)); err != nil {
				return err
			}
			nf, err := fields.EnsureSplit(cache, fsVal)
			if err != nil {
				return err
			}
			if !quiet {
				fmt.Printf("NF=%d\n", nf)
			}
			for _, colArg := range args[1:] {
				col, err := strconv.ParseInt(colArg, 10, 64)
				if err != nil {
					return fmt.Errorf("bad column %q: %w", colArg, err)
				}
				v, err := fields.GetCol(cache, fsVal, col)
				if err != nil {
					return err
				}
				fmt.Printf("$%d=%q\n", col, v.String())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&fs, "fs", " ", "field separator")
	return cmd
}

// newSplitCmd exercises split_int directly against the regex cache and
// prints the resulting token map in key order.
func newSplitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split <text> <pattern>",
		Short: "Split text on pattern the way split_int would",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cache := regexcache.New()
			dest := sharedmap.New[int64, value.Str]()
			n, err := cache.SplitToIntMap(value.FromString(args[0]), value.FromString(args[1]), dest)
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			for i := int64(1); i <= n; i++ {
				fmt.Fprintf(&buf, "[%d]=%q ", i, sharedmap.Lookup(dest, i).String())
			}
			fmt.Println(buf.String())
			return nil
		},
	}
	return cmd
}
