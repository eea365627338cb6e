package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"awkrt/pkg/catalog"
)

func init() {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the registered intrinsic catalog",
	}
	cmd.AddCommand(newCatalogDumpCmd())
	rootCmd.AddCommand(cmd)
}

func newCatalogDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "List every registered intrinsic and its signature",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := catalog.Default()
			names := c.Names()

			if jsonOut {
				type entry struct {
					Name   string   `json:"name"`
					Params []string `json:"params"`
					Return string   `json:"return"`
				}
				out := make([]entry, 0, len(names))
				for _, name := range names {
					it, _ := c.Lookup(name)
					params := make([]string, len(it.Sig.Params))
					for i, p := range it.Sig.Params {
						params[i] = p.String()
					}
					out = append(out, entry{Name: name, Params: params, Return: it.Sig.Return.String()})
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			defer w.Flush()
			fmt.Fprintln(w, "NAME\tPARAMS\tRETURN")
			for _, name := range names {
				it, _ := c.Lookup(name)
				fmt.Fprintf(w, "%s\t%v\t%s\n", name, it.Sig.Params, it.Sig.Return)
			}
			return nil
		},
	}
}
