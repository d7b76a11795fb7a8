//go:build isolang_list

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/humenda/isolang"
)

func init() {
	rootCmd.AddCommand(newListCommand())
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "List every language in the table",
		SilenceUsage: true,
		RunE:         runList,
	}
}

func runList(cmd *cobra.Command, _ []string) error {
	out := newOutputFormatter(cmd)

	if out.jsonMode {
		records := make([]languageRecord, 0, 8192)
		for l := range isolang.All() {
			records = append(records, newLanguageRecord(l))
		}
		return out.printJSON(records)
	}

	w := tabwriter.NewWriter(out.out, 0, 0, 2, ' ', 0)
	for l := range isolang.All() {
		rec := newLanguageRecord(l)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", rec.Code3, rec.Code1, rec.Name, rec.Autonym)
	}
	return w.Flush()
}
