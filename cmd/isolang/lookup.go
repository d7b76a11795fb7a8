package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/humenda/isolang"
)

func newLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <code-or-name>",
		Short: "Resolve a language code or name to its full entry",
		Long: `Resolve a language identifier of unspecified kind to its full entry.

The argument is tried as an ISO 639-1 code, then an ISO 639-3 code, then
an English name and finally an autonym (the latter two only in builds
that compile those capabilities in).`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         runLookup,
	}
}

func runLookup(cmd *cobra.Command, args []string) error {
	l, ok := isolang.FromString(args[0])
	if !ok {
		return fmt.Errorf("unknown language %q", args[0])
	}

	out := newOutputFormatter(cmd)
	rec := newLanguageRecord(l)
	if out.jsonMode {
		return out.printJSON(rec)
	}

	w := tabwriter.NewWriter(out.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ISO 639-3:\t%s\n", rec.Code3)
	if rec.Code1 != "" {
		fmt.Fprintf(w, "ISO 639-1:\t%s\n", rec.Code1)
	}
	if rec.Name != "" {
		fmt.Fprintf(w, "Name:\t%s\n", rec.Name)
	}
	if rec.Autonym != "" {
		fmt.Fprintf(w, "Autonym:\t%s\n", rec.Autonym)
	}
	return w.Flush()
}
