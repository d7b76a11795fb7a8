// Command isolang converts between ISO 639 language codes and names on
// the command line. It is a thin wrapper around the isolang package; the
// list and export subcommands are compiled in only when the library is
// built with the isolang_list tag.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/humenda/isolang/internal/version"
)

// rootCmd is built during package variable initialization so that the
// tag-gated subcommand files can register themselves from init().
var rootCmd = newRootCommand()

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "isolang",
		Short: "Convert between ISO 639 language codes and names",
	}
	cmd.Version = version.FormatVersion(version.String())
	cmd.SetVersionTemplate("{{printf \"%s\\n\" .Version}}")

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")

	cmd.AddCommand(newLookupCommand())
	return cmd
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
