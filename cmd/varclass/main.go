// Command varclass classifies genetic variants under the ACMG/AMP
// evidence framework, from the command line or as an HTTP service.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "varclass",
		Short: "ACMG/AMP variant pathogenicity classification",
		Long: `varclass evaluates genetic variant evidence against the ACMG/AMP
criteria and produces a five-tier pathogenicity classification with
per-criterion rationale, conflict detection, and an optional
computational metascore.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	root.AddCommand(
		newClassifyCommand(),
		newServeCommand(),
		newCriteriaCommand(),
	)
	return root
}
