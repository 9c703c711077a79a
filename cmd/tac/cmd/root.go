// Package cmd implements the tac command-line driver: the thin
// external collaborator that wires standard input and output to the
// compiler pipeline. It is not part of the core translation engine.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-tac/internal/compiler"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "tac",
	Short: "Translate a block-structured source program to three-address code",
	Long: `tac reads a complete program on standard input and writes its
three-address code translation on standard output.

The language is block-structured: nested "{ }" scopes hold
declarations (int, float, char, bool, and fixed-length arrays of
these) followed by statements (assignment, if/else, while, do/while,
break, and nested blocks). Boolean expressions are translated with
short-circuit jump code; the output uses symbolic labels (L1, L2, …)
and compiler-generated temporaries (t1, t2, …).

There are no flags: the entire program is read from stdin and the
entire translation is written to stdout.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		if err := compiler.Compile(c.InOrStdin(), c.OutOrStdout()); err != nil {
			return err
		}
		return nil
	},
}

// Execute runs the root command, printing any returned error to
// stderr in the one-line form the CLI contract promises.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tac: %v\n", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}
