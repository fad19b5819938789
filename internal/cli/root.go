// Package cli is the offline command line front end: it validates FASTA files
// and previews polarity coloring without running the web server.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the msalsa-check command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "msalsa-check",
		Short: "Check protein sequences before submitting them for alignment",
		Long: `msalsa-check runs the same sequence validation as the web form and can
preview residue polarity coloring in the terminal.

Examples:
  # Validate a FASTA file
  msalsa-check validate sequences.fasta

  # Validate from stdin and print the HTML report the page would show
  cat sequences.fasta | msalsa-check validate --html -

  # Show residues colored by polarity
  msalsa-check colors alignment.aln`,
		SilenceUsage: true,
	}
	root.AddCommand(newValidateCommand(), newColorsCommand())
	return root
}
