package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"msalsa/internal/validation"
	"msalsa/pkg/residue"
)

// ErrInvalidInput is returned when at least one input fails validation.
var ErrInvalidInput = errors.New("invalid sequence input")

func newValidateCommand() *cobra.Command {
	var asHTML bool
	alphabet := residue.Protein()
	long := fmt.Sprintf("Validate FASTA sequences against the protein alphabet.\n\n"+
		"Each record needs a '>' header line. Sequence lines may only use the %d residue codes %s. "+
		"Use - to read from stdin.", alphabet.Len(), alphabet.String())
	cmd := &cobra.Command{
		Use:   "validate [file...]",
		Short: "Validate FASTA sequences against the protein alphabet",
		Long:  long,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			validator := validation.New()
			failed := false
			for _, path := range args {
				input, err := readInput(cmd, path)
				if err != nil {
					return err
				}
				if !report(cmd, validator, path, input, asHTML) {
					failed = true
				}
			}
			if failed {
				return ErrInvalidInput
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asHTML, "html", false, "print the HTML report shown by the web form")
	return cmd
}

func report(cmd *cobra.Command, validator *validation.Validator, name, input string, asHTML bool) bool {
	out := cmd.OutOrStdout()
	result := validator.Validate(input)
	if result == nil {
		fmt.Fprintf(out, "%s: ok\n", name)
		return true
	}

	if asHTML {
		fmt.Fprintln(out, result.HTML())
		return false
	}
	for _, msg := range result.Messages() {
		fmt.Fprintf(out, "%s: %s\n", name, msg)
	}
	return false
}
