package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"msalsa/internal/annotate"
	"msalsa/pkg/residue"
)

// Same palette as the page stylesheet.
var polarityStyles = map[residue.Polarity]lipgloss.Style{
	residue.NonPolar:    lipgloss.NewStyle().Background(lipgloss.Color("#ffd966")).Foreground(lipgloss.Color("#000000")),
	residue.AcidicPolar: lipgloss.NewStyle().Background(lipgloss.Color("#f4a6a6")).Foreground(lipgloss.Color("#000000")),
	residue.BasicPolar:  lipgloss.NewStyle().Background(lipgloss.Color("#9fc5e8")).Foreground(lipgloss.Color("#000000")),
	residue.Polar:       lipgloss.NewStyle().Background(lipgloss.Color("#b6d7a8")).Foreground(lipgloss.Color("#000000")),
}

func newColorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "colors [file]",
		Short: "Print an alignment with residues colored by polarity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), RenderTerminal(residue.Standard(), content))
			return nil
		},
	}
}

// RenderTerminal styles each polarity run for a terminal. Line breaks are kept
// outside the styled runs so backgrounds do not bleed across lines.
func RenderTerminal(table *residue.Table, content string) string {
	var b strings.Builder
	for _, run := range annotate.Runs(table, content) {
		style, ok := polarityStyles[run.Class]
		if !ok {
			b.WriteString(run.Text)
			continue
		}
		b.WriteString(style.Render(run.Text))
	}
	return b.String()
}
