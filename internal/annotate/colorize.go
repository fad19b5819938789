package annotate

import (
	"strings"

	"msalsa/pkg/residue"
)

// Run is a maximal stretch of consecutive residues sharing a polarity class.
type Run struct {
	Class residue.Polarity
	Text  string
}

// Runs splits content into same-class runs, left to right.
func Runs(table *residue.Table, content string) []Run {
	var runs []Run
	start := 0
	var current residue.Polarity
	for i, r := range content {
		class := table.Class(r)
		if i == 0 {
			current = class
			continue
		}
		if class != current {
			runs = append(runs, Run{Class: current, Text: content[start:i]})
			start = i
			current = class
		}
	}
	if len(content) > 0 {
		runs = append(runs, Run{Class: current, Text: content[start:]})
	}
	return runs
}

// Colorize wraps each run of content in a span carrying its polarity class.
// Content is copied verbatim inside the spans.
func Colorize(table *residue.Table, content string) string {
	var b strings.Builder
	for _, run := range Runs(table, content) {
		b.WriteString(`<span class="`)
		b.WriteString(run.Class.String())
		b.WriteString(`">`)
		b.WriteString(run.Text)
		b.WriteString("</span>")
	}
	return b.String()
}
