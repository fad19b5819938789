// Package annotate colors an alignment block by residue polarity and toggles
// between the colored and plain rendering.
package annotate

import (
	"msalsa/internal/widget"
	"msalsa/pkg/residue"
)

// Button labels mirror what the next toggle will do.
const (
	LabelRemoveColors = "Remove Colors"
	LabelShowColors   = "Show Colors"
)

// State is the annotator's cache. It is exported so a page session can keep
// it between requests.
type State struct {
	Original string `json:"original"`
	Colored  string `json:"colored"`
	Captured bool   `json:"captured"`
	Applied  bool   `json:"applied"`
}

// Annotator owns the cached plain and colored content of one alignment view.
type Annotator struct {
	table *residue.Table
	state State
}

func New() *Annotator {
	return Restore(State{})
}

// Restore rebuilds an annotator from a previously exported State.
func Restore(state State) *Annotator {
	return &Annotator{table: residue.Standard(), state: state}
}

func (a *Annotator) State() State {
	return a.state
}

// Applied reports whether the display currently shows colors.
func (a *Annotator) Applied() bool {
	return a.state.Applied
}

// Toggle flips display between colored and plain content and relabels button.
// The plain content is captured and colored once; later toggles reuse the
// cached strings.
func (a *Annotator) Toggle(display, button widget.Element) {
	if !a.state.Applied {
		a.apply(display)
		button.SetText(LabelRemoveColors)
		a.state.Applied = true
		return
	}

	display.SetText(a.state.Original)
	button.SetText(LabelShowColors)
	a.state.Applied = false
}

func (a *Annotator) apply(display widget.Element) {
	if !a.state.Captured {
		content := display.Text()
		if content == "" {
			return
		}
		a.state.Original = content
		a.state.Colored = Colorize(a.table, content)
		a.state.Captured = true
	}
	display.SetText(a.state.Colored)
}
