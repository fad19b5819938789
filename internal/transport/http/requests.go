package httptransport

import (
	"msalsa/internal/phylo"
	"msalsa/internal/platform/config"
)

// ValidateSequencesRequest carries the raw contents of the sequence textarea.
type ValidateSequencesRequest struct {
	Sequences string `json:"sequences"`
}

// ToggleColorsRequest carries the alignment block as currently displayed.
type ToggleColorsRequest struct {
	Content string `json:"content"`
}

// RenderTreeRequest describes a tree to draw. Empty fields take the
// configured defaults.
type RenderTreeRequest struct {
	Newick string `json:"newick"`
	DivID  string `json:"div_id"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

func (r RenderTreeRequest) toState(defaults config.TreeDefaults) phylo.State {
	state := phylo.State{
		NewickTree: r.Newick,
		DivID:      r.DivID,
		SVGHeight:  r.Height,
		SVGWidth:   r.Width,
	}
	if state.DivID == "" {
		state.DivID = defaults.DivID
	}
	if state.SVGHeight <= 0 {
		state.SVGHeight = defaults.SVGHeight
	}
	if state.SVGWidth <= 0 {
		state.SVGWidth = defaults.SVGWidth
	}
	return state
}
