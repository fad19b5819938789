// Package phylo renders phylogenetic trees by handing Newick descriptions to
// the jsPhyloSVG canvas used on the result page.
package phylo

// State carries everything the tree canvas needs.
type State struct {
	NewickTree string `json:"newick"`
	DivID      string `json:"div_id"`
	SVGHeight  int    `json:"height"`
	SVGWidth   int    `json:"width"`
}

// Canvas is the tree-drawing library.
type Canvas interface {
	Draw(state State) error
}

// Renderer redraws the tree whenever its state changes.
type Renderer struct {
	canvas Canvas
	state  State
}

func NewRenderer(canvas Canvas) *Renderer {
	return &Renderer{canvas: canvas}
}

// SetState replaces the current state and redraws.
func (r *Renderer) SetState(state State) error {
	r.state = state
	return r.OnStateChange()
}

// State returns the last state handed to the canvas.
func (r *Renderer) State() State {
	return r.state
}

// OnStateChange constructs a new canvas drawing from the current state. The
// state is passed through untouched and canvas errors are returned as-is.
func (r *Renderer) OnStateChange() error {
	return r.canvas.Draw(r.state)
}
