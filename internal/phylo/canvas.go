package phylo

import (
	"bytes"
	"fmt"
	"html/template"

	"msalsa/internal/widget"
)

var scriptTemplate = template.Must(template.New("phylocanvas").Parse(
	`<div id="{{.DivID}}"></div>
<script type="text/javascript">
var phyloCanvas = new Smits.PhyloCanvas({newick: {{.NewickTree}} }, {{.DivID}}, {{.SVGHeight}}, {{.SVGWidth}});
</script>
`))

// ScriptCanvas draws by writing the tree container and the jsPhyloSVG call
// into a page element; the browser library does the actual rendering.
type ScriptCanvas struct {
	target widget.Element
}

func NewScriptCanvas(target widget.Element) *ScriptCanvas {
	return &ScriptCanvas{target: target}
}

func (c *ScriptCanvas) Draw(state State) error {
	var buf bytes.Buffer
	if err := scriptTemplate.Execute(&buf, state); err != nil {
		return fmt.Errorf("render tree script: %w", err)
	}
	c.target.SetText(buf.String())
	return nil
}
