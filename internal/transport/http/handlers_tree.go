package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"msalsa/internal/phylo"
	"msalsa/internal/platform/config"
	"msalsa/internal/platform/metrics"
	"msalsa/internal/platform/middleware"
	"msalsa/internal/widget"
	dErrors "msalsa/pkg/domain-errors"
	"msalsa/pkg/platform/httputil"
)

// CanvasFactory builds the canvas that draws into target.
type CanvasFactory func(target widget.Element) phylo.Canvas

// TreeHandler renders the tree container and drawing script for a Newick tree.
type TreeHandler struct {
	logger    *slog.Logger
	metrics   *metrics.Metrics
	defaults  config.TreeDefaults
	newCanvas CanvasFactory
}

func NewTreeHandler(defaults config.TreeDefaults, logger *slog.Logger, m *metrics.Metrics) *TreeHandler {
	return &TreeHandler{
		logger:   logger,
		metrics:  m,
		defaults: defaults,
		newCanvas: func(target widget.Element) phylo.Canvas {
			return phylo.NewScriptCanvas(target)
		},
	}
}

func (h *TreeHandler) Register(r chi.Router) {
	r.Post("/api/tree/render", h.handleRender)
}

// handleRender does not parse the tree; malformed Newick is the drawing
// library's problem.
func (h *TreeHandler) handleRender(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeJSON[RenderTreeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	target := widget.NewField("")
	renderer := phylo.NewRenderer(h.newCanvas(target))
	err := renderer.SetState(req.toState(h.defaults))
	h.metrics.IncrementTreeRender(err)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to render tree",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render tree"))
		return
	}

	httputil.WriteHTML(w, http.StatusOK, target.Text())
}
