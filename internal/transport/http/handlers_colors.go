package httptransport

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"msalsa/internal/annotate"
	"msalsa/internal/platform/metrics"
	"msalsa/internal/platform/middleware"
	"msalsa/internal/session"
	"msalsa/internal/widget"
	dErrors "msalsa/pkg/domain-errors"
	"msalsa/pkg/platform/httputil"
	"msalsa/pkg/platform/sentinel"
	"msalsa/pkg/requestcontext"
)

// ColorHandler toggles residue coloring of the alignment block. The annotator
// cache lives in the session store keyed by the page session cookie.
type ColorHandler struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	store   session.Store
}

func NewColorHandler(store session.Store, logger *slog.Logger, m *metrics.Metrics) *ColorHandler {
	return &ColorHandler{logger: logger, metrics: m, store: store}
}

func (h *ColorHandler) Register(r chi.Router) {
	r.Post("/api/alignment/colors/toggle", h.handleToggle)
}

func (h *ColorHandler) handleToggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	sessionID := requestcontext.SessionID(ctx)
	if sessionID.IsNil() {
		h.logger.ErrorContext(ctx, "page session missing from context",
			"request_id", requestID,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "session context error"))
		return
	}

	req, ok := httputil.DecodeJSON[ToggleColorsRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	now := requestcontext.Now(ctx)
	state, err := h.store.Find(ctx, sessionID)
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		state = session.NewColorState(sessionID, now)
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to load color state",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load color state"))
		return
	}

	display := widget.NewField(req.Content)
	button := widget.NewField("")
	annotator := annotate.Restore(state.Annotator)
	annotator.Toggle(display, button)

	state.Annotator = annotator.State()
	state.UpdatedAt = now
	if err := h.store.Save(ctx, state); err != nil {
		h.logger.ErrorContext(ctx, "failed to save color state",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save color state"))
		return
	}
	h.metrics.IncrementColorToggle(annotator.Applied())

	httputil.WriteJSON(w, http.StatusOK, &ToggleColorsResponse{
		Content:       display.Text(),
		ButtonLabel:   button.Text(),
		ColorsApplied: annotator.Applied(),
	})
}
