package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"msalsa/internal/platform/metrics"
	"msalsa/internal/platform/middleware"
	"msalsa/internal/validation"
	"msalsa/internal/widget"
	"msalsa/pkg/platform/httputil"
)

// SequenceHandler validates pasted sequences before submission.
type SequenceHandler struct {
	logger    *slog.Logger
	metrics   *metrics.Metrics
	validator *validation.Validator
}

func NewSequenceHandler(validator *validation.Validator, logger *slog.Logger, m *metrics.Metrics) *SequenceHandler {
	return &SequenceHandler{logger: logger, metrics: m, validator: validator}
}

func (h *SequenceHandler) Register(r chi.Router) {
	r.Post("/api/sequences/validate", h.handleValidate)
}

// handleValidate replays the textarea change through a Form so the response
// carries exactly what the error panel would show.
func (h *SequenceHandler) handleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeJSON[ValidateSequencesRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	input := widget.NewField("")
	panel := widget.NewField("")
	panel.Hide()
	form := validation.NewForm(h.validator, input, panel)
	input.Input(req.Sequences)

	report := form.Report()
	errorCount := 0
	if report != nil {
		errorCount = len(report.Errors)
	}
	h.metrics.ObserveValidation(form.Valid(), errorCount)
	if !form.Valid() {
		h.logger.DebugContext(ctx, "sequence input rejected",
			"request_id", requestID,
			"errors", errorCount,
			"missing_marker", report.MissingMarker,
		)
	}

	reportHTML := ""
	if panel.Visible() {
		reportHTML = panel.Text()
	}
	httputil.WriteJSON(w, http.StatusOK, toValidateResponse(form.Valid(), report, reportHTML))
}
