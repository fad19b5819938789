package httptransport

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"msalsa/internal/annotate"
	"msalsa/internal/platform/config"
	"msalsa/internal/platform/middleware"
	"msalsa/internal/session"
	dErrors "msalsa/pkg/domain-errors"
	"msalsa/pkg/platform/httputil"
	"msalsa/pkg/requestcontext"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html.tmpl"))

const maxFormBytes = 4 << 20

type pageData struct {
	ButtonLabel string
	Alignment   string
	Tree        config.TreeDefaults
}

// PageHandler serves the tool page. Every page load starts a fresh color
// annotator for the page session, so a reload never inherits the previous
// page's cached alignment or mode.
type PageHandler struct {
	logger *slog.Logger
	store  session.Store
	tree   config.TreeDefaults
}

func NewPageHandler(store session.Store, tree config.TreeDefaults, logger *slog.Logger) *PageHandler {
	return &PageHandler{logger: logger, store: store, tree: tree}
}

func (h *PageHandler) Register(r chi.Router) {
	r.Get("/", h.handleIndex)
	r.Post("/", h.handleLoadAlignment)
}

func (h *PageHandler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "")
}

// handleLoadAlignment renders the page with a submitted alignment in the
// alignment block.
func (h *PageHandler) handleLoadAlignment(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		ctx := r.Context()
		h.logger.WarnContext(ctx, "invalid alignment form",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid form body"))
		return
	}
	h.renderPage(w, r, r.PostForm.Get("alignment"))
}

func (h *PageHandler) renderPage(w http.ResponseWriter, r *http.Request, alignment string) {
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
	if err := h.store.Save(ctx, session.NewColorState(sessionID, requestcontext.Now(ctx))); err != nil {
		h.logger.ErrorContext(ctx, "failed to reset color state",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to reset color state"))
		return
	}

	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, pageData{
		ButtonLabel: annotate.LabelShowColors,
		Alignment:   alignment,
		Tree:        h.tree,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to render page",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render page"))
		return
	}
	httputil.WriteHTML(w, http.StatusOK, buf.String())
}
