// Package httptransport exposes the sequence validator, color annotator and
// tree renderer to the tool page.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"msalsa/internal/platform/metrics"
	"msalsa/internal/platform/middleware"
	"msalsa/pkg/platform/middleware/metadata"
	"msalsa/pkg/platform/middleware/pagesession"
	"msalsa/pkg/platform/middleware/requesttime"
)

// Registrar mounts a handler's routes.
type Registrar interface {
	Register(r chi.Router)
}

// RouterConfig collects what NewRouter wires together.
type RouterConfig struct {
	Logger        *slog.Logger
	Metrics       *metrics.Metrics
	SessionTTL    time.Duration
	SecureCookies bool
	// Health is mounted outside the page session so liveness checks never get a cookie.
	Health Registrar
	// Page routes run behind the page session middleware.
	Page []Registrar
}

// NewRouter builds the chi router with the shared middleware chain.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.LatencyMiddleware(cfg.Metrics))

	r.Handle("/metrics", promhttp.Handler())
	if cfg.Health != nil {
		cfg.Health.Register(r)
	}

	r.Group(func(r chi.Router) {
		r.Use(pagesession.Middleware(cfg.SessionTTL, cfg.SecureCookies))
		for _, h := range cfg.Page {
			h.Register(r)
		}
	})
	return r
}
