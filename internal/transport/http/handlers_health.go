package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"msalsa/internal/platform/middleware"
	"msalsa/pkg/platform/httputil"
)

// HealthChecker is implemented by backends whose outage makes the service unhealthy.
type HealthChecker interface {
	Health(ctx context.Context) error
}

type HealthHandler struct {
	logger *slog.Logger
	redis  HealthChecker
}

// NewHealthHandler accepts a nil redis checker when sessions are kept in memory.
func NewHealthHandler(redis HealthChecker, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{logger: logger, redis: redis}
}

func (h *HealthHandler) Register(r chi.Router) {
	r.Get("/health", h.handleHealth)
}

func (h *HealthHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.redis == nil {
		httputil.WriteJSON(w, http.StatusOK, &HealthResponse{Status: "ok"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := h.redis.Health(ctx); err != nil {
		h.logger.WarnContext(ctx, "redis health check failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		httputil.WriteJSON(w, http.StatusServiceUnavailable, &HealthResponse{Status: "degraded", Redis: "unavailable"})
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &HealthResponse{Status: "ok", Redis: "ok"})
}
