package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"msalsa/internal/platform/config"
	"msalsa/internal/platform/httpserver"
	"msalsa/internal/platform/logger"
	"msalsa/internal/platform/metrics"
	"msalsa/internal/platform/redis"
	"msalsa/internal/session"
	httptransport "msalsa/internal/transport/http"
	"msalsa/internal/validation"
	"msalsa/pkg/platform/circuit"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.IsLocal())

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	store, health := buildSessionStore(cfg, redisClient, log)
	if redisClient != nil {
		defer redisClient.Close()
	}

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Logger:        log,
		Metrics:       m,
		SessionTTL:    cfg.SessionTTL,
		SecureCookies: !cfg.IsLocal(),
		Health:        httptransport.NewHealthHandler(health, log),
		Page: []httptransport.Registrar{
			httptransport.NewPageHandler(store, cfg.Tree, log),
			httptransport.NewSequenceHandler(validation.New(), log, m),
			httptransport.NewColorHandler(store, log, m),
			httptransport.NewTreeHandler(cfg.Tree, log, m),
		},
	})
	log.Info("starting msalsa", "addr", cfg.Addr, "env", cfg.Environment)
	return httpserver.Run(ctx, httpserver.New(cfg.Addr, router), log)
}

// buildSessionStore keeps sessions in Redis when configured, falling back to
// process memory while Redis is unreachable.
func buildSessionStore(cfg config.Server, client *redis.Client, log *slog.Logger) (session.Store, httptransport.HealthChecker) {
	memory := session.NewInMemory(cfg.SessionTTL)
	if client == nil {
		log.Info("session store: in-memory")
		return memory, nil
	}

	log.Info("session store: redis")
	breaker := circuit.New("session-store")
	primary := session.NewRedis(client.Client, cfg.SessionTTL)
	return session.NewFallback(primary, memory, breaker, log), client
}
