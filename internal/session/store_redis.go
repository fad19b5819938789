package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"

	id "msalsa/pkg/domain"
	"msalsa/pkg/platform/sentinel"
)

var findDurationMs = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "msalsa_session_find_duration_ms",
	Help:    "Latency of color state lookups in Redis in milliseconds",
	Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25},
})

const colorStateKeyPrefix = "colors:"

// RedisStore keeps session state in Redis so several server instances can
// serve the same page.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func colorStateKey(sessionID id.SessionID) string {
	return colorStateKeyPrefix + sessionID.String()
}

func (s *RedisStore) Find(ctx context.Context, sessionID id.SessionID) (*ColorState, error) {
	start := time.Now()
	defer func() {
		findDurationMs.Observe(float64(time.Since(start).Microseconds()) / 1000.0)
	}()

	raw, err := s.client.Get(ctx, colorStateKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get color state: %w", err)
	}

	var state ColorState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("decode color state: %w", err)
	}
	state.ID = sessionID
	return &state, nil
}

// Save writes state with SET ... EX so the TTL restarts on every toggle.
func (s *RedisStore) Save(ctx context.Context, state *ColorState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode color state: %w", err)
	}
	if err := s.client.Set(ctx, colorStateKey(state.ID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("set color state: %w", err)
	}
	return nil
}
