package session

import (
	"context"
	"errors"
	"log/slog"

	id "msalsa/pkg/domain"
	"msalsa/pkg/platform/circuit"
	"msalsa/pkg/platform/sentinel"
)

// FallbackStore serves from a primary store and switches to a fallback
// store while the primary keeps failing. The primary is still tried on every
// call so the breaker can close again once it recovers.
type FallbackStore struct {
	primary  Store
	fallback Store
	breaker  *circuit.Breaker
	logger   *slog.Logger
}

func NewFallback(primary, fallback Store, breaker *circuit.Breaker, logger *slog.Logger) *FallbackStore {
	return &FallbackStore{
		primary:  primary,
		fallback: fallback,
		breaker:  breaker,
		logger:   logger,
	}
}

func (s *FallbackStore) Find(ctx context.Context, sessionID id.SessionID) (*ColorState, error) {
	state, err := s.primary.Find(ctx, sessionID)
	if err == nil || errors.Is(err, sentinel.ErrNotFound) {
		usePrimary, change := s.breaker.RecordSuccess()
		s.logChange(ctx, change)
		if !usePrimary {
			// State written during the outage lives in the fallback.
			if fb, fbErr := s.fallback.Find(ctx, sessionID); fbErr == nil {
				return fb, nil
			}
		}
		return state, err
	}

	useFallback, change := s.breaker.RecordFailure()
	s.logChange(ctx, change)
	if !useFallback {
		return nil, errors.Join(sentinel.ErrUnavailable, err)
	}
	return s.fallback.Find(ctx, sessionID)
}

func (s *FallbackStore) Save(ctx context.Context, state *ColorState) error {
	err := s.primary.Save(ctx, state)
	if err == nil {
		_, change := s.breaker.RecordSuccess()
		s.logChange(ctx, change)
		if s.breaker.IsOpen() {
			return s.fallback.Save(ctx, state)
		}
		return nil
	}

	useFallback, change := s.breaker.RecordFailure()
	s.logChange(ctx, change)
	if !useFallback {
		return errors.Join(sentinel.ErrUnavailable, err)
	}
	return s.fallback.Save(ctx, state)
}

func (s *FallbackStore) logChange(ctx context.Context, change circuit.StateChange) {
	if s.logger == nil {
		return
	}
	switch {
	case change.Opened:
		s.logger.WarnContext(ctx, "session store circuit opened, using in-memory fallback",
			"breaker", s.breaker.Name())
	case change.Closed:
		s.logger.InfoContext(ctx, "session store circuit closed, primary restored",
			"breaker", s.breaker.Name())
	}
}
