package session

import (
	"context"
	"sync"
	"time"

	id "msalsa/pkg/domain"
	"msalsa/pkg/platform/sentinel"
)

// InMemoryStore keeps session state in process. States expire ttl after
// their last save.
type InMemoryStore struct {
	mu     sync.RWMutex
	ttl    time.Duration
	states map[id.SessionID]storedState
	now    func() time.Time
}

type storedState struct {
	state    ColorState
	storedAt time.Time
}

func NewInMemory(ttl time.Duration) *InMemoryStore {
	return &InMemoryStore{
		ttl:    ttl,
		states: make(map[id.SessionID]storedState),
		now:    time.Now,
	}
}

func (s *InMemoryStore) Find(_ context.Context, sessionID id.SessionID) (*ColorState, error) {
	s.mu.RLock()
	stored, ok := s.states[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if s.ttl > 0 && s.now().Sub(stored.storedAt) >= s.ttl {
		s.mu.Lock()
		if cur, ok := s.states[sessionID]; ok && cur.storedAt.Equal(stored.storedAt) {
			delete(s.states, sessionID)
		}
		s.mu.Unlock()
		return nil, sentinel.ErrNotFound
	}
	state := stored.state
	return &state, nil
}

func (s *InMemoryStore) Save(_ context.Context, state *ColorState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[state.ID] = storedState{state: *state, storedAt: s.now()}
	return nil
}

// Len returns the number of stored sessions, expired ones included.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.states)
}
