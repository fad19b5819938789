package session

import (
	"time"

	"msalsa/internal/annotate"
	id "msalsa/pkg/domain"
)

// ColorState is the color annotator cache of one page session.
type ColorState struct {
	ID        id.SessionID   `json:"-"`
	Annotator annotate.State `json:"annotator"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// NewColorState returns an empty state for sessionID.
func NewColorState(sessionID id.SessionID, now time.Time) *ColorState {
	return &ColorState{ID: sessionID, CreatedAt: now, UpdatedAt: now}
}
