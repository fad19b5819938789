// Package session keeps per-page UI state between HTTP requests.
package session

import (
	"context"

	id "msalsa/pkg/domain"
)

// Store persists color annotator state by page session.
// Find returns sentinel.ErrNotFound when nothing is stored or it has expired.
type Store interface {
	Find(ctx context.Context, sessionID id.SessionID) (*ColorState, error)
	Save(ctx context.Context, state *ColorState) error
}
