package form

import (
	"context"
	"errors"
)

// ErrSessionNotFound is returned for unknown or expired sessions.
var ErrSessionNotFound = errors.New("form session not found")

// Store keeps form sessions. Sessions expire after the store's TTL without
// being touched; nothing is kept beyond that.
type Store interface {
	// Create stores a new session. The form ID must be unique.
	Create(ctx context.Context, f *Form) error
	// Get returns a copy of the session.
	Get(ctx context.Context, id string) (*Form, error)
	// Update runs fn against the session and stores the result atomically.
	// If fn returns an error nothing is written.
	Update(ctx context.Context, id string, fn func(*Form) error) (*Form, error)
	// Delete drops the session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error
}
