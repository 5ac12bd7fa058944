// Package session provides the key-value session store behind an explicit
// interface.  The application threads a Store through its middleware and
// handlers instead of relying on process-global session state.  The primary
// implementation is Redis; an in-memory implementation serves as a fallback
// when Redis is unreachable at startup and as the store used by tests.
package session

import (
    "context"
    "errors"

    "github.com/google/uuid"

    "github.com/raelyaan/venue-booking/internal/model"
)

// ErrNotFound is returned by Get when no session exists under the given
// identifier.  Callers typically react by creating a fresh session.
var ErrNotFound = errors.New("session not found")

// Store abstracts the external key-value session runtime.  Implementations
// must be safe for concurrent use; one Store is shared by all requests.
type Store interface {
    // Get loads the session stored under id, or ErrNotFound.
    Get(ctx context.Context, id string) (*model.Session, error)
    // Save writes the session under its ID, creating or replacing it.
    Save(ctx context.Context, s *model.Session) error
    // Delete removes the session.  Deleting an absent session is not an error.
    Delete(ctx context.Context, id string) error
}

// NewID generates an opaque session identifier.
func NewID() string { return uuid.NewString() }
