package session

import "context"

// Store persists sessions between widget requests. Implementations hand out
// copies; callers mutate their copy and Put it back. Transitions that must
// not interleave with a concurrent request (the confirm latch) go through
// Update instead.
type Store interface {
	// Get returns the session or ErrSessionNotFound.
	Get(ctx context.Context, id string) (*Session, error)
	// Put stores the session, refreshing its TTL.
	Put(ctx context.Context, s *Session) error
	// Update atomically applies fn to the stored session and persists the
	// result. An error from fn leaves the stored session untouched and is
	// returned as-is. Concurrent Updates of the same session serialize.
	Update(ctx context.Context, id string, fn func(*Session) error) (*Session, error)
	// Delete removes the session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error
}
