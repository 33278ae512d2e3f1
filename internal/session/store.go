package session

import "context"

// Store owns every session. Sessions are created lazily on first resolve and
// only a store may construct or destroy one. Implementations must be safe for
// concurrent resolve/create across different ids; callers serialize turns on
// a single session through a KeyedMutex.
type Store interface {
	// Resolve returns the session for id, creating and seeding it when
	// absent. The second return reports whether the session was created.
	Resolve(ctx context.Context, id string) (*Session, bool, error)

	// Save persists the session after a turn has mutated it.
	Save(ctx context.Context, sess *Session) error

	// Delete removes the session. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
}
