package theme

import "context"

// ModeKey is the preference key under which the user's mode choice is stored.
// The Manager is the only writer of this key.
const ModeKey = "theme-mode"

// Store is the persistence collaborator for the mode preference: a minimal
// async key-value store. Any durable or in-memory implementation works; the
// sqlite-backed one lives in internal/infrastructure/sqlite.
type Store interface {
	// Get returns the stored value for key. ok is false when the key has
	// never been written.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set durably stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}
