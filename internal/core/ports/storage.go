package ports

import "context"

// KVStore is the durable key-value contract backing session and preference
// state. Values are string-serialized JSON or bare strings; the full key set
// is fixed (current session, legacy session, theme, language).
type KVStore interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
