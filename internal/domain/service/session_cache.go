package service

import (
	"context"
	"time"
)

// SessionCache is a key/value store with expiry used to memoize resolved users.
// Implementations must be safe for concurrent use.
type SessionCache interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value for ttl. The write is observable by later Gets on any instance.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes the key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
