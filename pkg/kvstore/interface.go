package kvstore

import "context"

// Store is a byte-oriented key-value store. Single Get/Put calls are safe for
// concurrent use; nothing coordinates a Get followed by a Put.
type Store interface {
	// Get returns the value under key and whether it exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
