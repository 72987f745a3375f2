package kvstore

import (
	"context"
	"errors"
	"fmt"
)

const (
	RedisBackend  = "redis"
	MemoryBackend = "memory"
)

var (
	ErrNotFound       = errors.New("kvstore: key not found")
	ErrUnknownBackend = errors.New("kvstore: unknown backend")
)

// Store is a durable key/value store. Entries never expire.
type Store[V any] interface {
	// Get returns the value or ErrNotFound.
	Get(ctx context.Context, key string) (V, error)
	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value V) error
	// Delete removes the key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// New builds a store for the named backend. Redis requires opts.
func New[V any](backend string, opts *RedisOptions) (Store[V], error) {
	switch backend {
	case RedisBackend:
		if opts == nil {
			return nil, fmt.Errorf("%w: redis options missing", ErrUnknownBackend)
		}
		return NewRedisStore[V](opts), nil
	case MemoryBackend:
		return NewMemoryStore[V](), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
