package ports

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KVStore.Get when the key has never been set
// (or has been deleted).
var ErrKeyNotFound = errors.New("key not found")

// KVStore is the persistent store adapter: a synchronous key/value string
// store holding the serialized ledger slots. The ledger store is its only
// reader and writer.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	// Ping verifies the backend is reachable; used by the readiness probe.
	Ping(ctx context.Context) error
}
