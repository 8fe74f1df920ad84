// Package storage holds the client-side key-value store that backs the
// persisted session. It mirrors web local-storage semantics: string keys,
// opaque values, no expiry, last writer wins.
package storage

import (
	"context"
)

type Repository interface {
	// Get returns the value stored under key, or common.ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// List returns every stored key in sorted order.
	List(ctx context.Context) ([]string, error)
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Clear removes every stored key.
	Clear(ctx context.Context) error
}
