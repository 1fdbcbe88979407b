// Package blob stores whole documents under string keys.
package blob

import (
	"context"
	"errors"
)

// ErrNotExist is returned by Get for a key that was never written or was
// deleted.
var ErrNotExist = errors.New("blob does not exist")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
