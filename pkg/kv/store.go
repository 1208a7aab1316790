// Package kv persists serialized state blobs under string keys.
package kv

import (
	"context"
	"regexp"

	pkgerrors "github.com/lumastudio/storefront/pkg/errors"
)

// Store is the persistence surface used by the app shell.
// Get reports found=false when the key was never written.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Closer is implemented by backends holding connections.
type Closer interface {
	Close() error
}

var keyRe = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

func validateKey(key string) error {
	if !keyRe.MatchString(key) {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid storage key").WithDetails(map[string]any{"key": key})
	}
	return nil
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
