// Package metadata is the client's local key/value table. The session
// store keeps its auth material here.
package metadata

import (
	"context"
)

// Repository is a string-keyed byte store. Missing keys are not errors:
// Get answers (nil, nil) and GetMany simply leaves them out.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	GetMany(ctx context.Context, keys ...string) (map[string][]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}
