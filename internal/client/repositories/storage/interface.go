package storage

import "context"

// Repository is a key-value store for session blobs.
//
// Get returns (nil, nil) for a missing key. Delete is idempotent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string][]byte, error)

	// Atomic runs fn so that either all of its writes are applied or none
	// are. fn must use the repo it is given, not the receiver.
	Atomic(ctx context.Context, fn func(ctx context.Context, repo Repository) error) error
}
