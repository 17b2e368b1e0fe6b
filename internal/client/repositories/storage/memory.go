package storage

import (
	"context"
	"maps"
	"sync"
)

// MemoryRepository keeps blobs in process memory. A session backed by it
// ends with the process, like browser session storage.
type MemoryRepository struct {
	mu   sync.RWMutex
	data map[string][]byte

	txMu sync.Mutex
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{data: make(map[string][]byte)}
}

func (r *MemoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (r *MemoryRepository) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = append([]byte(nil), value...)
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, k := range keys {
		delete(r.data, k)
	}
	return nil
}

func (r *MemoryRepository) List(_ context.Context) (map[string][]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.data), nil
}

// Atomic stages fn's writes on a copy and swaps it in when fn succeeds.
// Atomic blocks are serialised; writes made outside them while fn runs are
// lost.
func (r *MemoryRepository) Atomic(ctx context.Context, fn func(ctx context.Context, repo Repository) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()

	r.mu.RLock()
	staged := &MemoryRepository{data: maps.Clone(r.data)}
	r.mu.RUnlock()

	if err := fn(ctx, staged); err != nil {
		return err
	}

	r.mu.Lock()
	r.data = staged.data
	r.mu.Unlock()
	return nil
}
