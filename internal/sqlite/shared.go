package sqlite

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/mesh-intelligence/navstore/pkg/types"
)

// shared holds the process-wide backend. It is reached only through
// GetOrCreate and CloseShared.
var shared struct {
	mu      sync.Mutex
	backend atomic.Pointer[Backend]
}

// GetOrCreate returns the process-wide backend, attaching it with config on
// first use. Concurrent first callers share one attach, so the database file
// is created and seeded once. Later calls return the same backend and ignore
// config. A failed attach is returned to its caller and not remembered.
func GetOrCreate(ctx context.Context, config types.Config) (*Backend, error) {
	if b := shared.backend.Load(); b != nil {
		return b, nil
	}

	shared.mu.Lock()
	defer shared.mu.Unlock()

	if b := shared.backend.Load(); b != nil {
		return b, nil
	}

	b := NewBackend()
	if err := b.Attach(ctx, config); err != nil {
		return nil, err
	}
	shared.backend.Store(b)
	return b, nil
}

// CloseShared detaches the process-wide backend, if any. The next
// GetOrCreate attaches a new one.
func CloseShared() error {
	shared.mu.Lock()
	defer shared.mu.Unlock()

	b := shared.backend.Swap(nil)
	if b == nil {
		return nil
	}
	return b.Detach()
}
