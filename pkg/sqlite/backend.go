// Package sqlite provides the public API for the SQLite navstore backend.
// This package exposes the factory functions for creating backends while
// keeping implementation details internal.
package sqlite

import (
	"context"

	"github.com/mesh-intelligence/navstore/internal/sqlite"
	"github.com/mesh-intelligence/navstore/pkg/types"
)

// Backend is the SQLite implementation of types.Store.
type Backend = sqlite.Backend

// NewBackend creates a new, private SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	backend := sqlite.NewBackend()
//	err := backend.Attach(ctx, types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: dataDir,
//	})
//	defer backend.Detach()
func NewBackend() *Backend {
	return sqlite.NewBackend()
}

// GetOrCreate returns the process-wide backend, attaching it with config on
// first use.
func GetOrCreate(ctx context.Context, config types.Config) (types.Store, error) {
	b, err := sqlite.GetOrCreate(ctx, config)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// CloseShared detaches the process-wide backend.
func CloseShared() error {
	return sqlite.CloseShared()
}
