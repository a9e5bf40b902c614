// Package sqlite implements the SQLite storage backend for navstore: the
// favorite_routes and user_profile tables, their fixed schema, and the
// first-run seed data.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/navstore/pkg/types"
)

// DatabaseFile is the name of the database file inside the data directory.
const DatabaseFile = "navigation_app.db"

// DatabasePath returns the database file location for dataDir.
func DatabasePath(dataDir string) string {
	if dataDir == "" {
		dataDir = "."
	}
	return filepath.Join(dataDir, DatabaseFile)
}

// Backend implements types.Store on a single SQLite file.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	path     string
	db       *sql.DB
	logger   *slog.Logger
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{
		logger: slog.Default().With("component", "store"),
	}
}

// Attach opens (or creates) the database in config.DataDir and applies the
// schema. A database created by this call is seeded with the default
// favorite routes; an existing one is left as it is.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(ctx context.Context, config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dbPath := DatabasePath(config.DataDir)
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return types.NewStorageFault("create data directory", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return types.NewStorageFault("open database", err)
	}

	// SQLite allows one writer; a single connection also keeps the pragmas
	// below in effect for every statement.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(ctx, db); err != nil {
		db.Close()
		return types.NewStorageFault("apply pragmas", err)
	}

	created, err := applySchema(ctx, db)
	if err != nil {
		db.Close()
		return types.NewStorageFault("apply schema", err)
	}

	b.db = db
	b.path = dbPath
	b.attached = true

	b.logger.Info("store attached", "path", dbPath, "created", created)
	return nil
}

// Detach closes the database. After Detach, every Store method fails with a
// StorageFault wrapping ErrDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	b.attached = false
	err := b.db.Close()
	b.db = nil
	if err != nil {
		return types.NewStorageFault("close database", err)
	}

	b.logger.Debug("store detached", "path", b.path)
	return nil
}

// Path returns the database file path, or "" when never attached.
func (b *Backend) Path() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.path
}

// conn returns the open database for op, or a fault when detached.
// The caller must hold b.mu.
func (b *Backend) conn(op string) (*sql.DB, error) {
	if !b.attached {
		return nil, types.NewStorageFault(op, types.ErrDetached)
	}
	return b.db, nil
}

// applyPragmas sets the per-connection SQLite configuration.
func applyPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("executing %q: %w", pragma, err)
		}
	}
	return nil
}

var _ types.Store = (*Backend)(nil)
