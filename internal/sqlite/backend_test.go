package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/navstore/pkg/types"
)

func TestBackend_Attach(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	b := NewBackend()
	require.NoError(t, b.Attach(ctx, cfg))
	defer b.Detach()

	dbPath := filepath.Join(cfg.DataDir, "navigation_app.db")
	_, err := os.Stat(dbPath)
	require.NoError(t, err, "navigation_app.db not created")
	assert.Equal(t, dbPath, b.Path())

	err = b.Attach(ctx, cfg)
	assert.ErrorIs(t, err, types.ErrAlreadyAttached)
}

func TestBackend_AttachCreatesDataDir(t *testing.T) {
	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: filepath.Join(t.TempDir(), "nested", "data"),
	}

	b := NewBackend()
	require.NoError(t, b.Attach(context.Background(), cfg))
	defer b.Detach()

	_, err := os.Stat(filepath.Join(cfg.DataDir, DatabaseFile))
	assert.NoError(t, err)
}

func TestBackend_AttachRejectsInvalidConfig(t *testing.T) {
	b := NewBackend()
	err := b.Attach(context.Background(), types.Config{DataDir: t.TempDir()})
	assert.Equal(t, types.ErrBackendEmpty, err, "config errors are returned unwrapped")

	err = b.Attach(context.Background(), types.Config{Backend: "postgres", DataDir: t.TempDir()})
	assert.Equal(t, types.ErrBackendUnknown, err)

	var fault *types.StorageFault
	assert.False(t, errors.As(err, &fault), "config errors are not storage faults")
}

func TestBackend_AttachCorruptFile(t *testing.T) {
	cfg := testConfig(t)
	garbage := make([]byte, 4096)
	for i := range garbage {
		garbage[i] = 'x'
	}
	require.NoError(t, os.WriteFile(DatabasePath(cfg.DataDir), garbage, 0o644))

	b := NewBackend()
	err := b.Attach(context.Background(), cfg)
	require.Error(t, err)

	var fault *types.StorageFault
	require.True(t, errors.As(err, &fault), "expected StorageFault, got %T", err)
	assert.NotEmpty(t, fault.Error())
}

func TestBackend_AttachUnknownSchemaVersion(t *testing.T) {
	cfg := testConfig(t)

	db, err := sql.Open("sqlite", DatabasePath(cfg.DataDir))
	require.NoError(t, err)
	_, err = db.Exec("PRAGMA user_version = 7")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	b := NewBackend()
	err = b.Attach(context.Background(), cfg)
	assert.ErrorIs(t, err, types.ErrSchemaVersion)
}

func TestBackend_Detach(t *testing.T) {
	ctx := context.Background()
	b := NewBackend()
	require.NoError(t, b.Attach(ctx, testConfig(t)))

	require.NoError(t, b.Detach())
	assert.NoError(t, b.Detach(), "second Detach should not error")

	tests := []struct {
		name string
		call func() error
	}{
		{"list", func() error { _, err := b.ListFavoriteRoutes(ctx); return err }},
		{"replace", func() error { return b.ReplaceFavoriteRoutes(ctx, nil) }},
		{"clear", func() error { return b.ClearFavoriteRoutes(ctx) }},
		{"get profile", func() error { _, _, err := b.GetUserProfile(ctx); return err }},
		{"save profile", func() error { return b.SaveUserProfile(ctx, types.UserProfile{}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			var fault *types.StorageFault
			require.True(t, errors.As(err, &fault), "expected StorageFault, got %v", err)
			assert.ErrorIs(t, err, types.ErrDetached)
		})
	}
}

func TestBackend_ReattachKeepsData(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	b := NewBackend()
	require.NoError(t, b.Attach(ctx, cfg))
	require.NoError(t, b.SaveUserProfile(ctx, types.UserProfile{Name: "Ana", Email: "a@x.com"}))
	require.NoError(t, b.Detach())

	require.NoError(t, b.Attach(ctx, cfg))
	defer b.Detach()

	p, found, err := b.GetUserProfile(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Ana", p.Name)
}
