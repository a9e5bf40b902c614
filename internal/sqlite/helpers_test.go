package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/navstore/pkg/types"
)

// testConfig returns a Config whose data directory is a fresh temp dir.
func testConfig(t *testing.T) types.Config {
	t.Helper()
	return types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}
}

// newTestBackend attaches a private backend in a temp dir and detaches it
// when the test ends.
func newTestBackend(t *testing.T) *Backend {
	t.Helper()

	b := NewBackend()
	require.NoError(t, b.Attach(context.Background(), testConfig(t)))
	t.Cleanup(func() { b.Detach() })
	return b
}
