package bridge

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/navstore/internal/sqlite"
	"github.com/mesh-intelligence/navstore/pkg/types"
)

const testChannel = "com.example.test/db"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestStore attaches a private SQLite backend in a temp dir.
func newTestStore(t *testing.T) *sqlite.Backend {
	t.Helper()

	b := sqlite.NewBackend()
	require.NoError(t, b.Attach(context.Background(), types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}))
	t.Cleanup(func() { b.Detach() })
	return b
}

// staticProvider always returns store.
func staticProvider(store types.Store) StoreProvider {
	return func(context.Context) (types.Store, error) { return store, nil }
}

// harness wires a handler to a messenger and a looper the way a host does.
type harness struct {
	loop      *Looper
	messenger *Messenger
	handler   *Handler
}

func newHarness(t *testing.T, provide StoreProvider) *harness {
	t.Helper()

	loop := NewLooper()
	h := NewHandler(provide, loop, WithLogger(testLogger()))
	t.Cleanup(h.Close)

	m := NewMessenger()
	m.SetMethodCallHandler(testChannel, h)
	return &harness{loop: loop, messenger: m, handler: h}
}

// call sends method with args and waits for the reply on the test goroutine.
func (h *harness) call(t *testing.T, method string, args map[string]any) Response {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	r, err := Call(ctx, h.loop, h.messenger, testChannel, MethodCall{Method: method, Arguments: args})
	require.NoError(t, err)
	return r
}

// manualExecutor collects posted tasks until the test runs them.
type manualExecutor struct {
	mu    sync.Mutex
	tasks []func()
}

func (e *manualExecutor) Post(task func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tasks = append(e.tasks, task)
}

func (e *manualExecutor) pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.tasks)
}

// runAll runs the collected tasks in post order.
func (e *manualExecutor) runAll() {
	e.mu.Lock()
	tasks := e.tasks
	e.tasks = nil
	e.mu.Unlock()

	for _, task := range tasks {
		task()
	}
}

// recorder collects responses in arrival order.
type recorder struct {
	mu        sync.Mutex
	responses []Response
}

func (r *recorder) result() Result {
	return ResultFunc(func(resp Response) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.responses = append(r.responses, resp)
	})
}

func (r *recorder) all() []Response {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Response(nil), r.responses...)
}

// faultyStore fails or panics on demand and delegates everything else.
type faultyStore struct {
	types.Store

	mu        sync.Mutex
	listErr   error
	listPanic bool
}

func (s *faultyStore) ListFavoriteRoutes(ctx context.Context) ([]types.FavoriteRoute, error) {
	s.mu.Lock()
	err, panicking := s.listErr, s.listPanic
	s.mu.Unlock()

	if panicking {
		panic("driver exploded")
	}
	if err != nil {
		return nil, types.NewStorageFault("list favorite routes", err)
	}
	return s.Store.ListFavoriteRoutes(ctx)
}
