package bridge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/navstore/pkg/types"
)

// ErrWorkerStopped is the cause reported for calls made after Close.
var ErrWorkerStopped = errors.New("bridge worker stopped")

// StoreProvider returns the store a request runs against. The handler calls
// it on the worker for every request and keeps no reference afterwards.
type StoreProvider func(ctx context.Context) (types.Store, error)

// MethodCallHandler answers method calls arriving on a channel.
type MethodCallHandler interface {
	HandleMethodCall(call MethodCall, result Result)
}

// Handler serves the database channel. Store access runs on the handler's
// own Worker; replies are posted to the Executor given to NewHandler.
type Handler struct {
	provide StoreProvider
	main    Executor
	worker  *Worker
	logger  *slog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the handler's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) { h.logger = logger }
}

// NewHandler creates a handler that runs requests against the store returned
// by provide and posts replies to main. Close releases its worker.
func NewHandler(provide StoreProvider, main Executor, opts ...Option) *Handler {
	h := &Handler{
		provide: provide,
		main:    main,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = h.logger.With("component", "bridge")
	h.worker = NewWorker(h.logger)
	return h
}

// operation is the store work for one request.
type operation func(ctx context.Context, store types.Store) (any, error)

// HandleMethodCall dispatches call. It returns immediately; result is invoked
// once, through the handler's Executor, except for unknown methods, which
// are answered NotImplemented directly on the calling context.
func (h *Handler) HandleMethodCall(call MethodCall, result Result) {
	logger := h.logger.With("call_id", newCallID(), "method", call.Method)

	switch call.Method {
	case MethodGetFavorites:
		h.dispatch(logger, result, getFavorites)

	case MethodGetUserProfile:
		h.dispatch(logger, result, getUserProfile)

	case MethodSaveUserProfile:
		profile := types.NewUserProfile(call.optionalString("name"), call.optionalString("email"))
		h.dispatch(logger, result, func(ctx context.Context, store types.Store) (any, error) {
			if err := store.SaveUserProfile(ctx, profile); err != nil {
				return nil, err
			}
			return true, nil
		})

	default:
		logger.Debug("method not implemented")
		result.NotImplemented()
	}
}

// Close stops accepting requests and waits for queued ones to be answered.
// Calls made after Close are answered with a DB_ERROR.
func (h *Handler) Close() {
	h.worker.Close()
}

// dispatch queues op on the worker and posts its outcome to h.main.
func (h *Handler) dispatch(logger *slog.Logger, result Result, op operation) {
	submitted := h.worker.Submit(func() {
		value, err := h.execute(op)
		if err != nil {
			logger.Warn("bridge call failed", "error", err)
		} else {
			logger.Debug("bridge call completed")
		}
		h.reply(result, value, err)
	})
	if !submitted {
		logger.Warn("bridge call rejected", "error", ErrWorkerStopped)
		h.reply(result, nil, types.NewStorageFault("submit request", ErrWorkerStopped))
	}
}

// execute runs op against a freshly provided store. Every failure comes
// back as a *types.StorageFault, including a panic inside op.
func (h *Handler) execute(op operation) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			value = nil
			err = types.NewStorageFault("execute request", fmt.Errorf("panic: %v", r))
		}
	}()

	ctx := context.Background()
	store, err := h.provide(ctx)
	if err != nil {
		return nil, types.NewStorageFault("open store", err)
	}

	value, err = op(ctx, store)
	if err != nil {
		return nil, types.NewStorageFault("execute request", err)
	}
	return value, nil
}

// reply posts the outcome to the caller's context.
func (h *Handler) reply(result Result, value any, err error) {
	h.main.Post(func() {
		if err != nil {
			result.Error(ErrorCodeDB, err.Error(), nil)
			return
		}
		result.Success(value)
	})
}

func getFavorites(ctx context.Context, store types.Store) (any, error) {
	routes, err := store.ListFavoriteRoutes(ctx)
	if err != nil {
		return nil, err
	}
	mapped := make([]map[string]any, 0, len(routes))
	for _, r := range routes {
		mapped = append(mapped, map[string]any{
			"id":          r.ID,
			"title":       r.Title,
			"description": r.Description,
		})
	}
	return mapped, nil
}

func getUserProfile(ctx context.Context, store types.Store) (any, error) {
	p, found, err := store.GetUserProfile(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return map[string]any{
		"id":    p.ID,
		"name":  p.Name,
		"email": p.Email,
	}, nil
}

// newCallID returns a time-ordered id used to correlate a call's log lines.
func newCallID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

var _ MethodCallHandler = (*Handler)(nil)
