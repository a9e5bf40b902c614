package bridge

import (
	"context"
	"errors"
	"sync"
)

// ErrNoReply is returned by Call when the looper stopped before the reply
// arrived.
var ErrNoReply = errors.New("looper stopped before reply")

// Messenger routes method calls to the handler registered for a channel.
type Messenger struct {
	mu       sync.RWMutex
	handlers map[string]MethodCallHandler
}

// NewMessenger returns a messenger with no channels registered.
func NewMessenger() *Messenger {
	return &Messenger{handlers: make(map[string]MethodCallHandler)}
}

// SetMethodCallHandler registers h for channel, replacing any previous
// handler. A nil h unregisters the channel.
func (m *Messenger) SetMethodCallHandler(channel string, h MethodCallHandler) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if h == nil {
		delete(m.handlers, channel)
		return
	}
	m.handlers[channel] = h
}

// InvokeMethod delivers call to the handler for channel. A channel with no
// handler is answered NotImplemented on the calling context.
func (m *Messenger) InvokeMethod(channel string, call MethodCall, result Result) {
	m.mu.RLock()
	h, ok := m.handlers[channel]
	m.mu.RUnlock()

	if !ok {
		result.NotImplemented()
		return
	}
	h.HandleMethodCall(call, result)
}

// Call invokes call on channel from loop's goroutine and runs loop until
// this call's reply has been delivered there. Loop must be the Executor the
// channel's handler replies through. Call returns ctx.Err() if ctx ends
// first; the request itself still runs to completion and its late reply is
// dropped when a later Call drains it.
func Call(ctx context.Context, loop *Looper, m *Messenger, channel string, call MethodCall) (Response, error) {
	reply := make(chan Response, 1)
	done := make(chan struct{})
	var once sync.Once
	loop.Post(func() {
		m.InvokeMethod(channel, call, ResultFunc(func(r Response) {
			once.Do(func() {
				reply <- r
				close(done)
			})
		}))
	})

	if err := loop.runUntil(ctx, done); err != nil {
		return Response{}, err
	}

	select {
	case r := <-reply:
		return r, nil
	default:
		return Response{}, ErrNoReply
	}
}
