package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/mesh-intelligence/navstore/internal/bridge"
	"github.com/mesh-intelligence/navstore/internal/sqlite"
	"github.com/mesh-intelligence/navstore/pkg/types"
)

// callTimeout bounds a single bridge call made from the command line.
const callTimeout = 30 * time.Second

// session is the host side of one CLI invocation: a main looper, the db
// channel handler, and the messenger it is registered on.
type session struct {
	loop      *bridge.Looper
	messenger *bridge.Messenger
	handler   *bridge.Handler
	channel   string
}

// newSession registers a handler for the configured app id. The handler
// opens the shared store lazily on its worker.
func (a *app) newSession() *session {
	cfg := a.storeConfig()
	provide := func(ctx context.Context) (types.Store, error) {
		return sqlite.GetOrCreate(ctx, cfg)
	}

	loop := bridge.NewLooper()
	handler := bridge.NewHandler(provide, loop, bridge.WithLogger(a.logger))
	messenger := bridge.NewMessenger()
	channel := bridge.ChannelName(a.appID())
	messenger.SetMethodCallHandler(channel, handler)

	return &session{
		loop:      loop,
		messenger: messenger,
		handler:   handler,
		channel:   channel,
	}
}

// call sends one method call and returns the reply. Both directions go
// through the bridge codec, as they would across a real channel.
func (s *session) call(ctx context.Context, call bridge.MethodCall) (bridge.Response, []byte, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	req, err := bridge.EncodeMethodCall(call)
	if err != nil {
		return bridge.Response{}, nil, fmt.Errorf("encode call: %w", err)
	}
	if call, err = bridge.DecodeMethodCall(req); err != nil {
		return bridge.Response{}, nil, fmt.Errorf("decode call: %w", err)
	}

	resp, err := bridge.Call(ctx, s.loop, s.messenger, s.channel, call)
	if err != nil {
		return bridge.Response{}, nil, fmt.Errorf("call %s: %w", call.Method, err)
	}

	raw, err := bridge.EncodeResponse(resp)
	if err != nil {
		return bridge.Response{}, nil, fmt.Errorf("encode reply: %w", err)
	}
	decoded, err := bridge.DecodeResponse(raw)
	if err != nil {
		return bridge.Response{}, nil, fmt.Errorf("decode reply: %w", err)
	}
	return decoded, raw, nil
}

// invoke is call with the reply mapped onto CLI exit codes: not implemented
// is a user error, DB_ERROR a system error.
func (s *session) invoke(ctx context.Context, method string, args map[string]any) (any, error) {
	resp, _, err := s.call(ctx, bridge.MethodCall{Method: method, Arguments: args})
	if err != nil {
		return nil, sysError("%s", err)
	}
	if err := replyError(method, resp); err != nil {
		return nil, err
	}
	return resp.Value, nil
}

func (s *session) close() {
	s.messenger.SetMethodCallHandler(s.channel, nil)
	s.handler.Close()
}

// replyError converts a not-implemented or error reply into an exitError.
func replyError(method string, resp bridge.Response) error {
	switch {
	case resp.NotImplemented:
		return userError("method %q not implemented", method)
	case resp.IsError():
		return sysError("%s: %s", resp.Code, resp.Message)
	}
	return nil
}
