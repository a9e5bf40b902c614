package bridge

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidCall is returned when an encoded method call cannot be decoded.
var ErrInvalidCall = errors.New("invalid method call")

// wireCall is the JSON form of a MethodCall.
type wireCall struct {
	Method string         `json:"method"`
	Args   map[string]any `json:"args,omitempty"`
}

// EncodeMethodCall encodes call as {"method": ..., "args": {...}}.
func EncodeMethodCall(call MethodCall) ([]byte, error) {
	return json.Marshal(wireCall{Method: call.Method, Args: call.Arguments})
}

// DecodeMethodCall decodes {"method": ..., "args": {...}}. args may be
// omitted or null.
func DecodeMethodCall(data []byte) (MethodCall, error) {
	var w wireCall
	if err := json.Unmarshal(data, &w); err != nil {
		return MethodCall{}, fmt.Errorf("%w: %v", ErrInvalidCall, err)
	}
	if w.Method == "" {
		return MethodCall{}, fmt.Errorf("%w: missing method", ErrInvalidCall)
	}
	return MethodCall{Method: w.Method, Arguments: w.Args}, nil
}

// EncodeResponse encodes a success reply as [value], an error reply as
// [code, message, details], and a not-implemented reply as an empty (nil)
// envelope.
func EncodeResponse(r Response) ([]byte, error) {
	switch {
	case r.NotImplemented:
		return nil, nil
	case r.IsError():
		return json.Marshal([]any{r.Code, r.Message, r.Details})
	default:
		return json.Marshal([]any{r.Value})
	}
}

// DecodeResponse reverses EncodeResponse. Success values decode with
// encoding/json's generic types.
func DecodeResponse(data []byte) (Response, error) {
	if len(data) == 0 {
		return Response{NotImplemented: true}, nil
	}

	var envelope []json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		return Response{}, fmt.Errorf("decoding envelope: %w", err)
	}

	switch len(envelope) {
	case 1:
		var value any
		if err := json.Unmarshal(envelope[0], &value); err != nil {
			return Response{}, fmt.Errorf("decoding value: %w", err)
		}
		return Response{Value: value}, nil
	case 3:
		var r Response
		if err := json.Unmarshal(envelope[0], &r.Code); err != nil {
			return Response{}, fmt.Errorf("decoding error code: %w", err)
		}
		var message *string
		if err := json.Unmarshal(envelope[1], &message); err != nil {
			return Response{}, fmt.Errorf("decoding error message: %w", err)
		}
		if message != nil {
			r.Message = *message
		}
		if err := json.Unmarshal(envelope[2], &r.Details); err != nil {
			return Response{}, fmt.Errorf("decoding error details: %w", err)
		}
		return r, nil
	default:
		return Response{}, fmt.Errorf("envelope has %d elements, want 1 or 3", len(envelope))
	}
}
