package bridge

// Result receives exactly one reply to a MethodCall.
type Result interface {
	// Success delivers the method's return value.
	Success(value any)

	// Error reports that the method failed.
	Error(code, message string, details any)

	// NotImplemented reports that the method name is unknown.
	NotImplemented()
}

// Response is a reply captured as a value. Exactly one of three shapes is
// set: a success Value, an error Code and Message, or NotImplemented.
type Response struct {
	Value          any
	Code           string
	Message        string
	Details        any
	NotImplemented bool
}

// IsError reports whether the response is an error reply.
func (r Response) IsError() bool { return r.Code != "" }

// ResultFunc adapts a function to the Result interface, folding each reply
// into a Response.
type ResultFunc func(Response)

func (f ResultFunc) Success(value any) { f(Response{Value: value}) }

func (f ResultFunc) Error(code, message string, details any) {
	f(Response{Code: code, Message: message, Details: details})
}

func (f ResultFunc) NotImplemented() { f(Response{NotImplemented: true}) }
