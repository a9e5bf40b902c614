package types

import "fmt"

// StorageFault reports that the storage engine failed an operation: an I/O
// error, a constraint violation, a corrupt file, or a detached store. It is
// the only error kind the Store returns.
type StorageFault struct {
	Op  string // Store operation that failed, e.g. "list favorite routes".
	Err error  // Underlying driver error or sentinel.
}

// Error returns a human-readable message naming the operation and cause.
func (f *StorageFault) Error() string {
	if f.Err == nil {
		return f.Op
	}
	return fmt.Sprintf("%s: %v", f.Op, f.Err)
}

func (f *StorageFault) Unwrap() error { return f.Err }

// NewStorageFault wraps err as a StorageFault for op. It returns nil when err
// is nil and returns err unchanged when it is already a StorageFault.
func NewStorageFault(op string, err error) error {
	if err == nil {
		return nil
	}
	if f, ok := err.(*StorageFault); ok {
		return f
	}
	return &StorageFault{Op: op, Err: err}
}
