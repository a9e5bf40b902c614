// Package bridge connects the UI layer to the navstore Store through a named
// method channel.
//
// A caller sends a MethodCall on a channel registered with a Messenger. The
// Handler bound to the "<app-id>/db" channel recognizes three methods:
//
//	getFavorites     -> [{id, title, description}, ...] newest first
//	getUserProfile   -> {id, name, email} or nil
//	saveUserProfile  -> true (arguments: optional "name", optional "email")
//
// Any other method answers NotImplemented. Store faults answer
// Error("DB_ERROR", message, nil).
//
// # Execution model
//
// Arguments are read on the calling context. The store operation runs on a
// single Worker goroutine that executes requests one at a time in submission
// order. The reply is posted back to the caller's Executor, typically a
// Looper drained by the UI goroutine, so Result methods never run on the
// worker. Requests cannot be cancelled and always complete.
package bridge
