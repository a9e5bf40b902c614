// Package types defines the Store interface, the persisted entity types, and
// the standard errors shared by the navstore storage backend and the bridge.
package types
