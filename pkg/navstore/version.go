// Package navstore holds build metadata for the navstore module.
package navstore

// Version is the navstore release version.
const Version = "0.1.0"

// ModulePath is the Go module path of navstore.
const ModulePath = "github.com/mesh-intelligence/navstore"
