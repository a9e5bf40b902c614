// Command navstore is the host-side CLI for the navigation app's local store.
package main

import "github.com/mesh-intelligence/navstore/internal/cli"

func main() {
	cli.Execute()
}
