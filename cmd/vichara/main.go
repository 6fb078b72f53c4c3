// Command vichara is the entry point for the Vichara CLI.
package main

import (
	"github.com/vedanta-labs/vichara-cli/internal/adapters/driving/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = ""

func main() {
	cli.SetVersion(version)
	cli.Execute()
}
