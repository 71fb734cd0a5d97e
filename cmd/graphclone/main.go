// graphclone CLI - deep-clone YAML object graphs.
package main

import (
	"os"

	"github.com/katalvlaran/graphclone/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
