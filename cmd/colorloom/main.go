// Command colorloom generates editor and terminal themes from a theme document.
package main

import (
	"fmt"
	"os"

	"github.com/subliminal-nightfall/colorloom/internal/cli"
)

var version = "dev"

func main() {
	cli.Version = version
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
