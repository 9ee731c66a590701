package main

import (
	"os"

	"github.com/dougdotcon/ghexplorer/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
