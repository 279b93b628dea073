package main

import (
	"os"

	"github.com/danieljhkim/davos/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
