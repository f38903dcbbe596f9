package main

import (
	"os"

	"github.com/adpgen-dev/adpgen/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
