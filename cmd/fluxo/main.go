package main

import (
	"os"

	"github.com/cleared-dev/fluxo/internal/commands"
	"github.com/cleared-dev/fluxo/internal/render"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		render.Errorf(os.Stderr, "%v", err)
		os.Exit(1)
	}
}
