package main

import (
	"os"

	"github.com/lnsy/pochade/internal/cli"
	"github.com/lnsy/pochade/internal/ui"
)

// These variables are set at build time via -ldflags
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.BuildDate = date
	ui.SetColor(ui.IsInteractive())
	if err := cli.Execute(); err != nil {
		os.Exit(cli.HandleError(err))
	}
}
