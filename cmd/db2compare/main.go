package main

import (
	"context"
	"os"

	"go.uber.org/fx"

	"db2compare/pkg/cmd"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	fx.New(
		fx.NopLogger,
		fx.Supply(os.Args),
		fx.Supply(&cmd.Version{Version: version, Commit: commit, Timestamp: date}),
		fx.Provide(context.Background),
		cmd.Module,
	).Run()
}
