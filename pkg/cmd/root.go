package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"

	"db2compare/pkg/config"
	"db2compare/pkg/consts"
)

var currentConfig *config.Config

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run creates and executes the main db2compare CLI application. The config
// file is loaded in the Before hook so every command sees the same resolved
// configuration; commands that need it guard with requireConfig.
//
// Global Flags:
//   - --config, -c: path to the run configuration (defaults to db2compare.yaml)
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := &cli.Command{
		Name:  "db2compare",
		Usage: "Compare the structure of two DB2 databases",
		Description: `db2compare connects to a baseline and a modified DB2 database, reads
their catalog metadata (tables, procedures, triggers, functions, views) and
reports, per category, which objects are new, dropped or modified.`,
		Version: p.Version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the run configuration file",
				Sources: cli.EnvVars("DB2COMPARE_CONFIG"),
				Value:   consts.DefaultConfigFile,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			path := cmd.String("config")

			_, err := os.Stat(path)
			if os.IsNotExist(err) {
				return ctx, nil
			}
			if err != nil {
				return ctx, err
			}

			currentConfig, err = config.LoadConfigFile(path)
			return ctx, err
		},
		Commands: p.Commands,
	}

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}

func requireConfig(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if currentConfig == nil {
		return ctx, errors.Errorf("%s not found", cmd.String("config"))
	}

	return ctx, nil
}
