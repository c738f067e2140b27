package cmd

import (
	"context"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"db2compare/pkg/catalog"
	"db2compare/pkg/log"
	"db2compare/pkg/report"
	"db2compare/pkg/runner"
	"db2compare/pkg/schema"
)

// run creates the CLI command that executes a full comparison of the two
// configured databases and writes the per-category reports.
func run() *cli.Command {
	return &cli.Command{
		Name:   "run",
		Usage:  "Compare both databases and write diff reports",
		Before: requireConfig,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := currentConfig

			logger, err := log.New(cfg.OutputDir)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			baseline, err := catalog.Connect(ctx, cfg.Baseline.DSN(), "baseline")
			if err != nil {
				return err
			}
			defer func() { _ = baseline.Close() }()

			modified, err := catalog.Connect(ctx, cfg.Modified.DSN(), "modified")
			if err != nil {
				return err
			}
			defer func() { _ = modified.Close() }()

			results := runner.New(runner.Params{
				Baseline: baseline,
				Modified: modified,
				Excluded: schema.NewExclusion(cfg.ExcludedSchemas),
				Sink:     report.NewSink(cfg.OutputDir),
				Logger:   logger,
			}).Run(ctx)

			report.WriteRunSummary(cmd.Writer, results)

			failed := 0
			for _, r := range results {
				if r.Failed() {
					failed++
				}
			}
			if failed > 0 {
				return errors.Errorf("%d of %d categories failed", failed, len(results))
			}
			return nil
		},
	}
}
