package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"db2compare/pkg/catalog"
)

// check creates the preflight command: connect to both configured databases
// and report reachability without comparing anything.
func check() *cli.Command {
	return &cli.Command{
		Name:   "check",
		Usage:  "Verify connectivity to both configured databases",
		Before: requireConfig,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := currentConfig

			targets := []struct {
				name string
				dsn  string
			}{
				{name: "baseline", dsn: cfg.Baseline.DSN()},
				{name: "modified", dsn: cfg.Modified.DSN()},
			}

			for _, t := range targets {
				client, err := catalog.Connect(ctx, t.dsn, t.name)
				if err != nil {
					return err
				}
				_ = client.Close()
				fmt.Fprintf(cmd.Writer, "✓ %s reachable\n", t.name)
			}
			return nil
		},
	}
}
