// Package cmd provides the CLI commands for db2compare.
//
// Each command is implemented as a separate function that returns a
// *cli.Command, following the urfave/cli/v3 pattern, and is wired into the
// application through the fx command group in this package's Module.
//
// # Available Commands
//
//   - run: compare both configured databases and write per-category reports
//   - check: verify connectivity to both databases without comparing
//
// # Global Options
//
//   - --config, -c: path to the run configuration file
//   - --help, -h: display command help
//   - --version: display version information
package cmd
