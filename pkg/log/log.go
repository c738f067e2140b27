// Package log builds the run logger: console output plus a comparison.log
// file alongside the diff reports, so a run's log always travels with its
// results.
package log

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"db2compare/pkg/consts"
)

// New returns a logger writing to stdout and <dir>/comparison.log. The
// directory is created if needed so the file sink can open.
func New(dir string) (*zap.Logger, error) {
	if err := os.MkdirAll(dir, consts.ModeDir); err != nil {
		return nil, errors.Wrapf(err, "failed to create output directory %s", dir)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.OutputPaths = []string{
		"stdout",
		filepath.Join(dir, "comparison.log"),
	}

	logger, err := cfg.Build()
	return logger, errors.Wrap(err, "failed to build logger")
}
