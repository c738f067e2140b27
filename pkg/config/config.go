package config

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"db2compare/pkg/consts"
)

type (
	// Database holds the connection settings for one of the two databases
	// under comparison.
	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Database string `yaml:"database"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	}

	// Config is the per-run configuration: the two databases, where reports
	// go, and which schemas are treated as system schemas.
	Config struct {
		// Baseline is the database the comparison is anchored on
		Baseline Database `yaml:"baseline"`

		// Modified is the database compared against the baseline
		Modified Database `yaml:"modified"`

		// OutputDir is where diff reports and the run log are written
		OutputDir string `yaml:"output_dir"`

		// ExcludedSchemas are schema name patterns filtered out during
		// normalization; a trailing '%' is a prefix match
		ExcludedSchemas []string `yaml:"excluded_schemas"`
	}
)

// DSN builds the driver connection string.
func (d Database) DSN() string {
	return fmt.Sprintf("DATABASE=%s;HOSTNAME=%s;PORT=%d;PROTOCOL=TCPIP;UID=%s;PWD=%s",
		d.Database, d.Host, d.Port, d.Username, d.Password)
}

// LoadConfig parses a run configuration from the provided io.Reader.
//
// The function expects YAML-formatted configuration data naming the baseline
// and modified connections. Output directory and excluded schemas fall back
// to the package defaults when unset.
//
// Example:
//
//	yamlData := `
//	baseline:
//	  host: db1.internal
//	  port: 50000
//	  database: APPDB
//	  username: compare
//	  password: secret
//	modified:
//	  host: db2.internal
//	  port: 50000
//	  database: APPDB
//	  username: compare
//	  password: secret
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = consts.DefaultOutputDir
	}
	if len(cfg.ExcludedSchemas) == 0 {
		cfg.ExcludedSchemas = consts.DefaultExcludedSchemas
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfigFile loads a run configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

func (c *Config) validate() error {
	for name, db := range map[string]Database{"baseline": c.Baseline, "modified": c.Modified} {
		if db.Host == "" {
			return errors.Errorf("%s: host is required", name)
		}
		if db.Database == "" {
			return errors.Errorf("%s: database is required", name)
		}
	}
	return nil
}
