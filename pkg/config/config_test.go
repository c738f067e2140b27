package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	. "db2compare/pkg/config"
	"db2compare/pkg/consts"
)

const validConfig = `
baseline:
  host: db1.internal
  port: 50000
  database: APPDB
  username: compare
  password: secret
modified:
  host: db2.internal
  port: 50000
  database: APPDB
  username: compare
  password: secret
`

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(validConfig))
	require.NoError(t, err)

	require.Equal(t, "db1.internal", cfg.Baseline.Host)
	require.Equal(t, "db2.internal", cfg.Modified.Host)
	require.Equal(t, 50000, cfg.Baseline.Port)
	require.Equal(t, "APPDB", cfg.Baseline.Database)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(validConfig))
	require.NoError(t, err)

	require.Equal(t, consts.DefaultOutputDir, cfg.OutputDir)
	require.Equal(t, consts.DefaultExcludedSchemas, cfg.ExcludedSchemas)
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(validConfig + `
output_dir: /tmp/results
excluded_schemas:
  - SYS%
  - LEGACY
`))
	require.NoError(t, err)

	require.Equal(t, "/tmp/results", cfg.OutputDir)
	require.Equal(t, []string{"SYS%", "LEGACY"}, cfg.ExcludedSchemas)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		err  string
	}{
		{
			name: "missing baseline host",
			yaml: `
baseline:
  database: APPDB
modified:
  host: db2.internal
  database: APPDB
`,
			err: "baseline: host is required",
		},
		{
			name: "missing modified database",
			yaml: `
baseline:
  host: db1.internal
  database: APPDB
modified:
  host: db2.internal
`,
			err: "modified: database is required",
		},
		{
			name: "not yaml",
			yaml: "{{{",
			err:  "failed to unmarshal config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(strings.NewReader(tt.yaml))
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.err)
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db2compare.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validConfig), 0o644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	require.Equal(t, "APPDB", cfg.Modified.Database)

	_, err = LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestDatabaseDSN(t *testing.T) {
	db := Database{
		Host:     "db1.internal",
		Port:     50000,
		Database: "APPDB",
		Username: "compare",
		Password: "secret",
	}

	require.Equal(t,
		"DATABASE=APPDB;HOSTNAME=db1.internal;PORT=50000;PROTOCOL=TCPIP;UID=compare;PWD=secret",
		db.DSN())
}
