package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// DefaultConfigFile is the config file name looked up in the working directory
	DefaultConfigFile = "db2compare.yaml"

	// DefaultOutputDir is where diff reports and the run log are written
	DefaultOutputDir = "comparison_results"
)

// DefaultExcludedSchemas lists the DB2 system schemas skipped during
// normalization when the config file doesn't provide its own set. A trailing
// '%' makes the entry a prefix match.
var DefaultExcludedSchemas = []string{
	"SYS%",
	"NULLID",
	"SQLJ",
	"SYSCAT",
	"SYSIBM",
	"SYSIBMADM",
	"SYSSTAT",
}
