package schema_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"db2compare/pkg/consts"
	. "db2compare/pkg/schema"
)

func TestExclusionMatch(t *testing.T) {
	excl := NewExclusion([]string{"SYS%", "NULLID", " sqlj "})

	tests := []struct {
		name     string
		schema   string
		expected bool
	}{
		{name: "prefix match", schema: "SYSCAT", expected: true},
		{name: "prefix match lowercase", schema: "sysibm", expected: true},
		{name: "exact match", schema: "NULLID", expected: true},
		{name: "exact match trimmed pattern", schema: "SQLJ", expected: true},
		{name: "no match", schema: "APP", expected: false},
		{name: "prefix is not substring", schema: "MYSYS", expected: false},
		{name: "padded input", schema: "  NULLID ", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, excl.Match(tt.schema))
		})
	}
}

func TestExclusionDefaults(t *testing.T) {
	excl := NewExclusion(consts.DefaultExcludedSchemas)

	for _, s := range []string{"SYSCAT", "SYSIBM", "SYSIBMADM", "SYSSTAT", "NULLID", "SQLJ"} {
		require.True(t, excl.Match(s), "expected %s to be excluded", s)
	}
	require.False(t, excl.Match("APP"))
}

func TestExclusionNil(t *testing.T) {
	var excl *Exclusion
	require.False(t, excl.Match("SYSCAT"))
}
