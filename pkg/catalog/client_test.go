package catalog_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	. "db2compare/pkg/catalog"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "nil passes through",
			err:      nil,
			expected: nil,
		},
		{
			name:     "sqlcode authorization failure",
			err:      errors.New("SQL0551N The statement failed because the authorization ID does not have the required authorization"),
			expected: ErrPermission,
		},
		{
			name:     "sqlstate authorization failure",
			err:      errors.New("[IBM][CLI Driver] SQLSTATE=42501"),
			expected: ErrPermission,
		},
		{
			name:     "connection reset",
			err:      errors.New("SQL30081N A communication error has been detected"),
			expected: ErrConnectivity,
		},
		{
			name:     "anything else",
			err:      errors.New("driver: bad connection"),
			expected: ErrConnectivity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			if tt.expected == nil {
				require.NoError(t, got)
				return
			}
			require.True(t, errors.Is(got, tt.expected))
			require.Contains(t, got.Error(), tt.err.Error())
		})
	}
}
