package compare_test

import (
	"testing"

	. "db2compare/pkg/compare"
	"github.com/stretchr/testify/require"
)

func TestPointers(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *int
		expected bool
	}{
		{
			name:     "both nil",
			a:        nil,
			b:        nil,
			expected: true,
		},
		{
			name:     "first nil",
			a:        nil,
			b:        intPtr(5),
			expected: false,
		},
		{
			name:     "second nil",
			a:        intPtr(5),
			b:        nil,
			expected: false,
		},
		{
			name:     "equal values",
			a:        intPtr(5),
			b:        intPtr(5),
			expected: true,
		},
		{
			name:     "different values",
			a:        intPtr(5),
			b:        intPtr(7),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Pointers(tt.a, tt.b))
		})
	}
}

func TestSlices(t *testing.T) {
	eq := func(a, b string) bool { return a == b }

	tests := []struct {
		name     string
		a, b     []string
		expected bool
	}{
		{
			name:     "both empty",
			a:        nil,
			b:        nil,
			expected: true,
		},
		{
			name:     "equal in order",
			a:        []string{"ID", "NAME"},
			b:        []string{"ID", "NAME"},
			expected: true,
		},
		{
			name:     "same elements different order",
			a:        []string{"ID", "NAME"},
			b:        []string{"NAME", "ID"},
			expected: false,
		},
		{
			name:     "different lengths",
			a:        []string{"ID"},
			b:        []string{"ID", "NAME"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Slices(tt.a, tt.b, eq))
		})
	}
}

func TestMaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     map[string]int
		expected bool
	}{
		{
			name:     "both empty",
			a:        nil,
			b:        map[string]int{},
			expected: true,
		},
		{
			name:     "equal",
			a:        map[string]int{"x": 1, "y": 2},
			b:        map[string]int{"y": 2, "x": 1},
			expected: true,
		},
		{
			name:     "different value",
			a:        map[string]int{"x": 1},
			b:        map[string]int{"x": 2},
			expected: false,
		},
		{
			name:     "missing key",
			a:        map[string]int{"x": 1},
			b:        map[string]int{"y": 1},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Maps(tt.a, tt.b))
		})
	}
}

func TestMapsWithEqual(t *testing.T) {
	eq := func(a, b []string) bool { return Slices(a, b, func(x, y string) bool { return x == y }) }

	a := map[string][]string{"T1": {"ID", "NAME"}}
	b := map[string][]string{"T1": {"ID", "NAME"}}
	c := map[string][]string{"T1": {"NAME", "ID"}}

	require.True(t, MapsWithEqual(a, b, eq))
	require.False(t, MapsWithEqual(a, c, eq))
}

func intPtr(v int) *int { return &v }
