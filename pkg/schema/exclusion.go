package schema

import "strings"

// Exclusion filters system schemas out of normalization. Patterns are matched
// case-insensitively; a trailing '%' makes the pattern a prefix match,
// anything else is an exact match. The set is explicit per-run configuration,
// never hidden global state.
type Exclusion struct {
	exact    map[string]struct{}
	prefixes []string
}

// NewExclusion builds a filter from the configured patterns.
func NewExclusion(patterns []string) *Exclusion {
	e := &Exclusion{exact: make(map[string]struct{}, len(patterns))}
	for _, p := range patterns {
		p = strings.ToUpper(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if strings.HasSuffix(p, "%") {
			e.prefixes = append(e.prefixes, strings.TrimSuffix(p, "%"))
			continue
		}
		e.exact[p] = struct{}{}
	}
	return e
}

// Match reports whether the schema name is excluded.
func (e *Exclusion) Match(schema string) bool {
	if e == nil {
		return false
	}
	s := strings.ToUpper(strings.TrimSpace(schema))
	if _, ok := e.exact[s]; ok {
		return true
	}
	for _, p := range e.prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
