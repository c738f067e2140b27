// Package schemadiff classifies two canonical collections of the same
// category into new, dropped and modified objects. The differ is stateless
// and pure: it performs no I/O and the same two inputs always produce the
// same diff regardless of map iteration order, since results are keyed by
// ObjectKey.
package schemadiff

import (
	"github.com/pkg/errors"

	"db2compare/pkg/schema"
)

// ErrInvariant indicates an entity that breaks the normalizer's contract
// (wrong category or an incomplete attribute set). This is a bug in the core,
// not a data problem, and is fatal for the comparison.
var ErrInvariant = errors.New("canonical entity violates normalizer contract")

type (
	// FieldChange is one attribute-level difference within a modified object.
	// Path addresses nested structure (e.g. "columns[2].type"). Either side
	// may be the absent sentinel when the attribute only exists on one side.
	FieldChange struct {
		Path     string
		Baseline schema.Value
		Modified schema.Value
	}

	// CategoryDiff is the classified result for one category between the
	// baseline and modified databases. Objects with zero field differences
	// appear nowhere.
	CategoryDiff struct {
		Category schema.Category
		New      map[schema.ObjectKey]*schema.Entity
		Dropped  map[schema.ObjectKey]*schema.Entity
		Modified map[schema.ObjectKey][]FieldChange
	}
)

// HasChanges reports whether the diff contains any difference at all.
func (d *CategoryDiff) HasChanges() bool {
	return len(d.New) > 0 || len(d.Dropped) > 0 || len(d.Modified) > 0
}

// Counts returns the number of new, dropped and modified objects.
func (d *CategoryDiff) Counts() (added, dropped, modified int) {
	return len(d.New), len(d.Dropped), len(d.Modified)
}

// Diff classifies the two collections:
//
//   - keys only in modified are New
//   - keys only in baseline are Dropped
//   - keys in both are walked field by field; any difference puts the object
//     into Modified with one ordered FieldChange per differing leaf attribute
//
// Table columns are compared positionally (ordinal first, then field), so a
// changed type at position 3 yields one FieldChange while an inserted column
// shifts every later ordinal. Full-text attributes are opaque: a differing
// body is exactly one FieldChange, never a sub-diff.
func Diff(category schema.Category, baseline, modified schema.Collection) (*CategoryDiff, error) {
	for _, e := range baseline {
		if err := validate(category, e); err != nil {
			return nil, err
		}
	}
	for _, e := range modified {
		if err := validate(category, e); err != nil {
			return nil, err
		}
	}

	diff := &CategoryDiff{
		Category: category,
		New:      make(map[schema.ObjectKey]*schema.Entity),
		Dropped:  make(map[schema.ObjectKey]*schema.Entity),
		Modified: make(map[schema.ObjectKey][]FieldChange),
	}

	for key, entity := range modified {
		if _, exists := baseline[key]; !exists {
			diff.New[key] = entity
		}
	}

	for key, base := range baseline {
		current, exists := modified[key]
		if !exists {
			diff.Dropped[key] = base
			continue
		}
		if base.Equal(current) {
			continue
		}
		if changes := fieldChanges(base, current); len(changes) > 0 {
			diff.Modified[key] = changes
		}
	}

	return diff, nil
}

// fieldChanges walks the baseline attributes in canonical order, then any
// attributes that only exist on the modified side (e.g. columns appended to a
// table), in their canonical order.
func fieldChanges(baseline, modified *schema.Entity) []FieldChange {
	index := make(map[string]schema.Value, len(modified.Attrs))
	for _, a := range modified.Attrs {
		index[a.Name] = a.Value
	}

	var changes []FieldChange
	seen := make(map[string]struct{}, len(baseline.Attrs))

	for _, a := range baseline.Attrs {
		seen[a.Name] = struct{}{}
		current, exists := index[a.Name]
		if !exists {
			changes = append(changes, FieldChange{Path: a.Name, Baseline: a.Value, Modified: schema.Absent})
			continue
		}
		if a.Value != current {
			changes = append(changes, FieldChange{Path: a.Name, Baseline: a.Value, Modified: current})
		}
	}

	for _, a := range modified.Attrs {
		if _, exists := seen[a.Name]; !exists {
			changes = append(changes, FieldChange{Path: a.Name, Baseline: schema.Absent, Modified: a.Value})
		}
	}

	return changes
}

func validate(category schema.Category, e *schema.Entity) error {
	if e.Category != category {
		return errors.Wrapf(ErrInvariant, "%s: entity has category %s, comparing %s", e.Key, e.Category, category)
	}
	if category == schema.CategoryTable {
		if len(e.Attrs) != len(e.Columns)*schema.ColumnFieldCount() {
			return errors.Wrapf(ErrInvariant, "%s: table entity carries %d attributes for %d columns", e.Key, len(e.Attrs), len(e.Columns))
		}
		return nil
	}

	names := schema.AttributeNames(category)
	if len(e.Attrs) != len(names) {
		return errors.Wrapf(ErrInvariant, "%s: entity carries %d attributes, category %s defines %d", e.Key, len(e.Attrs), category, len(names))
	}
	for i, a := range e.Attrs {
		if a.Name != names[i] {
			return errors.Wrapf(ErrInvariant, "%s: attribute %d is %q, expected %q", e.Key, i, a.Name, names[i])
		}
	}
	return nil
}
