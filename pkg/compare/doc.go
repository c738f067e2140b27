// Package compare provides generic comparison utilities for structural equality testing.
//
// This package offers a set of helper functions that eliminate boilerplate code when
// implementing Equal() methods on structs. It handles common patterns like pointer
// comparisons, ordered slice comparisons, and map comparisons, and is what the
// canonical entity model leans on for its fast-path equality checks.
//
// # Usage Examples
//
// Compare pointer fields:
//
//	return compare.Pointers(a.Remarks, b.Remarks)
//
// Compare slices with element equality (order matters):
//
//	return compare.Slices(a.Columns, b.Columns,
//	    func(x, y ColumnDef) bool { return x.Equal(y) })
//
// Compare keyed collections:
//
//	return compare.MapsWithEqual(baseline, modified,
//	    func(x, y *Entity) bool { return x.Equal(y) })
package compare
