package compare

// Pointers compares two pointer values for equality.
// Returns true if both are nil, or both are non-nil with equal values.
//
// Example:
//
//	func remarksEqual(a, b *string) bool {
//	    return compare.Pointers(a, b)
//	}
func Pointers[T comparable](a, b *T) bool {
	if (a != nil) != (b != nil) {
		return false
	}
	if a != nil && *a != *b {
		return false
	}
	return true
}

// Slices compares two slices for equality using an equality function for
// elements. Returns true if both slices have the same length and all
// corresponding elements are equal. Order is significant, which is what
// positional column comparison relies on.
//
// Example:
//
//	func (e *Entity) Equal(other *Entity) bool {
//	    return compare.Slices(e.Attrs, other.Attrs,
//	        func(a, b Attr) bool { return a.Name == b.Name && a.Value == b.Value })
//	}
func Slices[T any](a, b []T, equalFunc func(T, T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalFunc(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Maps compares two maps for equality.
// Returns true if both maps have the same keys and all corresponding values
// are equal.
func Maps[K comparable, V comparable](a, b map[K]V) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}

// MapsWithEqual compares two maps using a custom equality function for values.
// Returns true if both maps have the same keys and all corresponding values
// are equal according to the equality function.
//
// Example:
//
//	equal := compare.MapsWithEqual(baseline, modified,
//	    func(a, b *Entity) bool { return a.Equal(b) })
func MapsWithEqual[K comparable, V any](a, b map[K]V, equalFunc func(V, V) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		bv, ok := b[k]
		if !ok || !equalFunc(v, bv) {
			return false
		}
	}
	return true
}
