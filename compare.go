package skiplist

import "cmp"

// CompareFunc reports the ordering between a and b: negative if a < b, zero
// if a == b, positive if a > b. Implementations must be total and
// panic-free; a comparator that violates totality causes the skip list's
// invariants to degrade silently, and this library does not defend against
// that.
type CompareFunc[T any] func(a, b T) int

// Natural returns a CompareFunc for any type with a built-in total order,
// backed by the standard library's cmp.Compare.
func Natural[T cmp.Ordered]() CompareFunc[T] {
	return cmp.Compare[T]
}
