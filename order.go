package polarbear

import "golang.org/x/exp/constraints"

// IsSorted reports whether values are arranged in non-decreasing order, that
// is whether every element compares less than or equal to its successor.
//
// The scan runs left to right and stops at the first out-of-order pair, so
// sequences that are disordered near the start are rejected without reading
// the rest of the input. Empty and single-element slices are vacuously
// sorted.
//
// Ordering is the one defined by the < operator of T. Floating point NaN
// values never compare greater than anything, so a sequence is only reported
// as unsorted when an inversion exists between comparable elements; runs of
// NaN values do not count as inversions.
func IsSorted[T constraints.Ordered](values []T) bool {
	for i := 1; i < len(values); i++ {
		if values[i-1] > values[i] {
			return false
		}
	}
	return true
}

// IsSortedFunc is like IsSorted for element types without a built-in order,
// using the three-way comparison function passed as argument. The function
// must return a negative value if its first argument is less than the second,
// zero if they are equal, and a positive value otherwise.
func IsSortedFunc[T any](values []T, cmp func(T, T) int) bool {
	for i := 1; i < len(values); i++ {
		if cmp(values[i-1], values[i]) > 0 {
			return false
		}
	}
	return true
}

// OrderOf returns the ordering of values: +1 if they are in ascending order,
// -1 if they are in descending order, and 0 if no ordering could be
// established. Sequences where all elements are equal are both ascending and
// descending; they report as ascending.
func OrderOf[T constraints.Ordered](values []T) int {
	if IsSorted(values) {
		return +1
	}
	if isDescending(values) {
		return -1
	}
	return 0
}

// OrderOfFunc is like OrderOf using the comparison function passed as
// argument to determine the relative order of values.
func OrderOfFunc[T any](values []T, cmp func(T, T) int) int {
	if IsSortedFunc(values, cmp) {
		return +1
	}
	if !IsSortedFunc(values, func(a, b T) int { return cmp(b, a) }) {
		return 0
	}
	return -1
}

func isDescending[T constraints.Ordered](values []T) bool {
	for i := 1; i < len(values); i++ {
		if values[i-1] < values[i] {
			return false
		}
	}
	return true
}

// Compare is a generic three-way comparison for ordered types, returning -1,
// 0, or +1.
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}
