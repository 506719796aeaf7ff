package polarbear

import "golang.org/x/exp/constraints"

// Min returns the smallest of the given values, or the zero value of T when
// the input is empty.
func Min[T constraints.Ordered](values []T) (min T) {
	if len(values) > 0 {
		min = values[0]

		for _, value := range values[1:] {
			if value < min {
				min = value
			}
		}
	}
	return min
}

// Max returns the largest of the given values, or the zero value of T when
// the input is empty.
func Max[T constraints.Ordered](values []T) (max T) {
	if len(values) > 0 {
		max = values[0]

		for _, value := range values[1:] {
			if value > max {
				max = value
			}
		}
	}
	return max
}

// Bounds returns the smallest and largest of the given values in a single
// pass, or zero values of T when the input is empty.
func Bounds[T constraints.Ordered](values []T) (min, max T) {
	if len(values) > 0 {
		min = values[0]
		max = values[0]

		for _, value := range values[1:] {
			if value < min {
				min = value
			}
			if value > max {
				max = value
			}
		}
	}
	return min, max
}
