package polarbear

import "golang.org/x/exp/constraints"

// PageIndex describes paged storage through the bounds of each page, the
// minimal information needed to locate values without reading page contents.
// Compressed buffers implement it.
type PageIndex[T any] interface {
	// Returns the number of pages in the index.
	NumPages() int

	// Returns the smallest value of page i.
	MinValue(i int) T

	// Returns the largest value of page i.
	MaxValue(i int) T

	// Reports whether the indexed values are in ascending order across
	// pages, enabling binary search.
	IsAscending() bool
}

// Search is like Find, but uses the natural ordering of T to compare values.
func Search[T constraints.Ordered](index PageIndex[T], value T) int {
	return Find(index, value, Compare[T])
}

// Find locates the first page of the index that may contain the given value,
// returning NumPages when the bounds rule the value out of every page.
//
// When the index reports ascending content the lookup is a binary search
// over the page bounds; otherwise every page is examined in order.
func Find[T any](index PageIndex[T], value T, cmp func(T, T) int) int {
	if index.IsAscending() {
		return binarySearch(index, value, cmp)
	}
	return linearSearch(index, value, cmp)
}

func binarySearch[T any](index PageIndex[T], value T, cmp func(T, T) int) int {
	n := index.NumPages()
	curIdx := 0
	topIdx := n

	for (topIdx - curIdx) > 1 {
		nextIdx := ((topIdx - curIdx) / 2) + curIdx

		smallerThanMin := cmp(value, index.MinValue(nextIdx))
		greaterThanMax := cmp(value, index.MaxValue(nextIdx))

		switch {
		case smallerThanMin < 0:
			// value < min: the value can only live in an earlier page.
			topIdx = nextIdx
		case greaterThanMax > 0:
			// value > max: the value can only live in a later page.
			curIdx = nextIdx
		case smallerThanMin == 0:
			// The value equals the minimum of this page. An earlier page may
			// end on the same value, in which case the first candidate page
			// is before this one and the search must continue below.
			if cmp(value, index.MaxValue(nextIdx-1)) == 0 {
				topIdx = nextIdx
			} else {
				return nextIdx
			}
		default:
			// min < value <= max: if present at all, the value is in this
			// page.
			return nextIdx
		}
	}

	// The loop was left with a single candidate page; check its bounds since
	// they may still exclude the value.
	if curIdx < n {
		min := index.MinValue(curIdx)
		max := index.MaxValue(curIdx)

		if cmp(value, min) < 0 || cmp(value, max) > 0 {
			curIdx = n
		}
	}

	return curIdx
}

func linearSearch[T any](index PageIndex[T], value T, cmp func(T, T) int) int {
	n := index.NumPages()

	for i := 0; i < n; i++ {
		min := index.MinValue(i)
		max := index.MaxValue(i)

		if cmp(min, value) <= 0 && cmp(value, max) <= 0 {
			return i
		}
	}

	return n
}
