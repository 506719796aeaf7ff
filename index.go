package polarbear

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/exp/constraints"
)

// ErrUnsortedLabels is returned when constructing a sorted index from labels
// which are not in ascending order.
var ErrUnsortedLabels = errors.New("polarbear: index labels are not in ascending order")

// Index is a searchable ordered collection of labels, mapping each label to
// its position in the data it indexes.
//
// Indexes do not copy nor mutate the labels they are constructed from; the
// label slices are retained and must not be modified by the caller for the
// lifetime of the index.
type Index[T any] interface {
	// Returns the number of labels in the index.
	Len() int

	// Returns the label at position i, panicking if i is out of range.
	Label(i int) T

	// Returns the labels of the index, in position order. The returned slice
	// is shared with the index and must be treated as read-only.
	Labels() []T

	// Returns the position of the given label, and whether the label exists
	// in the index. When the label occurs multiple times, the position of
	// its first occurrence in position order is returned.
	Lookup(label T) (int, bool)

	// Reports whether the labels are held in ascending order, in which case
	// lookups are pure binary searches.
	IsSorted() bool

	// Returns the sub-index over positions [i:j).
	Slice(i, j int) Index[T]
}

// NewRange returns an index of n positional labels 0..n-1. It is the
// degenerate "no labels" axis used when data has no meaningful label set.
func NewRange(n int) Index[int] {
	if n < 0 {
		panic("polarbear: negative range index length")
	}
	return &rangeIndex{n: n}
}

// NewSorted returns an index over labels which must already be in ascending
// order; ErrUnsortedLabels is returned otherwise. Lookups are binary
// searches.
func NewSorted[T constraints.Ordered](labels []T) (Index[T], error) {
	return NewSortedFunc(labels, Compare[T])
}

// NewSortedFunc is like NewSorted for label types without a built-in order,
// using the three-way comparison function passed as argument.
func NewSortedFunc[T any](labels []T, cmp func(T, T) int) (Index[T], error) {
	if !IsSortedFunc(labels, cmp) {
		return nil, ErrUnsortedLabels
	}
	return &sortedIndex[T]{labels: labels, cmp: cmp}, nil
}

// NewIndex returns an index over labels in any order. If the labels are
// already sorted the returned index is the same as the one produced by
// NewSorted; otherwise the index retains the original label positions and
// keeps a sorted permutation on the side, so lookups remain binary searches.
func NewIndex[T constraints.Ordered](labels []T) Index[T] {
	return NewIndexFunc(labels, Compare[T])
}

// NewIndexFunc is like NewIndex using the comparison function passed as
// argument to determine the relative order of labels.
func NewIndexFunc[T any](labels []T, cmp func(T, T) int) Index[T] {
	if IsSortedFunc(labels, cmp) {
		return &sortedIndex[T]{labels: labels, cmp: cmp}
	}
	perm := make([]int, len(labels))
	for i := range perm {
		perm[i] = i
	}
	// Stable so that equal labels resolve to their first occurrence.
	sort.SliceStable(perm, func(i, j int) bool {
		return cmp(labels[perm[i]], labels[perm[j]]) < 0
	})
	return &permutedIndex[T]{labels: labels, perm: perm, cmp: cmp}
}

type rangeIndex struct {
	base int
	n    int
}

func (idx *rangeIndex) Len() int { return idx.n }

func (idx *rangeIndex) Label(i int) int {
	if i < 0 || i >= idx.n {
		panic(fmt.Sprintf("polarbear: label position out of range: %d not in [0:%d]", i, idx.n))
	}
	return idx.base + i
}

func (idx *rangeIndex) Labels() []int {
	labels := make([]int, idx.n)
	for i := range labels {
		labels[i] = idx.base + i
	}
	return labels
}

func (idx *rangeIndex) Lookup(label int) (int, bool) {
	if label < idx.base || label >= idx.base+idx.n {
		return 0, false
	}
	return label - idx.base, true
}

func (idx *rangeIndex) IsSorted() bool { return true }

func (idx *rangeIndex) Slice(i, j int) Index[int] {
	checkSliceBounds(i, j, idx.n)
	return &rangeIndex{base: idx.base + i, n: j - i}
}

type sortedIndex[T any] struct {
	labels []T
	cmp    func(T, T) int
}

func (idx *sortedIndex[T]) Len() int       { return len(idx.labels) }
func (idx *sortedIndex[T]) Label(i int) T  { return idx.labels[i] }
func (idx *sortedIndex[T]) Labels() []T    { return idx.labels }
func (idx *sortedIndex[T]) IsSorted() bool { return true }

func (idx *sortedIndex[T]) Lookup(label T) (int, bool) {
	i := sort.Search(len(idx.labels), func(i int) bool {
		return idx.cmp(idx.labels[i], label) >= 0
	})
	if i == len(idx.labels) || idx.cmp(idx.labels[i], label) != 0 {
		return 0, false
	}
	return i, true
}

func (idx *sortedIndex[T]) Slice(i, j int) Index[T] {
	checkSliceBounds(i, j, len(idx.labels))
	return &sortedIndex[T]{labels: idx.labels[i:j], cmp: idx.cmp}
}

// permutedIndex retains labels in their original positions and keeps the
// ascending permutation of those positions, trading construction time for
// logarithmic lookups on unsorted labels.
type permutedIndex[T any] struct {
	labels []T
	perm   []int
	cmp    func(T, T) int
}

func (idx *permutedIndex[T]) Len() int       { return len(idx.labels) }
func (idx *permutedIndex[T]) Label(i int) T  { return idx.labels[i] }
func (idx *permutedIndex[T]) Labels() []T    { return idx.labels }
func (idx *permutedIndex[T]) IsSorted() bool { return false }

func (idx *permutedIndex[T]) Lookup(label T) (int, bool) {
	i := sort.Search(len(idx.perm), func(i int) bool {
		return idx.cmp(idx.labels[idx.perm[i]], label) >= 0
	})
	if i == len(idx.perm) || idx.cmp(idx.labels[idx.perm[i]], label) != 0 {
		return 0, false
	}
	// The permutation is stable, so the leftmost equal label is also the
	// first occurrence in position order.
	return idx.perm[i], true
}

func (idx *permutedIndex[T]) Slice(i, j int) Index[T] {
	checkSliceBounds(i, j, len(idx.labels))
	// The permutation indexes the full label slice and cannot be sliced
	// directly; rebuild it for the sub-range.
	return NewIndexFunc(idx.labels[i:j], idx.cmp)
}

func checkSliceBounds(i, j, n int) {
	if i < 0 || j < i || j > n {
		panic(fmt.Sprintf("polarbear: slice bounds out of range: [%d:%d] with length %d", i, j, n))
	}
}
