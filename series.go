package polarbear

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrLengthMismatch is returned when composing an index and data of
// different lengths.
var ErrLengthMismatch = errors.New("polarbear: index and values have different lengths")

// Series is the simplest dataset: one index aligned against one buffer of
// values, so that values can be addressed by label as well as by position.
type Series[L, V any] struct {
	index  Index[L]
	values Buffer[V]
}

// NewSeries composes an index and a buffer into a series. The two must have
// the same length or ErrLengthMismatch is returned.
func NewSeries[L, V any](index Index[L], values Buffer[V]) (*Series[L, V], error) {
	if index.Len() != values.Len() {
		return nil, fmt.Errorf("%w: index has %d labels but data has %d values",
			ErrLengthMismatch, index.Len(), values.Len())
	}
	return &Series[L, V]{index: index, values: values}, nil
}

// SeriesOf builds an in-memory series from parallel slices of labels and
// values, indexing the labels with NewIndex.
func SeriesOf[L constraints.Ordered, V any](labels []L, values []V) (*Series[L, V], error) {
	return NewSeries(NewIndex(labels), NewBuffer(values))
}

// Len returns the number of labelled values in the series.
func (s *Series[L, V]) Len() int { return s.index.Len() }

// Index returns the index of the series.
func (s *Series[L, V]) Index() Index[L] { return s.index }

// Data returns the buffer holding the values of the series.
func (s *Series[L, V]) Data() Buffer[V] { return s.values }

// At returns the label and value at position i. It panics if i is out of
// range, and returns an error only when the underlying storage fails.
func (s *Series[L, V]) At(i int) (L, V, error) {
	label := s.index.Label(i)
	var value [1]V
	if _, err := s.values.ReadAt(value[:], i); err != nil {
		var zero V
		return label, zero, err
	}
	return label, value[0], nil
}

// Get returns the value associated with the given label, and whether the
// label exists in the index.
func (s *Series[L, V]) Get(label L) (V, bool, error) {
	i, ok := s.index.Lookup(label)
	if !ok {
		var zero V
		return zero, false, nil
	}
	var value [1]V
	if _, err := s.values.ReadAt(value[:], i); err != nil {
		var zero V
		return zero, false, err
	}
	return value[0], true, nil
}

// Slice returns the sub-series over positions [i:j), sharing storage with
// the original.
func (s *Series[L, V]) Slice(i, j int) *Series[L, V] {
	return &Series[L, V]{
		index:  s.index.Slice(i, j),
		values: s.values.Slice(i, j),
	}
}

// Labels returns the labels of the series in position order. The returned
// slice is shared with the index and must be treated as read-only.
func (s *Series[L, V]) Labels() []L { return s.index.Labels() }

// Values materializes the values of the series into a new slice.
func (s *Series[L, V]) Values() ([]V, error) { return Values(s.values) }
