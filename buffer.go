package polarbear

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/valoox/polarbear/compress"
	"github.com/valoox/polarbear/internal/unsafecast"
)

// Buffer is a one-dimensional array of homogeneous values behind an
// interface, leaving the storage representation to the implementation. The
// package provides dense in-memory buffers (NewBuffer), page-compressed
// buffers (NewCompressed), and memory-mapped file buffers (Map).
//
// Buffers are read-only; all implementations are safe to use concurrently
// from multiple goroutines.
type Buffer[T any] interface {
	// Returns the number of values in the buffer.
	Len() int

	// Reads len(dst) values starting at the given offset, returning the
	// number of values read. When fewer than len(dst) values remain, the
	// available values are read and the error is io.EOF.
	ReadAt(dst []T, off int) (int, error)

	// Returns a view of the buffer over values [i:j). The view shares the
	// underlying storage; no data is copied.
	Slice(i, j int) Buffer[T]
}

var errNegativeOffset = errors.New("polarbear: negative buffer offset")

// primitive matches the fixed-width value types which can be reinterpreted
// as raw bytes, the requirement for compressed and memory-mapped storage.
type primitive interface {
	int32 | int64 | uint32 | uint64 | float32 | float64
}

// NewBuffer returns a dense in-memory buffer wrapping the given values. The
// slice is retained, not copied; it must not be modified by the caller for
// the lifetime of the buffer.
func NewBuffer[T any](values []T) Buffer[T] {
	return &sliceBuffer[T]{values: values}
}

// Values materializes the full content of a buffer into a new slice.
func Values[T any](b Buffer[T]) ([]T, error) {
	values := make([]T, b.Len())
	n, err := b.ReadAt(values, 0)
	if err != nil && !(err == io.EOF && n == len(values)) {
		return nil, err
	}
	if n < len(values) {
		return nil, io.ErrUnexpectedEOF
	}
	return values, nil
}

type sliceBuffer[T any] struct{ values []T }

func (b *sliceBuffer[T]) Len() int { return len(b.values) }

func (b *sliceBuffer[T]) ReadAt(dst []T, off int) (int, error) {
	return readValuesAt(b.values, dst, off)
}

func (b *sliceBuffer[T]) Slice(i, j int) Buffer[T] {
	checkSliceBounds(i, j, len(b.values))
	return &sliceBuffer[T]{values: b.values[i:j]}
}

func readValuesAt[T any](values, dst []T, off int) (int, error) {
	if off < 0 {
		return 0, errNegativeOffset
	}
	if off >= len(values) {
		if len(dst) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	n := copy(dst, values[off:])
	if n < len(dst) {
		return n, io.EOF
	}
	return n, nil
}

// DefaultPageSize is the number of values held in each page of a compressed
// buffer when no explicit page size is configured.
const DefaultPageSize = 4096

// CompressedOption configures the construction of compressed buffers.
type CompressedOption func(*compressedConfig)

// PageSize configures the number of values stored in each compressed page.
func PageSize(numValues int) CompressedOption {
	return func(config *compressedConfig) { config.pageSize = numValues }
}

type compressedConfig struct {
	pageSize int
}

// Compressed is a Buffer storing fixed-width values in independently
// compressed pages. Reads decompress only the pages covering the requested
// range, keeping the most recently decoded page cached.
//
// The buffer records the bounds of each page and whether the values were
// ascending at construction time, implementing PageIndex so that sorted
// content can be searched without decompressing it (see Find).
type Compressed[T primitive] struct {
	codec     compress.Codec
	pages     [][]byte
	bounds    []pageBounds[T]
	pageSize  int
	numValues int
	ascending bool

	mutex  sync.Mutex
	cached int
	page   []T
	buffer []byte
}

type pageBounds[T any] struct{ min, max T }

// NewCompressed returns a compressed buffer holding the given values, using
// the codec passed as argument to encode each page.
func NewCompressed[T primitive](values []T, codec compress.Codec, options ...CompressedOption) (*Compressed[T], error) {
	config := compressedConfig{pageSize: DefaultPageSize}
	for _, option := range options {
		option(&config)
	}
	if config.pageSize <= 0 {
		return nil, fmt.Errorf("polarbear: invalid page size: %d", config.pageSize)
	}

	b := &Compressed[T]{
		codec:     codec,
		pageSize:  config.pageSize,
		numValues: len(values),
		ascending: IsSorted(values),
		cached:    -1,
	}

	for off := 0; off < len(values); off += config.pageSize {
		end := off + config.pageSize
		if end > len(values) {
			end = len(values)
		}
		page := values[off:end]

		data, err := codec.Encode(nil, unsafecast.Bytes(page))
		if err != nil {
			return nil, fmt.Errorf("polarbear: compressing page %d: %w", len(b.pages), err)
		}
		min, max := Bounds(page)
		b.pages = append(b.pages, data)
		b.bounds = append(b.bounds, pageBounds[T]{min: min, max: max})
	}

	return b, nil
}

func (b *Compressed[T]) Len() int { return b.numValues }

func (b *Compressed[T]) ReadAt(dst []T, off int) (int, error) {
	if off < 0 {
		return 0, errNegativeOffset
	}

	b.mutex.Lock()
	defer b.mutex.Unlock()

	n := 0
	for n < len(dst) && off < b.numValues {
		page, err := b.load(off / b.pageSize)
		if err != nil {
			return n, err
		}
		c := copy(dst[n:], page[off%b.pageSize:])
		n += c
		off += c
	}
	if n < len(dst) {
		return n, io.EOF
	}
	return n, nil
}

func (b *Compressed[T]) Slice(i, j int) Buffer[T] {
	checkSliceBounds(i, j, b.numValues)
	return &bufferSlice[T]{buffer: b, base: i, n: j - i}
}

// load returns the decoded values of the given page, reusing the cached
// decode when the page was the last one read. The caller must hold the
// mutex.
func (b *Compressed[T]) load(i int) ([]T, error) {
	if i == b.cached {
		return b.page, nil
	}
	buffer, err := b.codec.Decode(b.buffer[:0], b.pages[i])
	if err != nil {
		return nil, fmt.Errorf("polarbear: decompressing page %d: %w", i, err)
	}
	b.buffer = buffer
	b.page = unsafecast.Slice[T](buffer)
	b.cached = i
	return b.page, nil
}

// NumPages returns the number of compressed pages in the buffer.
func (b *Compressed[T]) NumPages() int { return len(b.pages) }

// MinValue returns the smallest value of page i.
func (b *Compressed[T]) MinValue(i int) T { return b.bounds[i].min }

// MaxValue returns the largest value of page i.
func (b *Compressed[T]) MaxValue(i int) T { return b.bounds[i].max }

// IsAscending reports whether the buffer content was in ascending order when
// it was constructed.
func (b *Compressed[T]) IsAscending() bool { return b.ascending }

// bufferSlice is the generic sub-range view used by buffer implementations
// with non-trivial storage.
type bufferSlice[T any] struct {
	buffer Buffer[T]
	base   int
	n      int
}

func (b *bufferSlice[T]) Len() int { return b.n }

func (b *bufferSlice[T]) ReadAt(dst []T, off int) (int, error) {
	if off < 0 {
		return 0, errNegativeOffset
	}
	if off >= b.n {
		if len(dst) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	eof := false
	if max := b.n - off; len(dst) > max {
		dst = dst[:max]
		eof = true
	}
	n, err := b.buffer.ReadAt(dst, b.base+off)
	if err == nil && eof {
		err = io.EOF
	}
	return n, err
}

func (b *bufferSlice[T]) Slice(i, j int) Buffer[T] {
	checkSliceBounds(i, j, b.n)
	return &bufferSlice[T]{buffer: b.buffer, base: b.base + i, n: j - i}
}
