//go:build unix

package polarbear

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/valoox/polarbear/internal/unsafecast"
)

// Mapped is a read-only Buffer backed by a memory-mapped file of fixed-width
// values in native byte order. Mapping a file gives random access to on-disk
// data without loading it in memory up front.
//
// The buffer must be closed when it is no longer needed to release the
// mapping; reading from a closed buffer returns an error.
type Mapped[T primitive] struct {
	data   []byte
	values []T
}

// Map opens the file at the given path and maps its content as a buffer of
// values of type T. The file size must be a multiple of the value width.
func Map[T primitive](path string) (*Mapped[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	var zero T
	size, width := stat.Size(), int64(unsafe.Sizeof(zero))
	if size%width != 0 {
		return nil, fmt.Errorf("polarbear: mapping %s: file size %d is not a multiple of the %d byte value width", path, size, width)
	}
	if size == 0 {
		return &Mapped[T]{}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("polarbear: mapping %s: %w", path, err)
	}

	return &Mapped[T]{data: data, values: unsafecast.Slice[T](data)}, nil
}

func (m *Mapped[T]) Len() int { return len(m.values) }

func (m *Mapped[T]) ReadAt(dst []T, off int) (int, error) {
	return readValuesAt(m.values, dst, off)
}

func (m *Mapped[T]) Slice(i, j int) Buffer[T] {
	checkSliceBounds(i, j, len(m.values))
	return &bufferSlice[T]{buffer: m, base: i, n: j - i}
}

// Close releases the file mapping. The buffer must not be read after it was
// closed.
func (m *Mapped[T]) Close() error {
	data := m.data
	m.data, m.values = nil, nil
	if data == nil {
		return nil
	}
	return unix.Munmap(data)
}
