// Package unsafecast exposes utilities to reinterpret slices of fixed-width
// values as slices of another fixed-width type, without copying the
// underlying memory.
package unsafecast

import "unsafe"

// Slice reinterprets the data slice as a slice of To. The returned slice
// shares the memory of the input; its length is scaled by the ratio of the
// two element sizes, truncating when the sizes do not divide evenly.
func Slice[To, From any](data []From) []To {
	var to To
	var from From
	n := (uintptr(len(data)) * unsafe.Sizeof(from)) / unsafe.Sizeof(to)
	return unsafe.Slice((*To)(pointerOf(data)), int(n))
}

// Bytes is a shorthand for viewing a slice of fixed-width values as the raw
// bytes backing it.
func Bytes[T any](data []T) []byte {
	return Slice[byte](data)
}

func pointerOf[T any](data []T) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&data))
}
