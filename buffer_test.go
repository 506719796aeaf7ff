package polarbear_test

import (
	"io"
	"math/rand"
	"testing"

	"github.com/valoox/polarbear"
	"github.com/valoox/polarbear/compress"
	"github.com/valoox/polarbear/compress/brotli"
	"github.com/valoox/polarbear/compress/gzip"
	"github.com/valoox/polarbear/compress/lz4"
	"github.com/valoox/polarbear/compress/snappy"
	"github.com/valoox/polarbear/compress/uncompressed"
	"github.com/valoox/polarbear/compress/zstd"
)

var codecs = []struct {
	scenario string
	codec    compress.Codec
}{
	{scenario: "uncompressed", codec: new(uncompressed.Codec)},
	{scenario: "snappy", codec: new(snappy.Codec)},
	{scenario: "gzip", codec: new(gzip.Codec)},
	{scenario: "brotli", codec: new(brotli.Codec)},
	{scenario: "zstd", codec: new(zstd.Codec)},
	{scenario: "lz4", codec: new(lz4.Codec)},
}

func TestBufferReadAt(t *testing.T) {
	buffer := polarbear.NewBuffer([]int64{0, 1, 2, 3, 4})

	dst := make([]int64, 3)
	n, err := buffer.ReadAt(dst, 1)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 || dst[0] != 1 || dst[2] != 3 {
		t.Errorf("wrong read: got=%v n=%d", dst, n)
	}

	// Short read at the tail.
	n, err = buffer.ReadAt(dst, 3)
	if err != io.EOF {
		t.Errorf("wrong error on short read: got=%v want=%v", err, io.EOF)
	}
	if n != 2 || dst[0] != 3 || dst[1] != 4 {
		t.Errorf("wrong short read: got=%v n=%d", dst[:n], n)
	}

	// Reads past the end.
	if n, err = buffer.ReadAt(dst, 5); n != 0 || err != io.EOF {
		t.Errorf("read past the end: got=(%d,%v) want=(0,EOF)", n, err)
	}

	// Negative offsets are rejected.
	if _, err = buffer.ReadAt(dst, -1); err == nil {
		t.Error("negative offset accepted")
	}
}

func TestBufferSlice(t *testing.T) {
	buffer := polarbear.NewBuffer([]float64{0, 1, 2, 3, 4, 5})

	sub := buffer.Slice(2, 5)
	if n := sub.Len(); n != 3 {
		t.Fatalf("wrong slice length: got=%d want=3", n)
	}
	values, err := polarbear.Values(sub)
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []float64{2, 3, 4} {
		if values[i] != want {
			t.Errorf("value at index %d: got=%g want=%g", i, values[i], want)
		}
	}

	nested := sub.Slice(1, 3)
	values, err = polarbear.Values(nested)
	if err != nil {
		t.Fatal(err)
	}
	if len(values) != 2 || values[0] != 3 || values[1] != 4 {
		t.Errorf("wrong nested slice content: got=%v", values)
	}
}

func TestCompressedBuffer(t *testing.T) {
	prng := rand.New(rand.NewSource(0))

	sizes := []int{0, 1, 63, 64, 65, 1000}
	for _, test := range codecs {
		t.Run(test.scenario, func(t *testing.T) {
			for _, size := range sizes {
				values := make([]int64, size)
				for i := range values {
					values[i] = prng.Int63n(1000)
				}

				buffer, err := polarbear.NewCompressed(values, test.codec, polarbear.PageSize(64))
				if err != nil {
					t.Fatal(err)
				}
				if buffer.Len() != size {
					t.Fatalf("wrong length: got=%d want=%d", buffer.Len(), size)
				}

				content, err := polarbear.Values[int64](buffer)
				if err != nil {
					t.Fatal(err)
				}
				for i := range values {
					if content[i] != values[i] {
						t.Fatalf("size %d: value at index %d mismatch: got=%d want=%d", size, i, content[i], values[i])
					}
				}
			}
		})
	}
}

func TestCompressedBufferPages(t *testing.T) {
	values := []int32{1, 2, 3, 10, 20, 30, 100, 200}

	buffer, err := polarbear.NewCompressed(values, new(zstd.Codec), polarbear.PageSize(3))
	if err != nil {
		t.Fatal(err)
	}

	if n := buffer.NumPages(); n != 3 {
		t.Fatalf("wrong number of pages: got=%d want=3", n)
	}
	if !buffer.IsAscending() {
		t.Error("ascending content does not report as ascending")
	}

	bounds := []struct{ min, max int32 }{
		{min: 1, max: 3},
		{min: 10, max: 30},
		{min: 100, max: 200},
	}
	for i, want := range bounds {
		if min := buffer.MinValue(i); min != want.min {
			t.Errorf("page %d min: got=%d want=%d", i, min, want.min)
		}
		if max := buffer.MaxValue(i); max != want.max {
			t.Errorf("page %d max: got=%d want=%d", i, max, want.max)
		}
	}
}

func TestCompressedBufferReadAcrossPages(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i)
	}

	buffer, err := polarbear.NewCompressed(values, new(lz4.Codec), polarbear.PageSize(7))
	if err != nil {
		t.Fatal(err)
	}

	// A read spanning several pages must stitch them back together.
	dst := make([]float64, 50)
	n, err := buffer.ReadAt(dst, 25)
	if err != nil {
		t.Fatal(err)
	}
	if n != 50 {
		t.Fatalf("wrong read length: got=%d want=50", n)
	}
	for i := range dst {
		if dst[i] != float64(25+i) {
			t.Fatalf("value at index %d: got=%g want=%g", i, dst[i], float64(25+i))
		}
	}

	sub := buffer.Slice(95, 100)
	content, err := polarbear.Values(sub)
	if err != nil {
		t.Fatal(err)
	}
	for i := range content {
		if content[i] != float64(95+i) {
			t.Errorf("sliced value at index %d: got=%g want=%g", i, content[i], float64(95+i))
		}
	}
}

func TestCompressedBufferInvalidPageSize(t *testing.T) {
	if _, err := polarbear.NewCompressed([]int64{1}, new(uncompressed.Codec), polarbear.PageSize(0)); err == nil {
		t.Error("page size of zero accepted")
	}
}
