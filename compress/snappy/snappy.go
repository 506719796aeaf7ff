// Package snappy implements the SNAPPY compression codec.
package snappy

import "github.com/klauspost/compress/snappy"

// Codec compresses and decompresses snappy blocks. The snappy block format
// is not framed, so the codec does not need pooled readers or writers.
type Codec struct {
}

func (c *Codec) String() string {
	return "SNAPPY"
}

func (c *Codec) Encode(dst, src []byte) ([]byte, error) {
	return snappy.Encode(dst, src), nil
}

func (c *Codec) Decode(dst, src []byte) ([]byte, error) {
	return snappy.Decode(dst, src)
}
