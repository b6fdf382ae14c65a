// Package codec
// Author: momentics <momentics@gmail.com>
//
// Wire codecs for buffer persistence and transfer. The binary form keeps
// the two-segment physical layout so encoding never forces a linearize;
// the JSON form trades that for interoperability.

package codec

import (
	"encoding/binary"
	"math"

	"github.com/momentics/circbuf/api"
)

// ValueCodec encodes single elements for the binary container codec.
type ValueCodec[T any] interface {
	// Append encodes item onto dst and returns the extended slice.
	Append(dst []byte, item T) []byte

	// Decode reads one element from the front of src, returning the
	// element and the number of bytes consumed.
	Decode(src []byte) (item T, n int, err error)
}

// Int64Codec encodes int64 elements as fixed 8-byte little-endian words.
type Int64Codec struct{}

func (Int64Codec) Append(dst []byte, item int64) []byte {
	return binary.LittleEndian.AppendUint64(dst, uint64(item))
}

func (Int64Codec) Decode(src []byte) (int64, int, error) {
	if len(src) < 8 {
		return 0, 0, api.ErrCodecShortBuffer
	}
	return int64(binary.LittleEndian.Uint64(src)), 8, nil
}

// Float64Codec encodes float64 elements as IEEE-754 bits, little-endian.
type Float64Codec struct{}

func (Float64Codec) Append(dst []byte, item float64) []byte {
	return binary.LittleEndian.AppendUint64(dst, math.Float64bits(item))
}

func (Float64Codec) Decode(src []byte) (float64, int, error) {
	if len(src) < 8 {
		return 0, 0, api.ErrCodecShortBuffer
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(src)), 8, nil
}

// StringCodec encodes strings with a 4-byte little-endian length prefix.
type StringCodec struct{}

func (StringCodec) Append(dst []byte, item string) []byte {
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(item)))
	return append(dst, item...)
}

func (StringCodec) Decode(src []byte) (string, int, error) {
	if len(src) < 4 {
		return "", 0, api.ErrCodecShortBuffer
	}
	n := int(binary.LittleEndian.Uint32(src))
	if len(src) < 4+n {
		return "", 0, api.ErrCodecShortBuffer
	}
	return string(src[4 : 4+n]), 4 + n, nil
}
