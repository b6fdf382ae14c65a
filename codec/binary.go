// File: codec/binary.go
// Author: momentics <momentics@gmail.com>
//
// Binary container codec. Layout, all integers little-endian uint64:
//
//	capacity | len(segment one) | len(segment two) | elements...
//
// Elements follow in logical order. Writing the two segment lengths keeps
// the encoder a straight copy of the physical layout; the decoder does
// not care where the split was and rebuilds a linearized buffer.

package codec

import (
	"encoding/binary"
	"math"

	"github.com/momentics/circbuf"
	"github.com/momentics/circbuf/api"
)

const binaryHeaderLen = 24

// EncodeBinary serializes the buffer using vc for the elements.
func EncodeBinary[T any](b *circbuf.Buffer[T], vc ValueCodec[T]) []byte {
	one, two := b.ArrayOne(), b.ArrayTwo()
	dst := make([]byte, 0, binaryHeaderLen+8*(len(one)+len(two)))
	dst = binary.LittleEndian.AppendUint64(dst, uint64(b.Cap()))
	dst = binary.LittleEndian.AppendUint64(dst, uint64(len(one)))
	dst = binary.LittleEndian.AppendUint64(dst, uint64(len(two)))
	for _, item := range one {
		dst = vc.Append(dst, item)
	}
	for _, item := range two {
		dst = vc.Append(dst, item)
	}
	return dst
}

// DecodeBinary rebuilds a buffer from an EncodeBinary image. The result
// is linearized regardless of the wrap state at encoding time.
func DecodeBinary[T any](src []byte, vc ValueCodec[T], opts ...circbuf.Option[T]) (*circbuf.Buffer[T], error) {
	capacity, size, body, err := binaryHeader(src)
	if err != nil {
		return nil, err
	}
	b, err := circbuf.New[T](capacity, opts...)
	if err != nil {
		return nil, err
	}
	if err := decodeInto(body, size, vc, func(item T) { b.PushBack(item) }); err != nil {
		return nil, err
	}
	return b, nil
}

// EncodeBinaryAdaptive serializes an adaptive buffer, prefixing the
// element stream with its capacity control.
func EncodeBinaryAdaptive[T any](a *circbuf.Adaptive[T], vc ValueCodec[T]) []byte {
	ctrl := a.Control()
	dst := make([]byte, 0, binaryHeaderLen+8+8*a.Len())
	dst = binary.LittleEndian.AppendUint64(dst, uint64(ctrl.Capacity))
	dst = binary.LittleEndian.AppendUint64(dst, uint64(ctrl.MinCapacity))
	dst = binary.LittleEndian.AppendUint64(dst, uint64(a.Len()))
	one, two := a.ArrayOne(), a.ArrayTwo()
	for _, item := range one {
		dst = vc.Append(dst, item)
	}
	for _, item := range two {
		dst = vc.Append(dst, item)
	}
	return dst
}

// DecodeBinaryAdaptive rebuilds an adaptive buffer from an
// EncodeBinaryAdaptive image.
func DecodeBinaryAdaptive[T any](src []byte, vc ValueCodec[T], opts ...circbuf.Option[T]) (*circbuf.Adaptive[T], error) {
	if len(src) < binaryHeaderLen {
		return nil, api.ErrCodecShortBuffer
	}
	ctrl := circbuf.CapacityControl{
		Capacity:    headerInt(src[0:8]),
		MinCapacity: headerInt(src[8:16]),
	}
	size := headerInt(src[16:24])
	if ctrl.Capacity < 0 || ctrl.MinCapacity < 0 || size < 0 || size > ctrl.Capacity {
		return nil, api.ErrCodecBadHeader
	}
	a, err := circbuf.NewAdaptive[T](ctrl, opts...)
	if err != nil {
		return nil, err
	}
	var pushErr error
	err = decodeInto(src[binaryHeaderLen:], size, vc, func(item T) {
		if pushErr == nil {
			pushErr = a.PushBack(item)
		}
	})
	if err != nil {
		return nil, err
	}
	if pushErr != nil {
		return nil, pushErr
	}
	return a, nil
}

func binaryHeader(src []byte) (capacity, size int, body []byte, err error) {
	if len(src) < binaryHeaderLen {
		return 0, 0, nil, api.ErrCodecShortBuffer
	}
	capacity = headerInt(src[0:8])
	one := headerInt(src[8:16])
	two := headerInt(src[16:24])
	if capacity < 0 || one < 0 || two < 0 || one+two > capacity {
		return 0, 0, nil, api.ErrCodecBadHeader
	}
	return capacity, one + two, src[binaryHeaderLen:], nil
}

func headerInt(src []byte) int {
	v := binary.LittleEndian.Uint64(src)
	if v > math.MaxInt64 {
		return -1
	}
	return int(v)
}

func decodeInto[T any](body []byte, size int, vc ValueCodec[T], push func(T)) error {
	for i := 0; i < size; i++ {
		item, n, err := vc.Decode(body)
		if err != nil {
			return err
		}
		body = body[n:]
		push(item)
	}
	return nil
}
