// File: codec/codec_test.go
// Author: momentics <momentics@gmail.com>

package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/circbuf"
	"github.com/momentics/circbuf/api"
)

func wrappedInt64(t *testing.T) *circbuf.Buffer[int64] {
	t.Helper()
	b := circbuf.MustNew[int64](4)
	for i := int64(1); i <= 6; i++ {
		b.PushBack(i)
	}
	require.False(t, b.IsLinearized())
	return b
}

func bufContents[T any](b *circbuf.Buffer[T]) []T {
	out := make([]T, 0, b.Len())
	b.Each(func(_ int, item T) { out = append(out, item) })
	return out
}

func TestBinaryRoundTripWrapped(t *testing.T) {
	b := wrappedInt64(t)
	data := EncodeBinary[int64](b, Int64Codec{})

	got, err := DecodeBinary[int64](data, Int64Codec{})
	require.NoError(t, err)
	assert.Equal(t, b.Cap(), got.Cap())
	assert.Equal(t, []int64{3, 4, 5, 6}, bufContents(got))
	assert.True(t, got.IsLinearized())
}

func TestBinaryRoundTripEmpty(t *testing.T) {
	b := circbuf.MustNew[int64](3)
	got, err := DecodeBinary[int64](EncodeBinary[int64](b, Int64Codec{}), Int64Codec{})
	require.NoError(t, err)
	assert.Equal(t, 3, got.Cap())
	assert.True(t, got.Empty())
}

func TestBinaryStrings(t *testing.T) {
	b := circbuf.MustNew[string](3)
	b.PushBack("alpha")
	b.PushBack("")
	b.PushBack("gamma")
	got, err := DecodeBinary[string](EncodeBinary[string](b, StringCodec{}), StringCodec{})
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "", "gamma"}, bufContents(got))
}

func TestBinaryShortBuffer(t *testing.T) {
	b := wrappedInt64(t)
	data := EncodeBinary[int64](b, Int64Codec{})

	_, err := DecodeBinary[int64](data[:10], Int64Codec{})
	assert.ErrorIs(t, err, api.ErrCodecShortBuffer)

	_, err = DecodeBinary[int64](data[:len(data)-4], Int64Codec{})
	assert.ErrorIs(t, err, api.ErrCodecShortBuffer)
}

func TestBinaryBadHeader(t *testing.T) {
	b := circbuf.MustNew[int64](2)
	b.PushBack(1)
	data := EncodeBinary[int64](b, Int64Codec{})
	// claim more stored elements than the capacity allows
	data[8] = 0xff
	_, err := DecodeBinary[int64](data, Int64Codec{})
	assert.ErrorIs(t, err, api.ErrCodecBadHeader)
}

func TestBinaryAdaptiveRoundTrip(t *testing.T) {
	ctrl := circbuf.CapacityControl{Capacity: 10, MinCapacity: 2}
	a, err := circbuf.NewAdaptiveFromSlice(ctrl, []int64{1, 2, 3})
	require.NoError(t, err)

	got, err := DecodeBinaryAdaptive[int64](EncodeBinaryAdaptive[int64](a, Int64Codec{}), Int64Codec{})
	require.NoError(t, err)
	assert.Equal(t, ctrl.Capacity, got.Control().Capacity)
	assert.Equal(t, ctrl.MinCapacity, got.Control().MinCapacity)
	assert.Equal(t, 3, got.Len())
	v, err := got.At(2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)
}

func TestJSONRoundTrip(t *testing.T) {
	b := wrappedInt64(t)
	data, err := EncodeJSON(b)
	require.NoError(t, err)
	assert.JSONEq(t, `{"capacity":4,"items":[3,4,5,6]}`, string(data))

	got, err := DecodeJSON[int64](data)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 4, 5, 6}, bufContents(got))
	assert.Equal(t, 4, got.Cap())
}

func TestJSONBadEnvelope(t *testing.T) {
	_, err := DecodeJSON[int64]([]byte(`{"capacity":1,"items":[1,2,3]}`))
	assert.ErrorIs(t, err, api.ErrCodecBadHeader)
}

func TestJSONAdaptiveRoundTrip(t *testing.T) {
	ctrl := circbuf.CapacityControl{Capacity: 8, MinCapacity: 2}
	a, err := circbuf.NewAdaptiveFromSlice(ctrl, []string{"x", "y"})
	require.NoError(t, err)

	data, err := EncodeJSONAdaptive(a)
	require.NoError(t, err)
	got, err := DecodeJSONAdaptive[string](data)
	require.NoError(t, err)
	assert.Equal(t, ctrl, got.Control())
	assert.Equal(t, 2, got.Len())
}

func TestFloat64Codec(t *testing.T) {
	b := circbuf.MustNew[float64](2)
	b.PushBack(3.5)
	b.PushBack(-0.25)
	got, err := DecodeBinary[float64](EncodeBinary[float64](b, Float64Codec{}), Float64Codec{})
	require.NoError(t, err)
	assert.Equal(t, []float64{3.5, -0.25}, bufContents(got))
}
