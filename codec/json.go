// File: codec/json.go
// Author: momentics <momentics@gmail.com>
//
// JSON envelope codec. Elements are emitted in logical order, so the
// document is stable across wrap states and safe to diff.

package codec

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/momentics/circbuf"
	"github.com/momentics/circbuf/api"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

type bufferEnvelope[T any] struct {
	Capacity int `json:"capacity"`
	Items    []T `json:"items"`
}

type adaptiveEnvelope[T any] struct {
	Capacity    int `json:"capacity"`
	MinCapacity int `json:"min_capacity"`
	Items       []T `json:"items"`
}

// EncodeJSON serializes the buffer as {"capacity": N, "items": [...]}.
func EncodeJSON[T any](b *circbuf.Buffer[T]) ([]byte, error) {
	return jsonAPI.Marshal(bufferEnvelope[T]{
		Capacity: b.Cap(),
		Items:    collect[T](b.Len(), b.Each),
	})
}

// DecodeJSON rebuilds a buffer from an EncodeJSON document.
func DecodeJSON[T any](data []byte, opts ...circbuf.Option[T]) (*circbuf.Buffer[T], error) {
	var env bufferEnvelope[T]
	if err := jsonAPI.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	if env.Capacity < 0 || len(env.Items) > env.Capacity {
		return nil, api.ErrCodecBadHeader
	}
	return circbuf.NewFromSlice(env.Capacity, env.Items, opts...)
}

// EncodeJSONAdaptive serializes an adaptive buffer with its capacity
// control.
func EncodeJSONAdaptive[T any](a *circbuf.Adaptive[T]) ([]byte, error) {
	ctrl := a.Control()
	return jsonAPI.Marshal(adaptiveEnvelope[T]{
		Capacity:    ctrl.Capacity,
		MinCapacity: ctrl.MinCapacity,
		Items:       collect[T](a.Len(), a.Each),
	})
}

// DecodeJSONAdaptive rebuilds an adaptive buffer from an
// EncodeJSONAdaptive document.
func DecodeJSONAdaptive[T any](data []byte, opts ...circbuf.Option[T]) (*circbuf.Adaptive[T], error) {
	var env adaptiveEnvelope[T]
	if err := jsonAPI.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	ctrl := circbuf.CapacityControl{Capacity: env.Capacity, MinCapacity: env.MinCapacity}
	if env.Capacity < 0 || env.MinCapacity < 0 || len(env.Items) > env.Capacity {
		return nil, api.ErrCodecBadHeader
	}
	return circbuf.NewAdaptiveFromSlice(ctrl, env.Items, opts...)
}

func collect[T any](n int, each func(func(int, T))) []T {
	items := make([]T, 0, n)
	each(func(_ int, item T) { items = append(items, item) })
	return items
}
