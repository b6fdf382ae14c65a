// File: benchmarks/performance_test.go
// Author: momentics <momentics@gmail.com>
//
// Hot-path benchmarks for the container core, with eapache/queue as the
// unbounded-ring baseline. Run with go test -bench . ./benchmarks.

package benchmarks

import (
	"testing"

	"github.com/eapache/queue"

	"github.com/momentics/circbuf"
	"github.com/momentics/circbuf/codec"
)

func BenchmarkPushBack(b *testing.B) {
	buf := circbuf.MustNew[int](1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.PushBack(i)
	}
}

func BenchmarkPushPopFIFO(b *testing.B) {
	buf := circbuf.MustNew[int](1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.PushBack(i)
		if buf.Len() >= 512 {
			buf.PopFront()
		}
	}
}

func BenchmarkQueueBaselineFIFO(b *testing.B) {
	q := queue.New()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Add(i)
		if q.Length() >= 512 {
			q.Remove()
		}
	}
}

func BenchmarkInsertMiddleWrapped(b *testing.B) {
	buf := circbuf.MustNew[int](256)
	for i := 0; i < 400; i++ {
		buf.PushBack(i) // leave the window wrapped
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Insert(buf.IterAt(buf.Len()/2), i)
	}
}

func BenchmarkIteratorWalk(b *testing.B) {
	buf := circbuf.MustNew[int](1024)
	for i := 0; i < 1536; i++ {
		buf.PushBack(i)
	}
	b.ResetTimer()
	var sum int
	for i := 0; i < b.N; i++ {
		for it := buf.Begin(); !it.IsEnd(); it = it.Next() {
			sum += it.Value()
		}
	}
	_ = sum
}

func BenchmarkEach(b *testing.B) {
	buf := circbuf.MustNew[int](1024)
	for i := 0; i < 1536; i++ {
		buf.PushBack(i)
	}
	b.ResetTimer()
	var sum int
	for i := 0; i < b.N; i++ {
		buf.Each(func(_ int, v int) { sum += v })
	}
	_ = sum
}

func BenchmarkLinearize(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		buf := circbuf.MustNew[int](1024)
		for j := 0; j < 1536; j++ {
			buf.PushBack(j)
		}
		b.StartTimer()
		buf.Linearize()
	}
}

func BenchmarkAdaptivePushBack(b *testing.B) {
	buf, err := circbuf.NewAdaptive[int](circbuf.CapacityControl{Capacity: 1024})
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := buf.PushBack(i); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBinaryEncode(b *testing.B) {
	buf := circbuf.MustNew[int64](1024)
	for i := int64(0); i < 1536; i++ {
		buf.PushBack(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		codec.EncodeBinary[int64](buf, codec.Int64Codec{})
	}
}
