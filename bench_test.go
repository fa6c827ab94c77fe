package lists

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// go test -bench=. -cpuprofile profile.out
// go tool pprof -http="localhost:8000" pprofbin ./profile.out

func BenchmarkPushBack(b *testing.B) {
	for _, kind := range []Kind{KindSingly, KindDoubly, KindGrowable, KindChunked} {
		b.Run(string(kind), func(b *testing.B) {
			requireT := require.New(b)

			l, err := New[int](kind, WithChunkSize(64))
			requireT.NoError(err)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				requireT.NoError(l.PushBack(i))
			}
		})
	}
}

func BenchmarkInsertMiddle(b *testing.B) {
	const count = 10000

	for _, kind := range []Kind{KindSingly, KindDoubly, KindGrowable, KindChunked} {
		b.Run(string(kind), func(b *testing.B) {
			requireT := require.New(b)
			r := rand.New(rand.NewSource(1))

			l, err := New[int](kind, WithChunkSize(64))
			requireT.NoError(err)
			for i := 0; i < count; i++ {
				requireT.NoError(l.PushBack(i))
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				index := r.Intn(l.Size() + 1)
				requireT.NoError(l.Insert(index, i))
				_, err := l.Remove(index)
				requireT.NoError(err)
			}
		})
	}
}

func BenchmarkChunkedGet(b *testing.B) {
	const count = 10000

	requireT := require.New(b)

	l, err := NewChunked[int](64)
	requireT.NoError(err)
	for i := 0; i < count; i++ {
		requireT.NoError(l.PushBack(i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, err := l.Get(i % count)
		if err != nil || v != i%count {
			b.Fatalf("unexpected value %d: %v", v, err)
		}
	}
}
