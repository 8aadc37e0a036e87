package benchmarks

import (
	"fmt"
	"testing"

	"github.com/randalmurphal/intern/pkg/intern"
)

// BenchmarkNew measures standalone symbol creation.
func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s := intern.New("standalone-value")
		s.Release()
	}
}

// BenchmarkInsertHit measures the dedup fast path: the value is pinned so
// every insert is served by the existing entry.
func BenchmarkInsertHit(b *testing.B) {
	r := intern.NewRegistry()
	pinned := r.Insert("hot-value")
	defer pinned.Release()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := r.Insert("hot-value")
		s.Release()
	}
}

// BenchmarkInsertMiss measures interning a value the registry has not seen.
func BenchmarkInsertMiss(b *testing.B) {
	r := intern.NewRegistry()
	values := make([]string, b.N)
	for i := range values {
		values[i] = fmt.Sprintf("value-%d", i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := r.Insert(values[i])
		s.Release()
	}
}

// BenchmarkFind measures lookup of a pinned value.
func BenchmarkFind(b *testing.B) {
	r := intern.NewRegistry()
	pinned := r.Insert("hot-value")
	defer pinned.Release()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, ok := r.Find("hot-value")
		if !ok {
			b.Fatal("value vanished")
		}
		s.Release()
	}
}

// BenchmarkCloneRelease measures the pure counting overhead.
func BenchmarkCloneRelease(b *testing.B) {
	s := intern.New("counted")
	defer s.Release()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := s.Clone()
		c.Release()
	}
}

// BenchmarkInsertHitParallel measures the dedup fast path under contention.
func BenchmarkInsertHitParallel(b *testing.B) {
	r := intern.NewRegistry()
	pinned := r.Insert("hot-value")
	defer pinned.Release()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			s := r.Insert("hot-value")
			s.Release()
		}
	})
}

// BenchmarkInsertLastReleaseCycle measures the full intern/teardown cycle:
// every release is the last one and removes the entry.
func BenchmarkInsertLastReleaseCycle(b *testing.B) {
	r := intern.NewRegistry()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := r.Insert("churned-value")
		s.Release()
	}
}
