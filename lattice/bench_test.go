package lattice_test

import (
	"testing"

	"github.com/katalvlaran/roadnet/lattice"
)

// BenchmarkNew measures lattice construction for a 1000x1000 terrain.
func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := lattice.New(1000, 1000, 5); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkChains measures traversal of one long serpentine chain.
func BenchmarkChains(b *testing.B) {
	l, err := lattice.New(500, 500, 5)
	if err != nil {
		b.Fatal(err)
	}
	prev := lattice.None
	for y := 0; y < l.ActiveRows; y++ {
		for k := 0; k < l.ActiveCols; k++ {
			x := k
			if y%2 == 1 {
				x = l.ActiveCols - 1 - k
			}
			cur := l.Index(x, y)
			if prev != lattice.None {
				if err := l.Link(prev, cur); err != nil {
					b.Fatal(err)
				}
			}
			prev = cur
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Chains()
	}
}
