package fft2

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-sci/internal/testutil"
)

func BenchmarkForwardReal(b *testing.B) {
	for _, size := range []int{64, 100, 256} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			p, err := NewPlan(size, size)
			if err != nil {
				b.Fatal(err)
			}
			x := testutil.DeterministicNoise(1, 1, size*size)
			b.ResetTimer()
			for range b.N {
				if _, err := p.ForwardReal(x); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
