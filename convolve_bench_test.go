package conv2d

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-conv2d/internal/testutil"
)

// Benchmark the spectral pipeline across modes with a reused workspace.
func BenchmarkConvolve(b *testing.B) {
	sizes := []struct {
		src    int
		kernel int
	}{
		{32, 5},
		{32, 15},
		{128, 5},
		{128, 15},
		{128, 31},
	}

	for _, mode := range []Mode{Linear, LinearOptimal, Circular, CircularOptimal} {
		for _, size := range sizes {
			rng := rand.New(rand.NewSource(42))
			src := testutil.RandomMatrix(rng, size.src, size.src)
			kernel := testutil.RandomMatrix(rng, size.kernel, size.kernel)
			dst := make([]float64, size.src*size.src)

			b.Run(fmt.Sprintf("%v/src=%d_kernel=%d", mode, size.src, size.kernel), func(b *testing.B) {
				ws, err := NewWorkspace(mode, size.src, size.src, size.kernel, size.kernel)
				if err != nil {
					b.Fatalf("NewWorkspace: %v", err)
				}
				defer ws.Close()

				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if err := ws.Convolve(src, kernel, dst); err != nil {
						b.Fatalf("Convolve: %v", err)
					}
				}
			})
		}
	}
}

// Benchmark the spatial-domain reference for the direct-vs-spectral
// crossover comparison.
func BenchmarkDirectLinear(b *testing.B) {
	sizes := []struct {
		src    int
		kernel int
	}{
		{32, 3},
		{32, 5},
		{128, 3},
		{128, 5},
		{128, 15},
	}

	for _, size := range sizes {
		rng := rand.New(rand.NewSource(42))
		src := testutil.RandomMatrix(rng, size.src, size.src)
		kernel := testutil.RandomMatrix(rng, size.kernel, size.kernel)
		dst := make([]float64, size.src*size.src)

		b.Run(fmt.Sprintf("src=%d_kernel=%d", size.src, size.kernel), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				DirectLinearTo(dst, src, size.src, size.src, kernel, size.kernel, size.kernel)
			}
		})
	}
}

// Benchmark workspace construction, dominated by plan table setup.
func BenchmarkNewWorkspace(b *testing.B) {
	for _, mode := range []Mode{Linear, LinearOptimal} {
		b.Run(mode.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				ws, err := NewWorkspace(mode, 128, 128, 15, 15)
				if err != nil {
					b.Fatalf("NewWorkspace: %v", err)
				}
				ws.Close()
			}
		})
	}
}
