// Package testutil provides deterministic matrix generators and tolerance
// helpers shared by the convolution tests.
package testutil

import (
	"math"
	"math/rand"
	"testing"
)

// NearlyEqual reports whether a and b agree within the given relative
// tolerance (absolute below magnitude one).
func NearlyEqual(a, b, tol float64) bool {
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale < 1 {
		scale = 1
	}
	return math.Abs(a-b) <= tol*scale
}

// MatricesNearlyEqual reports whether two flat matrices agree element-wise
// within the given relative tolerance.
func MatricesNearlyEqual(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !NearlyEqual(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

// RequireMatricesNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds the relative tolerance.
func RequireMatricesNearlyEqual(t *testing.T, got, want []float64, tol float64, label string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: length mismatch: got %d, want %d", label, len(got), len(want))
	}
	for i := range got {
		if !NearlyEqual(got[i], want[i], tol) {
			t.Fatalf("%s: element %d = %v, want %v", label, i, got[i], want[i])
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RandomMatrix returns an h×w flat matrix of values in [-1, 1) drawn from
// rng for reproducibility.
func RandomMatrix(rng *rand.Rand, h, w int) []float64 {
	m := make([]float64, h*w)
	for i := range m {
		m[i] = rng.Float64()*2 - 1
	}
	return m
}

// Impulse returns an h×w flat matrix that is zero everywhere except for a
// unit sample at row i, column j.
func Impulse(h, w, i, j int) []float64 {
	m := make([]float64, h*w)
	if i >= 0 && i < h && j >= 0 && j < w {
		m[i*w+j] = 1
	}
	return m
}
