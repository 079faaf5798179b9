// Package core provides slice lifecycle helpers shared by the convolution
// engine: length-preserving reuse, zeroing, and bounded copies for both the
// real matrices and the complex working buffers.
package core

// Numeric covers the element types the engine stores in flat buffers.
type Numeric interface {
	~float64 | ~complex128
}

// EnsureLen returns a slice with the requested length, reusing buf capacity
// if possible.
func EnsureLen[T Numeric](buf []T, n int) []T {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]T, n)
}

// Zero sets all values in buf to the zero value.
func Zero[T Numeric](buf []T) {
	var zero T
	for i := range buf {
		buf[i] = zero
	}
}

// CopyInto copies src into dst and returns the number of copied elements.
func CopyInto[T Numeric](dst, src []T) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	copy(dst[:n], src[:n])
	return n
}
