package conv2d_test

import (
	"fmt"
	"math"

	conv2d "github.com/cwbudde/algo-conv2d"
)

func ExampleConvolve() {
	// 3x3 neighborhood sum of a 3x3 matrix with zero padding.
	src := []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	kernel := []float64{
		1, 1, 1,
		1, 1, 1,
		1, 1, 1,
	}

	dst, _ := conv2d.Convolve(conv2d.Linear, src, 3, 3, kernel, 3, 3)

	for i := 0; i < 3; i++ {
		fmt.Printf("%.0f %.0f %.0f\n", dst[i*3], dst[i*3+1], dst[i*3+2])
	}

	// Output:
	// 12 21 16
	// 27 45 33
	// 24 39 28
}

func ExampleNewWorkspace() {
	// A workspace owns the working buffers and transform plans for one
	// (mode, shape) combination and can be reused across many convolutions.
	ws, err := conv2d.NewWorkspace(conv2d.LinearOptimal, 10, 10, 3, 3)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer ws.Close()

	h, w := ws.WorkSize()
	fmt.Printf("mode: %v\n", ws.Mode())
	fmt.Printf("working size: %dx%d\n", h, w)

	// Output:
	// mode: LinearOptimal
	// working size: 12x12
}

func ExampleFindClosestFactor() {
	// Values already composed of the allowed factors come back unchanged;
	// anything else is rounded up to the next reachable value.
	for _, n := range []int{12, 35, 11, 97} {
		size, _ := conv2d.FindClosestFactor(n, conv2d.DefaultFactors)
		fmt.Printf("%d -> %d\n", n, size)
	}

	// Output:
	// 12 -> 12
	// 35 -> 35
	// 11 -> 12
	// 97 -> 98
}

func ExampleConvolveMatrix() {
	// Circular convolution wraps at the edges: shifting an impulse off one
	// side brings it back in on the other.
	src := conv2d.NewMatrix(3, 3)
	src.Set(0, 0, 1)

	kernel := conv2d.NewMatrix(1, 3)
	kernel.Set(0, 0, 1) // one-column shift to the left

	dst, _ := conv2d.ConvolveMatrix(conv2d.Circular, src, kernel)

	// Round to integers; the transform leaves round-off (including -0)
	// in the zero samples.
	for i := 0; i < 3; i++ {
		fmt.Printf("%d %d %d\n", int(math.Round(dst.At(i, 0))), int(math.Round(dst.At(i, 1))), int(math.Round(dst.At(i, 2))))
	}

	// Output:
	// 0 0 1
	// 0 0 0
	// 0 0 0
}
