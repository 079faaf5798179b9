// Package conv2d computes 2-D discrete convolution of real-valued matrices
// in the frequency domain.
//
// The engine packs the source matrix into the real channel and the kernel
// into the imaginary channel of a single complex working buffer, so one
// forward transform yields both spectra. A closed-form pointwise product
// recovers the convolution spectrum directly from the packed transform and
// its Hermitian mirror, and an inverse transform plus a mode-specific crop
// produces the result. The 2-D transform is performed separably: every row
// with a stride-1 plan, then every column with a strided plan.
//
// # Modes
//
//   - Linear: zero-padded convolution; output aligned with the source's
//     original indexing via a centered, wrapped kernel placement.
//   - LinearOptimal: identical results to Linear, but the working size is
//     rounded up to a product of small factors so the transform stays fast
//     regardless of input shape.
//   - Circular: periodic-boundary convolution, realized by embedding a
//     periodically extended copy of the source into the working buffer.
//   - CircularOptimal: identical results to Circular with an FFT-friendly
//     working size.
//
// # Usage
//
// For repeated convolution with a fixed shape, create a reusable workspace:
//
//	ws, err := conv2d.NewWorkspace(conv2d.Linear, srcH, srcW, kernelH, kernelW)
//	defer ws.Close()
//	err = ws.Convolve(src, kernel, dst)
//
// For one-shot use:
//
//	dst, err := conv2d.Convolve(conv2d.Circular, src, srcH, srcW, kernel, kernelH, kernelW)
//
// All matrices are flat row-major []float64 with explicit dimensions; the
// destination has the source's shape. The optional [Matrix] type wraps a
// flat slice for callers that prefer indexed access.
//
// For very small kernels the spatial-domain [DirectLinear] and
// [DirectCircular] routines avoid transform overhead entirely; they also
// serve as the reference the spectral path is tested against.
//
// # Performance
//
// Transform cost depends strongly on the largest prime factor of the
// working length. The optimal modes delegate to [FindClosestFactor] to pick
// the smallest working size composed purely of the factors {7,6,5,4,3,2}
// (configurable via [WithFactors]), bounding the cost irrespective of the
// input shape.
//
// A Workspace is mutated in place during Convolve and must not be shared
// across concurrent calls; use one workspace per goroutine.
package conv2d
