package conv2d

import (
	"github.com/cwbudde/algo-vecmath"
)

// Direct spatial-domain convolution. These O(N·M) routines share the
// spectral engine's alignment — the kernel center (⌊kernelH/2⌋,
// ⌊kernelW/2⌋) sits over the output sample — so they produce the same
// values as the Linear and Circular modes. They win for very small kernels
// and serve as the reference the spectral path is verified against.

// DirectLinear performs spatial-domain linear convolution, treating samples
// beyond the source boundary as zero. Returns a new srcH×srcW slice.
func DirectLinear(src []float64, srcH, srcW int, kernel []float64, kernelH, kernelW int) ([]float64, error) {
	if srcH <= 0 || srcW <= 0 || kernelH <= 0 || kernelW <= 0 {
		return nil, ErrInvalidSize
	}
	dst := make([]float64, srcH*srcW)
	DirectLinearTo(dst, src, srcH, srcW, kernel, kernelH, kernelW)
	return dst, nil
}

// DirectLinearTo performs linear convolution into a pre-allocated dst of
// length srcH*srcW.
func DirectLinearTo(dst, src []float64, srcH, srcW int, kernel []float64, kernelH, kernelW int) {
	for i := range dst {
		dst[i] = 0
	}

	// Each source sample scatters a scaled kernel row into a contiguous
	// destination run, which vectorizes well for kernels of a few samples
	// and up.
	const simdThreshold = 4
	if kernelW >= simdThreshold {
		directLinearSIMD(dst, src, srcH, srcW, kernel, kernelH, kernelW)
	} else {
		directLinearScalar(dst, src, srcH, srcW, kernel, kernelH, kernelW)
	}
}

func directLinearScalar(dst, src []float64, srcH, srcW int, kernel []float64, kernelH, kernelW int) {
	ch := kernelH / 2
	cw := kernelW / 2
	for i := 0; i < srcH; i++ {
		for u := 0; u < kernelH; u++ {
			r := i + u - ch
			if r < 0 || r >= srcH {
				continue
			}
			krow := kernel[u*kernelW : (u+1)*kernelW]
			drow := dst[r*srcW : (r+1)*srcW]
			for j := 0; j < srcW; j++ {
				s := src[i*srcW+j]
				for v := 0; v < kernelW; v++ {
					c := j + v - cw
					if c < 0 || c >= srcW {
						continue
					}
					drow[c] += s * krow[v]
				}
			}
		}
	}
}

func directLinearSIMD(dst, src []float64, srcH, srcW int, kernel []float64, kernelH, kernelW int) {
	ch := kernelH / 2
	cw := kernelW / 2
	temp := make([]float64, kernelW)

	for i := 0; i < srcH; i++ {
		for u := 0; u < kernelH; u++ {
			r := i + u - ch
			if r < 0 || r >= srcH {
				continue
			}
			krow := kernel[u*kernelW : (u+1)*kernelW]
			drow := dst[r*srcW : (r+1)*srcW]
			for j := 0; j < srcW; j++ {
				s := src[i*srcW+j]
				if s == 0 {
					continue
				}

				// Clip the kernel row to the destination row bounds.
				v0 := 0
				if j < cw {
					v0 = cw - j
				}
				v1 := kernelW
				if j+kernelW-cw > srcW {
					v1 = srcW + cw - j
				}
				if v0 >= v1 {
					continue
				}

				seg := temp[:v1-v0]
				vecmath.ScaleBlock(seg, krow[v0:v1], s)
				vecmath.AddBlockInPlace(drow[j-cw+v0:j-cw+v1], seg)
			}
		}
	}
}

// DirectCircular performs spatial-domain circular convolution: source
// indices wrap around modulo the source dimensions. Returns a new
// srcH×srcW slice.
func DirectCircular(src []float64, srcH, srcW int, kernel []float64, kernelH, kernelW int) ([]float64, error) {
	if srcH <= 0 || srcW <= 0 || kernelH <= 0 || kernelW <= 0 {
		return nil, ErrInvalidSize
	}
	dst := make([]float64, srcH*srcW)
	DirectCircularTo(dst, src, srcH, srcW, kernel, kernelH, kernelW)
	return dst, nil
}

// DirectCircularTo performs circular convolution into a pre-allocated dst
// of length srcH*srcW.
func DirectCircularTo(dst, src []float64, srcH, srcW int, kernel []float64, kernelH, kernelW int) {
	ch := kernelH / 2
	cw := kernelW / 2
	for i := 0; i < srcH; i++ {
		for j := 0; j < srcW; j++ {
			var acc float64
			for u := 0; u < kernelH; u++ {
				r := imod(i+ch-u, srcH)
				for v := 0; v < kernelW; v++ {
					c := imod(j+cw-v, srcW)
					acc += kernel[u*kernelW+v] * src[r*srcW+c]
				}
			}
			dst[i*srcW+j] = acc
		}
	}
}
