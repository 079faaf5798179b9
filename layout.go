package conv2d

import "github.com/cwbudde/algo-conv2d/internal/core"

// The layout stage packs both real inputs into one complex working buffer:
// the source occupies the real channel and the kernel the imaginary
// channel, so a single forward transform yields both spectra.

// packSourcePadded zeroes the working buffer and copies the source into the
// real channel at its natural position; the remaining area is the zero
// padding that realizes linear boundary handling.
func (ws *Workspace) packSourcePadded(src []float64) {
	core.Zero(ws.packed)
	for i := 0; i < ws.srcH; i++ {
		row := ws.packed[i*ws.workW:]
		for j := 0; j < ws.srcW; j++ {
			row[j] = complex(src[i*ws.srcW+j], 0)
		}
	}
}

// packSourcePeriodic zeroes the working buffer and writes a periodically
// extended copy of the source covering (srcH+kernelH)×(srcW+kernelW)
// samples. Each extended index maps back into the source modulo its size,
// offset by half the kernel extent, embedding the periodic boundary inside
// the larger buffer. The rest of the pipeline then matches the linear path
// and extraction undoes the offset.
func (ws *Workspace) packSourcePeriodic(src []float64) {
	core.Zero(ws.packed)
	extH := ws.srcH + ws.kernelH
	extW := ws.srcW + ws.kernelW
	offH := (ws.kernelH + 1) / 2
	offW := (ws.kernelW + 1) / 2
	for i := 0; i < extH; i++ {
		si := imod(i-offH, ws.srcH)
		row := ws.packed[i*ws.workW:]
		for j := 0; j < extW; j++ {
			sj := imod(j-offW, ws.srcW)
			row[j] = complex(src[si*ws.srcW+sj], 0)
		}
	}
}

// packKernel copies the kernel into the imaginary channel with its center
// (⌊kernelH/2⌋, ⌊kernelW/2⌋) mapped to the buffer origin; indices that fall
// negative wrap around the working dimensions. This recentering keeps the
// convolution theorem's result aligned with the source's original indexing.
// Real parts already written by the source packing are preserved.
func (ws *Workspace) packKernel(kernel []float64) {
	for i := 0; i < ws.kernelH; i++ {
		row := imod(i-ws.kernelH/2, ws.workH)
		for j := 0; j < ws.kernelW; j++ {
			col := imod(j-ws.kernelW/2, ws.workW)
			idx := row*ws.workW + col
			ws.packed[idx] = complex(real(ws.packed[idx]), kernel[i*ws.kernelW+j])
		}
	}
}

// imod returns x modulo m, always in [0, m).
func imod(x, m int) int {
	x %= m
	if x < 0 {
		x += m
	}
	return x
}
