package conv2d

import "fmt"

// The 2-D transform is separable: every row with a stride-1 plan, then
// every column with a strided plan. The inverse stage mirrors the same
// axis order on the product buffer.

// forward transforms the packed buffer in place, rows then columns.
func (ws *Workspace) forward() error {
	for i := 0; i < ws.workH; i++ {
		row := ws.packed[i*ws.workW : (i+1)*ws.workW]
		if err := ws.rowPlan.Forward(row, row); err != nil {
			return fmt.Errorf("conv2d: forward row transform: %w", err)
		}
	}
	for j := 0; j < ws.workW; j++ {
		col := ws.packed[j:]
		if err := ws.colPlan.ForwardStrided(col, col, ws.workW); err != nil {
			return fmt.Errorf("conv2d: forward column transform: %w", err)
		}
	}
	return nil
}

// inverse transforms the product buffer in place, rows then columns. The
// plans normalize each inverse pass by 1/N, so the two passes together
// apply the full 1/(H·W) scaling.
func (ws *Workspace) inverse() error {
	for i := 0; i < ws.workH; i++ {
		row := ws.spectra[i*ws.workW : (i+1)*ws.workW]
		if err := ws.rowPlan.Inverse(row, row); err != nil {
			return fmt.Errorf("conv2d: inverse row transform: %w", err)
		}
	}
	for j := 0; j < ws.workW; j++ {
		col := ws.spectra[j:]
		if err := ws.colPlan.InverseStrided(col, col, ws.workW); err != nil {
			return fmt.Errorf("conv2d: inverse column transform: %w", err)
		}
	}
	return nil
}

// spectralProduct computes the convolution spectrum from the transform of
// the packed (source, kernel) pair without materializing the individual
// spectra. Both packed inputs are real, so the source spectrum A and kernel
// spectrum B satisfy the real-pair identity over Z and its Hermitian mirror
// Z*[i,j] = conj(Z[(−i) mod H, (−j) mod W]), and their product follows in
// closed form:
//
//	re(A·B) =  0.5·(Re(Z)·Im(Z) − Re(Z*)·Im(Z*))
//	im(A·B) = −0.25·(Re(Z)² − Im(Z)² − Re(Z*)² + Im(Z*)²)
//
// The product is written into the spectra buffer; packed must stay intact
// while mirrored indices are still being read.
func (ws *Workspace) spectralProduct() {
	h, w := ws.workH, ws.workW
	for i := 0; i < h; i++ {
		mi := (h - i) % h
		for j := 0; j < w; j++ {
			mj := (w - j) % w

			z := ws.packed[i*w+j]
			zm := ws.packed[mi*w+mj]

			re, im := real(z), imag(z)
			reM, imM := real(zm), -imag(zm)

			ws.spectra[i*w+j] = complex(
				0.5*(re*im-reM*imM),
				-0.25*(re*re-im*im-reM*reM+imM*imM),
			)
		}
	}
}

// extract copies the real channel of the result sub-region into dst. Linear
// modes read from the origin; circular modes read at the offset the
// periodic embedding shifted the source by.
func (ws *Workspace) extract(dst []float64) {
	offH, offW := 0, 0
	if ws.mode.circular() {
		offH = (ws.kernelH + 1) / 2
		offW = (ws.kernelW + 1) / 2
	}
	for i := 0; i < ws.srcH; i++ {
		row := ws.spectra[(i+offH)*ws.workW+offW:]
		for j := 0; j < ws.srcW; j++ {
			dst[i*ws.srcW+j] = real(row[j])
		}
	}
}
