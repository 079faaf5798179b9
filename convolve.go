package conv2d

import "fmt"

// Convolve convolves src with kernel and writes the real result into dst.
// All three are flat row-major slices; src and dst have the workspace's
// source shape and kernel its kernel shape. The engine trusts the
// workspace's stored dimensions and performs no bounds checking on the
// slices — passing arrays of a different shape is a contract violation.
//
// Every mode shares the same pipeline: pack the pair into the working
// buffer, forward-transform rows then columns, apply the spectral product,
// inverse-transform, and crop. Modes differ only in source packing and
// extraction offset.
func (ws *Workspace) Convolve(src, kernel, dst []float64) error {
	if ws.closed {
		return ErrClosed
	}

	switch ws.mode {
	case Linear, LinearOptimal:
		ws.packSourcePadded(src)
	case Circular, CircularOptimal:
		ws.packSourcePeriodic(src)
	default:
		return fmt.Errorf("%w: %d (valid: Linear, LinearOptimal, Circular, CircularOptimal)", ErrUnknownMode, int(ws.mode))
	}
	ws.packKernel(kernel)

	if err := ws.forward(); err != nil {
		return err
	}
	ws.spectralProduct()
	if err := ws.inverse(); err != nil {
		return err
	}

	ws.extract(dst)
	return nil
}

// Convolve is the one-shot entry point: it builds a workspace for the given
// mode and shapes, convolves once, and releases everything. For repeated
// convolutions of the same shape, create a [Workspace] and reuse it.
func Convolve(mode Mode, src []float64, srcH, srcW int, kernel []float64, kernelH, kernelW int, opts ...Option) ([]float64, error) {
	ws, err := NewWorkspace(mode, srcH, srcW, kernelH, kernelW, opts...)
	if err != nil {
		return nil, err
	}
	defer ws.Close()

	dst := make([]float64, srcH*srcW)
	if err := ws.Convolve(src, kernel, dst); err != nil {
		return nil, err
	}
	return dst, nil
}
