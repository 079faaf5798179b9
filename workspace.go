package conv2d

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-conv2d/internal/core"
)

// Workspace owns everything a convolution of one (mode, shape) combination
// needs: the working geometry, the two complex working buffers, and the
// reusable row and column transform plans with their precomputed tables.
//
// A workspace is built for exactly one mode and shape; any change requires
// Update, which rebuilds it completely. Buffers and plan scratch are
// mutated in place during Convolve, so a workspace must not be shared
// across concurrent invocations.
type Workspace struct {
	mode             Mode
	srcH, srcW       int
	kernelH, kernelW int
	workH, workW     int

	factors []int

	// packed receives the (source, kernel) pair and its forward transform;
	// spectra receives the convolution spectrum and the inverse transform.
	// Two buffers are required because the spectral product reads the
	// transform at mirrored index pairs while it writes.
	packed  []complex128
	spectra []complex128

	rowPlan *algofft.Plan[complex128] // length workW, stride 1
	colPlan *algofft.Plan[complex128] // length workH, stride workW

	closed bool
}

// NewWorkspace allocates a workspace for convolving srcH×srcW sources with
// kernelH×kernelW kernels in the given mode. On error nothing is retained.
func NewWorkspace(mode Mode, srcH, srcW, kernelH, kernelW int, opts ...Option) (*Workspace, error) {
	cfg := applyOptions(opts...)
	return newWorkspace(mode, srcH, srcW, kernelH, kernelW, cfg.factors, nil, nil)
}

// newWorkspace builds a workspace, reusing the capacity of the supplied
// buffers when it suffices for the new working area.
func newWorkspace(mode Mode, srcH, srcW, kernelH, kernelW int, factors []int, packed, spectra []complex128) (*Workspace, error) {
	if !mode.valid() {
		return nil, fmt.Errorf("%w: %d (valid: Linear, LinearOptimal, Circular, CircularOptimal)", ErrUnknownMode, int(mode))
	}
	if srcH <= 0 || srcW <= 0 || kernelH <= 0 || kernelW <= 0 {
		return nil, fmt.Errorf("%w: source %dx%d, kernel %dx%d", ErrInvalidSize, srcH, srcW, kernelH, kernelW)
	}

	workH, err := workingSize(mode, srcH, kernelH, factors)
	if err != nil {
		return nil, err
	}
	workW, err := workingSize(mode, srcW, kernelW, factors)
	if err != nil {
		return nil, err
	}

	rowPlan, err := algofft.NewPlan64(workW)
	if err != nil {
		return nil, fmt.Errorf("conv2d: create row transform plan (length %d): %w", workW, err)
	}
	colPlan, err := algofft.NewPlan64(workH)
	if err != nil {
		return nil, fmt.Errorf("conv2d: create column transform plan (length %d): %w", workH, err)
	}

	return &Workspace{
		mode:    mode,
		srcH:    srcH,
		srcW:    srcW,
		kernelH: kernelH,
		kernelW: kernelW,
		workH:   workH,
		workW:   workW,
		factors: factors,
		packed:  core.EnsureLen(packed, workH*workW),
		spectra: core.EnsureLen(spectra, workH*workW),
		rowPlan: rowPlan,
		colPlan: colPlan,
	}, nil
}

// workingSize computes the working length for one dimension. Linear modes
// need room for the wrapped kernel half; circular modes embed a full
// periodic extension. Optimal modes round up to a product of the allowed
// factors.
func workingSize(mode Mode, srcDim, kernelDim int, factors []int) (int, error) {
	minimum := srcDim + (kernelDim+1)/2
	if mode.circular() {
		minimum = srcDim + kernelDim
	}
	if !mode.optimal() {
		return minimum, nil
	}
	return FindClosestFactor(minimum, factors)
}

// Update rebuilds the workspace for a new mode and shape. The rebuild is
// atomic: on error the workspace keeps its previous state and remains
// usable. The configured factor table is retained, and the working buffers
// are reused when their capacity suffices.
func (ws *Workspace) Update(mode Mode, srcH, srcW, kernelH, kernelW int) error {
	if ws.closed {
		return ErrClosed
	}
	next, err := newWorkspace(mode, srcH, srcW, kernelH, kernelW, ws.factors, ws.packed, ws.spectra)
	if err != nil {
		return err
	}
	*ws = *next
	return nil
}

// Close releases the working buffers and transform plans. It is idempotent;
// any use of the workspace after Close returns ErrClosed.
func (ws *Workspace) Close() error {
	ws.packed = nil
	ws.spectra = nil
	ws.rowPlan = nil
	ws.colPlan = nil
	ws.closed = true
	return nil
}

// Mode returns the configured convolution mode.
func (ws *Workspace) Mode() Mode { return ws.mode }

// SourceSize returns the source (and destination) dimensions.
func (ws *Workspace) SourceSize() (height, width int) { return ws.srcH, ws.srcW }

// KernelSize returns the kernel dimensions.
func (ws *Workspace) KernelSize() (height, width int) { return ws.kernelH, ws.kernelW }

// WorkSize returns the padded dimensions at which the frequency-domain
// computation occurs.
func (ws *Workspace) WorkSize() (height, width int) { return ws.workH, ws.workW }
