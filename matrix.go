package conv2d

import "github.com/cwbudde/algo-conv2d/internal/core"

// Matrix wraps a flat row-major float64 slice with explicit dimensions.
// The engine accepts raw slices; Matrix is an optional convenience that
// bridges indexed access and the flat-slice API without copying.
type Matrix struct {
	data   []float64
	height int
	width  int
}

// NewMatrix returns a zero-filled height×width matrix.
func NewMatrix(height, width int) *Matrix {
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}
	return &Matrix{
		data:   make([]float64, height*width),
		height: height,
		width:  width,
	}
}

// MatrixFromSlice wraps an existing flat row-major slice without copying.
// Mutations to the slice are visible through the Matrix and vice versa.
// The slice must hold at least height*width elements.
func MatrixFromSlice(data []float64, height, width int) *Matrix {
	return &Matrix{data: data, height: height, width: width}
}

// Data returns the underlying flat slice.
func (m *Matrix) Data() []float64 { return m.data }

// Size returns the matrix dimensions.
func (m *Matrix) Size() (height, width int) { return m.height, m.width }

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 { return m.data[i*m.width+j] }

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v float64) { m.data[i*m.width+j] = v }

// Zero sets every element to 0.
func (m *Matrix) Zero() { core.Zero(m.data) }

// Copy returns a deep copy of the matrix.
func (m *Matrix) Copy() *Matrix {
	data := make([]float64, len(m.data))
	core.CopyInto(data, m.data)
	return &Matrix{data: data, height: m.height, width: m.width}
}

// ConvolveMatrix is the Matrix counterpart of the one-shot [Convolve]: it
// convolves src with kernel in the given mode and returns a new matrix of
// the source's shape.
func ConvolveMatrix(mode Mode, src, kernel *Matrix, opts ...Option) (*Matrix, error) {
	dst, err := Convolve(mode, src.data, src.height, src.width, kernel.data, kernel.height, kernel.width, opts...)
	if err != nil {
		return nil, err
	}
	return &Matrix{data: dst, height: src.height, width: src.width}, nil
}
