package conv2d

import "errors"

// Errors returned by the convolution engine.
var (
	// ErrUnknownMode is returned when a Mode value is outside the closed
	// set {Linear, LinearOptimal, Circular, CircularOptimal}.
	ErrUnknownMode = errors.New("conv2d: unknown convolution mode")

	// ErrInvalidSize is returned when a matrix dimension is not positive.
	ErrInvalidSize = errors.New("conv2d: dimensions must be positive")

	// ErrNoUsableFactor is returned when a factor set contains no value
	// greater than one, making the working-size search unbounded.
	ErrNoUsableFactor = errors.New("conv2d: factor set needs a value greater than one")

	// ErrClosed is returned when a workspace is used after Close.
	ErrClosed = errors.New("conv2d: workspace is closed")
)
