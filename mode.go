package conv2d

// Mode selects the boundary handling and working-size strategy of a
// convolution. It determines both the geometry formula and the way the
// source is packed into the working buffer.
type Mode int

const (
	// Linear performs zero-padded convolution: samples beyond the source
	// boundary are treated as zero.
	Linear Mode = iota

	// LinearOptimal is Linear with the working size rounded up to a
	// product of small factors for transform efficiency.
	LinearOptimal

	// Circular performs convolution under a periodic-boundary assumption:
	// indices wrap around at the source edges.
	Circular

	// CircularOptimal is Circular with an FFT-friendly working size.
	CircularOptimal
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Linear:
		return "Linear"
	case LinearOptimal:
		return "LinearOptimal"
	case Circular:
		return "Circular"
	case CircularOptimal:
		return "CircularOptimal"
	default:
		return "Unknown"
	}
}

// valid reports whether m is a member of the closed mode set.
func (m Mode) valid() bool {
	return m >= Linear && m <= CircularOptimal
}

// optimal reports whether m chooses its working size via factor search.
func (m Mode) optimal() bool {
	return m == LinearOptimal || m == CircularOptimal
}

// circular reports whether m uses periodic boundary handling.
func (m Mode) circular() bool {
	return m == Circular || m == CircularOptimal
}
