package conv2d

// DefaultFactors is the factor set used by the optimal modes when none is
// configured. Mixed-radix transforms over these factors are efficient, so
// constraining the working size to their products bounds the transform
// cost irrespective of input shape.
var DefaultFactors = []int{7, 6, 5, 4, 3, 2}

type config struct {
	factors []int
}

// Option configures workspace construction.
type Option func(*config)

func defaultConfig() config {
	return config{factors: DefaultFactors}
}

// WithFactors sets the factor table consulted by the optimal modes when
// choosing a working size. Values less than two are ignored by the search.
// The slice is not copied; callers must not mutate it afterwards.
func WithFactors(factors []int) Option {
	return func(cfg *config) {
		if len(factors) > 0 {
			cfg.factors = factors
		}
	}
}

func applyOptions(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
