package wisdom

import "math"

// DefaultThreshold is the largest weighted node magnitude a native rotation
// may reach before its block is flagged unstable.
const DefaultThreshold = 1000.0

// Config holds the builder settings.
type Config struct {
	// Threshold bounds max_j max(|γ·U11|, |γ·U12|, |U21|, |U22|) over the
	// nodes of a native rotation. Blocks above it get a stabilized rotation.
	Threshold float64

	// FirstOrder and LastOrder bound the orders to precompute. A negative
	// LastOrder selects the bandwidth M.
	FirstOrder int
	LastOrder  int
}

// Option mutates the builder configuration.
type Option func(*Config)

// DefaultConfig returns the default builder configuration: all orders
// 0..M with DefaultThreshold.
func DefaultConfig() Config {
	return Config{
		Threshold:  DefaultThreshold,
		FirstOrder: 0,
		LastOrder:  -1,
	}
}

// WithThreshold sets the stability threshold. Negative or NaN values are
// ignored. A threshold of 0 flags every block whose rotation is not
// identically zero; +Inf flags none.
func WithThreshold(threshold float64) Option {
	return func(cfg *Config) {
		if threshold >= 0 && !math.IsNaN(threshold) {
			cfg.Threshold = threshold
		}
	}
}

// WithOrders restricts precomputation to orders first..last inclusive.
// The range is validated by Precompute.
func WithOrders(first, last int) Option {
	return func(cfg *Config) {
		cfg.FirstOrder = first
		cfg.LastOrder = last
	}
}

// ApplyOptions applies options on top of defaults.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
