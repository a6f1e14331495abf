package cascade

// Stabilization selects how blocks flagged unstable by the wisdom are
// handled.
type Stabilization int

const (
	// StabilizeAuto takes the stabilized path for every flagged block.
	StabilizeAuto Stabilization = iota
	// StabilizeNever ignores the flags and applies every native rotation.
	StabilizeNever
)

func (s Stabilization) String() string {
	switch s {
	case StabilizeAuto:
		return "auto"
	case StabilizeNever:
		return "never"
	default:
		return "unknown"
	}
}

// Config holds plan settings.
type Config struct {
	Stabilization Stabilization
}

// Option mutates plan configuration.
type Option func(*Config)

// DefaultConfig returns the default plan configuration.
func DefaultConfig() Config {
	return Config{Stabilization: StabilizeAuto}
}

// WithStabilization sets the stabilization policy. Unknown values are
// ignored.
func WithStabilization(s Stabilization) Option {
	return func(cfg *Config) {
		if s == StabilizeAuto || s == StabilizeNever {
			cfg.Stabilization = s
		}
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
