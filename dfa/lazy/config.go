package lazy

// Config configures the behavior of the Lazy DFA engine.
//
// The engine always simulates the NFA one subset at a time. With memoization
// enabled it additionally remembers every subset it has built and the
// successor of each (subset, character) pair, so repeated work on the same
// states is a map lookup. Results are identical either way.
type Config struct {
	// Memoize enables the shared subset cache.
	//
	// Default: true
	Memoize bool

	// MaxStates is the maximum number of subsets to cache.
	// When this limit is reached the cache is cleared entirely and refilled
	// on demand.
	//
	// Default: 10,000 states
	MaxStates uint32
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Memoize:   true,
		MaxStates: 10_000,
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of acceptable range.
func (c *Config) Validate() error {
	if c.Memoize && c.MaxStates == 0 {
		return &DFAError{
			Kind:    InvalidConfig,
			Message: "MaxStates must be > 0 when memoization is enabled",
		}
	}
	return nil
}

// WithMemoization returns a new config with the subset cache enabled/disabled
func (c Config) WithMemoization(enabled bool) Config {
	c.Memoize = enabled
	return c
}

// WithMaxStates returns a new config with the specified max states
func (c Config) WithMaxStates(maxStates uint32) Config {
	c.MaxStates = maxStates
	return c
}
