package nfa

// Config configures NFA compilation.
type Config struct {
	// MaxStates caps the number of states a single compilation may allocate.
	// Counted repetitions expand into copies of their operand, so nested
	// counts like (a{100}){100} grow multiplicatively.
	//
	// Default: 100,000. Zero disables the limit.
	MaxStates int
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		MaxStates: 100_000,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.MaxStates < 0 {
		return ErrInvalidConfig
	}
	return nil
}

// WithMaxStates returns a new config with the specified state limit
func (c Config) WithMaxStates(maxStates int) Config {
	c.MaxStates = maxStates
	return c
}
