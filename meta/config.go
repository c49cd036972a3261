// Package meta implements the matching orchestrator that selects the
// execution strategy for a compiled pattern.
//
// The orchestrator coordinates three components:
//   - Exact set: membership test for finite patterns under the All condition
//   - Prefilter: literal-based rejection of inputs that cannot match
//   - Lazy DFA: subset simulation of the Thompson NFA
//
// Strategy selection is based on the anchoring condition and on the literals
// extracted from the syntax tree. Every strategy returns exactly what the lazy
// DFA would return.
package meta

import (
	"github.com/coregx/thompson/dfa/lazy"
	"github.com/coregx/thompson/literal"
	"github.com/coregx/thompson/nfa"
)

// Config controls orchestrator behavior and resource limits.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.Condition = lazy.Head
//	config.EnablePrefilter = false // always run the automaton
//	engine, err := meta.CompileWithConfig("ab+c", config)
type Config struct {
	// Condition is the anchoring condition used by the matcher.
	// Default: lazy.All
	Condition lazy.Condition

	// EnablePrefilter enables literal-based optimizations: the prefilter and
	// the exact set.
	// Default: true
	EnablePrefilter bool

	// MaxNFAStates bounds the number of NFA states one compilation may
	// allocate. Zero means no limit.
	// Default: 100000
	MaxNFAStates int

	// MaxDFAStates sets the maximum number of DFA states to cache.
	// Zero disables memoization entirely.
	// Default: 10000
	MaxDFAStates uint32

	// MaxLiterals limits the number of literals extracted for prefiltering.
	// Default: 64
	MaxLiterals int

	// MaxLiteralLen limits the length in bytes of each extracted literal.
	// Default: 64
	MaxLiteralLen int

	// MaxClassSize limits the size of character ranges expanded into literals.
	// Default: 10
	MaxClassSize int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	lits := literal.DefaultConfig()
	return Config{
		Condition:       lazy.All,
		EnablePrefilter: true,
		MaxNFAStates:    nfa.DefaultConfig().MaxStates,
		MaxDFAStates:    lazy.DefaultConfig().MaxStates,
		MaxLiterals:     lits.MaxLiterals,
		MaxLiteralLen:   lits.MaxLiteralLen,
		MaxClassSize:    lits.MaxClassSize,
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of range.
//
// Valid ranges:
//   - Condition: All, Head or Tail
//   - MaxNFAStates: 0 to 10,000,000
//   - MaxDFAStates: 0 to 1,000,000
//   - MaxLiterals: 1 to 1,000 (when the prefilter is enabled)
//   - MaxLiteralLen: 1 to 1,000 (when the prefilter is enabled)
//   - MaxClassSize: 0 to 256 (when the prefilter is enabled)
func (c Config) Validate() error {
	if c.Condition > lazy.Tail {
		return &ConfigError{
			Field:   "Condition",
			Message: "must be All, Head or Tail",
		}
	}
	if c.MaxNFAStates < 0 || c.MaxNFAStates > 10_000_000 {
		return &ConfigError{
			Field:   "MaxNFAStates",
			Message: "must be between 0 and 10,000,000",
		}
	}
	if c.MaxDFAStates > 1_000_000 {
		return &ConfigError{
			Field:   "MaxDFAStates",
			Message: "must be between 0 and 1,000,000",
		}
	}

	if c.EnablePrefilter {
		if c.MaxLiterals < 1 || c.MaxLiterals > 1_000 {
			return &ConfigError{
				Field:   "MaxLiterals",
				Message: "must be between 1 and 1,000",
			}
		}
		if c.MaxLiteralLen < 1 || c.MaxLiteralLen > 1_000 {
			return &ConfigError{
				Field:   "MaxLiteralLen",
				Message: "must be between 1 and 1,000",
			}
		}
		if c.MaxClassSize < 0 || c.MaxClassSize > 256 {
			return &ConfigError{
				Field:   "MaxClassSize",
				Message: "must be between 0 and 256",
			}
		}
	}

	return nil
}

func (c Config) nfaConfig() nfa.Config {
	return nfa.DefaultConfig().WithMaxStates(c.MaxNFAStates)
}

func (c Config) dfaConfig() lazy.Config {
	return lazy.DefaultConfig().
		WithMemoization(c.MaxDFAStates > 0).
		WithMaxStates(c.MaxDFAStates)
}

func (c Config) extractorConfig() literal.ExtractorConfig {
	return literal.ExtractorConfig{
		MaxLiterals:   c.MaxLiterals,
		MaxLiteralLen: c.MaxLiteralLen,
		MaxClassSize:  c.MaxClassSize,
	}
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "regexp: invalid config: " + e.Field + ": " + e.Message
}
