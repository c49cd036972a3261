package thompson

import "github.com/coregx/thompson/meta"

// Config controls compilation limits and optimizations.
// See meta.Config for the individual fields.
type Config = meta.Config

// ConfigError reports an invalid configuration field.
type ConfigError = meta.ConfigError

// DefaultConfig returns the default configuration for compilation.
//
// Users can customize this and pass to CompileWithConfig.
//
// Example:
//
//	config := thompson.DefaultConfig()
//	config.EnablePrefilter = false // always run the automaton
//	re, _ := thompson.CompileWithConfig("pattern", config)
func DefaultConfig() Config {
	return meta.DefaultConfig()
}
