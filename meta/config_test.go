package meta

import (
	"errors"
	"testing"

	"github.com/coregx/thompson/dfa/lazy"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string // empty means valid
	}{
		{"default", func(*Config) {}, ""},
		{"memoization off", func(c *Config) { c.MaxDFAStates = 0 }, ""},
		{"no NFA limit", func(c *Config) { c.MaxNFAStates = 0 }, ""},
		{"bad condition", func(c *Config) { c.Condition = lazy.Tail + 1 }, "Condition"},
		{"negative NFA limit", func(c *Config) { c.MaxNFAStates = -1 }, "MaxNFAStates"},
		{"huge DFA cache", func(c *Config) { c.MaxDFAStates = 2_000_000 }, "MaxDFAStates"},
		{"no literals", func(c *Config) { c.MaxLiterals = 0 }, "MaxLiterals"},
		{"zero literal length", func(c *Config) { c.MaxLiteralLen = 0 }, "MaxLiteralLen"},
		{"huge class", func(c *Config) { c.MaxClassSize = 1000 }, "MaxClassSize"},
		{"literal limits ignored without prefilter", func(c *Config) {
			c.EnablePrefilter = false
			c.MaxLiterals = 0
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			err := config.Validate()

			if tt.field == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() = %v, want *ConfigError", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("ConfigError.Field = %q, want %q", cfgErr.Field, tt.field)
			}
		})
	}
}

func TestCompileRejectsInvalidConfig(t *testing.T) {
	config := DefaultConfig()
	config.MaxNFAStates = -5
	if _, err := CompileWithConfig("a", config); err == nil {
		t.Fatal("CompileWithConfig() with invalid config succeeded")
	}
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Field: "MaxLiterals", Message: "must be between 1 and 1,000"}
	want := "regexp: invalid config: MaxLiterals: must be between 1 and 1,000"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
