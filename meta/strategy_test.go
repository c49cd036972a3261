package meta

import (
	"strings"
	"testing"

	"github.com/coregx/thompson/dfa/lazy"
)

func TestStrategySelection(t *testing.T) {
	tests := []struct {
		pattern   string
		condition lazy.Condition
		prefilter bool
		want      Strategy
	}{
		{"foo|bar", lazy.All, true, UseExactSet},
		{"x{2,3}", lazy.All, true, UseExactSet},
		{"a?", lazy.All, true, UseExactSet},
		{"foo|bar", lazy.Head, true, UsePrefilter},
		{"foo|bar", lazy.Tail, true, UsePrefilter},
		{"a*b", lazy.All, true, UsePrefilter},
		{".*error.*", lazy.Head, true, UsePrefilter},
		{"a*", lazy.Tail, true, UseDFA},
		{".", lazy.All, true, UseDFA},
		{"[a-z]+", lazy.Head, true, UseDFA},
		{"foo|bar", lazy.All, false, UseDFA},
		{"hello", lazy.Head, false, UseDFA},
	}

	for _, tt := range tests {
		name := tt.pattern + "/" + tt.condition.String()
		t.Run(name, func(t *testing.T) {
			config := DefaultConfig()
			config.Condition = tt.condition
			config.EnablePrefilter = tt.prefilter

			engine, err := CompileWithConfig(tt.pattern, config)
			if err != nil {
				t.Fatalf("CompileWithConfig(%q) error: %v", tt.pattern, err)
			}
			if got := engine.Strategy(); got != tt.want {
				t.Errorf("Strategy() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestStrategyString(t *testing.T) {
	tests := []struct {
		strategy Strategy
		want     string
	}{
		{UseDFA, "UseDFA"},
		{UsePrefilter, "UsePrefilter"},
		{UseExactSet, "UseExactSet"},
		{Strategy(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.strategy.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestStrategyReason(t *testing.T) {
	engine, err := Compile("foo|bar")
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	reason := StrategyReason(engine.Strategy(), engine.ExactSet(), engine.Prefilter())
	if !strings.Contains(reason, "2 strings") {
		t.Errorf("StrategyReason() = %q, want mention of 2 strings", reason)
	}

	engine, err = CompileWithConfig("a*b", DefaultConfig())
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	reason = StrategyReason(engine.Strategy(), engine.ExactSet(), engine.Prefilter())
	if !strings.Contains(reason, "1 required literals") {
		t.Errorf("StrategyReason() = %q, want mention of 1 required literal", reason)
	}
}
