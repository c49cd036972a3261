package literal

import (
	"strings"
	"testing"

	"github.com/coregx/thompson/syntax"
)

// Helper function to parse a pattern and extract required literals
func extractRequired(t *testing.T, config ExtractorConfig, pattern string) *Seq {
	t.Helper()
	node, err := syntax.Parse(pattern)
	if err != nil {
		t.Fatalf("Failed to parse pattern %q: %v", pattern, err)
	}
	return New(config).ExtractRequired(node)
}

// Helper to check if sequence contains expected literals, in order
func checkLiterals(t *testing.T, seq *Seq, expected []string) {
	t.Helper()
	if seq.Len() != len(expected) {
		t.Errorf("Expected %d literals, got %d", len(expected), seq.Len())
		for _, lit := range seq.Literals() {
			t.Logf("  Got: %q", string(lit.Bytes))
		}
		return
	}
	for i, exp := range expected {
		if got := string(seq.Get(i).Bytes); got != exp {
			t.Errorf("Literal %d: expected %q, got %q", i, exp, got)
		}
	}
}

func TestExtractRequired(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		expected []string // nil means no literal set
		complete bool
	}{
		{"single literal", "hello", []string{"hello"}, true},
		{"plus suffix", "hello+", []string{"hell"}, false},
		{"alternation prefix", "(foo|bar)baz", []string{"barbaz", "foobaz"}, true},
		{"wildcards around", ".*foo.*", []string{"foo"}, false},
		{"repeated alternation", "(hello|world)+", []string{"hello", "world"}, false},
		{"small class", "[a-c]x", []string{"ax", "bx", "cx"}, true},
		{"large class", "[a-z]x", []string{"x"}, false},
		{"any between", "a.b", []string{"a"}, false},
		{"bounded repeat", "x{2,3}", []string{"xx", "xxx"}, true},
		{"star", "a*", nil, false},
		{"question", "a?", nil, false},
		{"empty pattern", "", nil, false},
		{"empty alternative", "a|", nil, false},
		{"optional repeat", "(ab){0,2}", nil, false},
		{"star alternative", "ab|c*", nil, false},
		{"dot only", ".", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := extractRequired(t, DefaultConfig(), tt.pattern)
			if tt.expected == nil {
				if seq != nil {
					t.Fatalf("ExtractRequired(%q) = %v, want nil", tt.pattern, seq)
				}
				return
			}
			if seq == nil {
				t.Fatalf("ExtractRequired(%q) = nil, want %v", tt.pattern, tt.expected)
			}
			checkLiterals(t, seq, tt.expected)
			if got := seq.AllComplete(); got != tt.complete {
				t.Errorf("AllComplete() = %v, want %v", got, tt.complete)
			}
		})
	}
}

func TestExtractRequiredLimits(t *testing.T) {
	t.Run("MaxLiterals", func(t *testing.T) {
		config := DefaultConfig()
		config.MaxLiterals = 2
		if seq := extractRequired(t, config, "a|b|c"); seq != nil {
			t.Errorf("expected nil for too many alternatives, got %v", seq)
		}
	})

	t.Run("MaxLiteralLen", func(t *testing.T) {
		config := DefaultConfig()
		config.MaxLiteralLen = 3
		seq := extractRequired(t, config, "abcdef")
		checkLiterals(t, seq, []string{"abc"})
		if seq.AllComplete() {
			t.Error("truncated literal must not be complete")
		}
	})

	t.Run("MaxClassSize", func(t *testing.T) {
		seq := extractRequired(t, DefaultConfig(), "[a-e]")
		checkLiterals(t, seq, []string{"a", "b", "c", "d", "e"})

		config := DefaultConfig()
		config.MaxClassSize = 4
		if seq := extractRequired(t, config, "[a-e]"); seq != nil {
			t.Errorf("expected nil for class above limit, got %v", seq)
		}
	})
}

func TestExtractExact(t *testing.T) {
	tests := []struct {
		pattern  string
		expected []string
	}{
		{"ab|cd", []string{"ab", "cd"}},
		{"a?", []string{"", "a"}},
		{"x{2,3}", []string{"xx", "xxx"}},
		{"", []string{""}},
		{"a*", nil},
		{"a.", nil},
		{"a+", nil},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			node, err := syntax.Parse(tt.pattern)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.pattern, err)
			}
			seq := New(DefaultConfig()).ExtractExact(node)
			if tt.expected == nil {
				if seq != nil {
					t.Fatalf("ExtractExact(%q) = %v, want nil", tt.pattern, seq)
				}
				return
			}
			checkLiterals(t, seq, tt.expected)
		})
	}
}

// Every input the pattern matches must contain one of the required literals.
func TestExtractRequiredSoundness(t *testing.T) {
	tests := []struct {
		pattern string
		matches []string
	}{
		{"hello+", []string{"hello", "helloooo"}},
		{"(foo|bar)baz", []string{"foobaz", "barbaz"}},
		{"a.b", []string{"axb", "a-b"}},
		{"[a-c]x", []string{"ax", "cx"}},
		{"x{2,3}y*", []string{"xx", "xxxyy"}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			seq := extractRequired(t, DefaultConfig(), tt.pattern)
			if seq == nil {
				t.Fatalf("ExtractRequired(%q) = nil", tt.pattern)
			}
			for _, m := range tt.matches {
				found := false
				for _, lit := range seq.Literals() {
					if strings.Contains(m, string(lit.Bytes)) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("match %q contains none of %v", m, seq)
				}
			}
		})
	}
}
