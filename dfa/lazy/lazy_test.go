package lazy

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/coregx/thompson/nfa"
	"github.com/coregx/thompson/syntax"
)

func compileNFA(t testing.TB, pattern string) *nfa.NFA {
	t.Helper()
	node, err := syntax.Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", pattern, err)
	}
	n, err := nfa.Compile(node, nfa.DefaultConfig())
	if err != nil {
		t.Fatalf("Compile(%q) failed: %v", pattern, err)
	}
	return n
}

func compileDFA(t testing.TB, pattern string, cond Condition, config Config) *DFA {
	t.Helper()
	d, err := New(compileNFA(t, pattern), cond, config)
	if err != nil {
		t.Fatalf("New(%q) failed: %v", pattern, err)
	}
	return d
}

func TestAcceptScenarios(t *testing.T) {
	tests := []struct {
		pattern string
		cond    Condition
		input   string
		want    bool
	}{
		{"a*b", All, "aaab", true},
		{"a*b", All, "aaabc", false},
		{"ab|cd", All, "ab", true},
		{"ab|cd", All, "cd", true},
		{"ab|cd", All, "ac", false},
		{"[a-c]+", Head, "cba!", true},
		{"x{2,3}", All, "xx", true},
		{"x{2,3}", All, "xxxx", false},
		{"x{2,3}", All, "x", false},
		{".", Tail, "ab", true},
	}

	for _, tt := range tests {
		name := fmt.Sprintf("%s/%s/%q", tt.pattern, tt.cond, tt.input)
		t.Run(name, func(t *testing.T) {
			d := compileDFA(t, tt.pattern, tt.cond, DefaultConfig())
			if got := d.NewRuntime().Accept(tt.input); got != tt.want {
				t.Errorf("Accept(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAcceptConditions(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		cond    Condition
		input   string
		want    bool
	}{
		// All never slides the start position
		{"all whole input", "ab", All, "ab", true},
		{"all leading junk", "ab", All, "xab", false},
		{"all trailing junk", "ab", All, "abx", false},

		{"head prefix", "ab", Head, "abx", true},
		{"head not at start", "ab", Head, "xab", false},
		{"head early exit", "a+", Head, "aaaa", true},
		// an empty prefix does not count once the first scan has consumed input
		{"head empty prefix", "a*", Head, "b", false},

		{"tail suffix", "ab", Tail, "xab", true},
		{"tail not at end", "ab", Tail, "abx", false},
		{"tail later start", "b", Tail, "abab", true},
		{"tail empty suffix", "a*", Tail, "b", true},

		{"empty input all", "a*", All, "", true},
		{"empty input head", "a", Head, "", false},
		{"empty input tail", "", Tail, "", true},
		{"empty pattern all", "", All, "a", false},
		{"empty pattern tail", "", Tail, "a", true},

		{"multibyte", "é.", All, "éü", true},
		{"multibyte tail", "ü", Tail, "éü", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := compileDFA(t, tt.pattern, tt.cond, DefaultConfig())
			if got := d.IsMatch(tt.input); got != tt.want {
				t.Errorf("%q %s: IsMatch(%q) = %v, want %v", tt.pattern, tt.cond, tt.input, got, tt.want)
			}
		})
	}
}

func TestMemoizationAgrees(t *testing.T) {
	patterns := []string{"a*b", "ab|cd", "[a-c]+", "x{2,3}", ".", "(a|b)*abb", "a?b+c*", "", "()|a"}
	inputs := []string{"", "a", "b", "ab", "aab", "abb", "aabb", "cba!", "xx", "xxx", "abcd", "bbabb", "c"}
	conds := []Condition{All, Head, Tail}

	for _, pattern := range patterns {
		for _, cond := range conds {
			memo := compileDFA(t, pattern, cond, DefaultConfig())
			plain := compileDFA(t, pattern, cond, DefaultConfig().WithMemoization(false))
			tiny := compileDFA(t, pattern, cond, DefaultConfig().WithMaxStates(1))
			for _, input := range inputs {
				want := plain.IsMatch(input)
				if got := memo.IsMatch(input); got != want {
					t.Errorf("%q %s %q: memoized = %v, plain = %v", pattern, cond, input, got, want)
				}
				if got := tiny.IsMatch(input); got != want {
					t.Errorf("%q %s %q: tiny cache = %v, plain = %v", pattern, cond, input, got, want)
				}
			}
		}
	}
}

func TestRuntimeTransit(t *testing.T) {
	d := compileDFA(t, "ab", All, DefaultConfig())
	r := d.NewRuntime()

	if r.IsAcceptState() {
		t.Fatal("start state should not accept")
	}
	r.Transit('a')
	if r.IsAcceptState() {
		t.Error("after 'a' should not accept")
	}
	r.Transit('b')
	if !r.IsAcceptState() {
		t.Error("after 'ab' should accept")
	}
	r.Transit('b')
	if r.IsAcceptState() || !r.State().IsDead() {
		t.Error("after 'abb' should be dead")
	}

	r.Reset()
	if r.State() != d.StartState() {
		t.Error("Reset() should return to the start state")
	}
}

func TestRuntimeReuse(t *testing.T) {
	d := compileDFA(t, "a*b", All, DefaultConfig())
	r := d.NewRuntime()
	r.Transit('x') // leave the runtime dead

	if !r.Accept("ab") {
		t.Error("Accept() should reset before scanning")
	}
	if r.Accept("abc") {
		t.Error("Accept(\"abc\") = true, want false")
	}
}

func TestConcurrentRuntimes(t *testing.T) {
	d := compileDFA(t, "(a|b)*abb", Tail, DefaultConfig().WithMaxStates(4))

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := d.NewRuntime()
			for i := 0; i < 200; i++ {
				if !r.Accept("babaabb") {
					t.Error("Accept(\"babaabb\") = false, want true")
					return
				}
				if r.Accept("babab") {
					t.Error("Accept(\"babab\") = true, want false")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestNewErrors(t *testing.T) {
	if _, err := New(nil, All, DefaultConfig()); !errors.Is(err, ErrInvalidNFA) {
		t.Errorf("New(nil) error = %v, want ErrInvalidNFA", err)
	}

	n := compileNFA(t, "a")
	_, err := New(n, All, Config{Memoize: true, MaxStates: 0})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("New() error = %v, want ErrInvalidConfig", err)
	}

	d, err := New(n, Head, Config{Memoize: false})
	if err != nil {
		t.Fatalf("New() without memoization error = %v", err)
	}
	if d.Cache() != nil {
		t.Error("Cache() should be nil without memoization")
	}
	if d.Condition() != Head {
		t.Errorf("Condition() = %v, want head", d.Condition())
	}
	if d.NFA() != n {
		t.Error("NFA() should return the source automaton")
	}
}

func TestParseCondition(t *testing.T) {
	for _, c := range []Condition{All, Head, Tail} {
		got, err := ParseCondition(c.String())
		if err != nil || got != c {
			t.Errorf("ParseCondition(%q) = %v, %v", c.String(), got, err)
		}
	}
	if _, err := ParseCondition("anywhere"); err == nil {
		t.Error("ParseCondition(\"anywhere\") should fail")
	}
}

func BenchmarkAccept(b *testing.B) {
	d := compileDFA(b, "(a|b)*abb", Tail, DefaultConfig())
	r := d.NewRuntime()
	input := "abababababababababababababababababababababababababababababb"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Accept(input)
	}
}
