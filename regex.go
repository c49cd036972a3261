// Package thompson provides a regular expression engine built on Thompson
// construction and lazy subset simulation.
//
// A pattern is parsed into a syntax tree, compiled into a Thompson NFA and
// matched by simulating the NFA one subset of states at a time, so matching
// never backtracks and never builds the full DFA up front.
//
// The syntax is small:
//   - literal characters, and \x for any character x taken literally
//   - . matches any character
//   - [abc] and [a-z] character classes
//   - ab concatenation, a|b alternation, (a) grouping
//   - a*, a+, a? and the counted repetitions a{m} and a{m,n}
//
// Every match is evaluated under an anchoring condition:
//   - All: the whole input matches
//   - Head: some prefix of the input matches
//   - Tail: some suffix of the input matches
//
// Basic usage:
//
//	re, err := thompson.Compile("a*b", thompson.All)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.MatchString("aaab") // true
//
// Advanced usage:
//
//	config := thompson.DefaultConfig()
//	config.Condition = thompson.Tail
//	config.MaxDFAStates = 0 // no memoization
//	re, err := thompson.CompileWithConfig("[a-c]+x", config)
//
// Performance characteristics:
//   - Each input character costs at most one pass over the NFA states
//   - Visited subsets are memoized, so repeated states are map lookups
//   - Patterns with required literals reject non-matching inputs without
//     running the automaton
package thompson

import (
	"github.com/coregx/thompson/dfa/lazy"
	"github.com/coregx/thompson/meta"
	"github.com/coregx/thompson/nfa"
	"github.com/coregx/thompson/syntax"
)

// Condition selects how a match is anchored within the input.
type Condition = lazy.Condition

// Anchoring conditions.
const (
	// All matches when the whole input is in the pattern's language.
	All = lazy.All

	// Head matches when some prefix of the input is in the language.
	Head = lazy.Head

	// Tail matches when some suffix of the input is in the language.
	Tail = lazy.Tail
)

// ParseCondition parses "all", "head" or "tail".
func ParseCondition(s string) (Condition, error) {
	return lazy.ParseCondition(s)
}

// Regex represents a compiled regular expression.
//
// A Regex is safe to use concurrently from multiple goroutines.
//
// Example:
//
//	re := thompson.MustCompile("hello", thompson.Head)
//	if re.Match([]byte("hello world")) {
//	    println("matched!")
//	}
type Regex struct {
	engine  *meta.Engine
	pattern string
}

// Compile parses pattern and compiles it for matching under cond.
//
// Returns a *syntax.Error if the pattern is malformed, or an error wrapping
// nfa.ErrTooComplex if it needs too many states.
//
// Example:
//
//	re, err := thompson.Compile("x{2,3}", thompson.All)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string, cond Condition) (*Regex, error) {
	config := DefaultConfig()
	config.Condition = cond
	return CompileWithConfig(pattern, config)
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
//
// This is useful for patterns known to be valid at compile time.
//
// Example:
//
//	var digits = thompson.MustCompile("[0-9]+", thompson.All)
func MustCompile(pattern string, cond Condition) *Regex {
	re, err := Compile(pattern, cond)
	if err != nil {
		panic("regexp: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := thompson.DefaultConfig()
//	config.MaxNFAStates = 1000
//	re, err := thompson.CompileWithConfig("(ab){1,50}", config)
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}
	return &Regex{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// Match reports whether b matches the pattern under the regex's condition.
//
// Example:
//
//	re := thompson.MustCompile("ab|cd", thompson.All)
//	re.Match([]byte("cd")) // true
func (r *Regex) Match(b []byte) bool {
	return r.engine.IsMatch(b)
}

// MatchString reports whether s matches the pattern under the regex's
// condition.
//
// Example:
//
//	re := thompson.MustCompile("[a-c]+", thompson.Head)
//	re.MatchString("abcz") // true
func (r *Regex) MatchString(s string) bool {
	return r.engine.IsMatchString(s)
}

// String returns the source text used to compile the regular expression.
func (r *Regex) String() string {
	return r.pattern
}

// Condition returns the anchoring condition the regex matches under.
func (r *Regex) Condition() Condition {
	return r.engine.Condition()
}

// NFA returns the compiled Thompson NFA, for inspection and diagnostics.
func (r *Regex) NFA() *nfa.NFA {
	return r.engine.NFA()
}

// AST returns the parsed syntax tree.
func (r *Regex) AST() syntax.Node {
	return r.engine.AST()
}

// Strategy returns the execution strategy the engine selected.
func (r *Regex) Strategy() meta.Strategy {
	return r.engine.Strategy()
}

// Stats returns execution statistics.
func (r *Regex) Stats() meta.Stats {
	return r.engine.Stats()
}

// QuoteMeta returns a string that escapes every metacharacter inside the
// argument text; the returned string is a pattern matching the literal text.
//
// Example:
//
//	escaped := thompson.QuoteMeta("a.b")
//	// escaped = `a\.b`
func QuoteMeta(s string) string {
	return syntax.QuoteMeta(s)
}
