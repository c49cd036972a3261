package meta

import (
	"sync/atomic"
	"unicode/utf8"
)

// IsMatch reports whether haystack matches under the engine's condition.
//
// This is the main entry point. It dispatches on the selected strategy; every
// strategy gives the same answer as running the lazy DFA.
//
// Example:
//
//	engine, _ := meta.Compile("[a-c]+")
//	engine.IsMatch([]byte("abc")) // true
func (e *Engine) IsMatch(haystack []byte) bool {
	if e.needsValidUTF8 && !utf8.Valid(haystack) {
		return e.isMatchDFA(string(haystack))
	}

	switch e.strategy {
	case UseExactSet:
		atomic.AddUint64(&e.stats.ExactSetSearches, 1)
		return e.exact.Contains(haystack)
	case UsePrefilter:
		if !e.prefilter.IsMatch(haystack) {
			atomic.AddUint64(&e.stats.PrefilterRejects, 1)
			return false
		}
		atomic.AddUint64(&e.stats.PrefilterPasses, 1)
		return e.isMatchDFA(string(haystack))
	default:
		return e.isMatchDFA(string(haystack))
	}
}

// IsMatchString is IsMatch for a string haystack.
func (e *Engine) IsMatchString(s string) bool {
	if e.strategy == UseDFA {
		return e.isMatchDFA(s)
	}
	return e.IsMatch([]byte(s))
}

// isMatchDFA runs a pooled lazy DFA runtime over the input.
func (e *Engine) isMatchDFA(input string) bool {
	atomic.AddUint64(&e.stats.DFASearches, 1)
	rt := e.runtimes.get()
	defer e.runtimes.put(rt)
	return rt.Accept(input)
}
