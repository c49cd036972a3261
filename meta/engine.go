package meta

import (
	"sync/atomic"

	"github.com/coregx/thompson/dfa/lazy"
	"github.com/coregx/thompson/literal"
	"github.com/coregx/thompson/nfa"
	"github.com/coregx/thompson/prefilter"
	"github.com/coregx/thompson/syntax"
)

// Engine is the orchestrator for one compiled pattern.
//
// The Engine:
//  1. Parses the pattern and compiles the Thompson NFA
//  2. Extracts literals from the syntax tree
//  3. Builds the prefilter and the exact set (if literals are available)
//  4. Selects the strategy and coordinates matching
//
// Thread safety: the NFA, DFA, prefilter and exact set are immutable after
// compilation, and runtimes come from a sync.Pool, so multiple goroutines can
// safely call IsMatch on the same Engine concurrently.
//
// Example:
//
//	engine, err := meta.Compile("(foo|bar)+baz")
//	if err != nil {
//	    return err
//	}
//	engine.IsMatch([]byte("foobarbaz")) // true
type Engine struct {
	// IMPORTANT: stats MUST be first field for proper 8-byte alignment on 32-bit platforms.
	// This ensures atomic operations on uint64 fields work correctly.
	stats Stats

	pattern   string
	ast       syntax.Node
	nfa       *nfa.NFA
	dfa       *lazy.DFA
	runtimes  *runtimePool
	prefilter prefilter.Prefilter
	exact     *literal.Seq
	strategy  Strategy
	config    Config

	// needsValidUTF8 is set when some literal contains U+FFFD. The DFA decodes
	// every invalid byte as U+FFFD, so literal shortcuts are then only
	// sound on valid UTF-8 input.
	needsValidUTF8 bool
}

// Stats tracks execution statistics for performance analysis.
type Stats struct {
	// DFASearches counts searches that ran the lazy DFA
	DFASearches uint64

	// ExactSetSearches counts searches answered by set membership
	ExactSetSearches uint64

	// PrefilterRejects counts inputs rejected by the prefilter
	PrefilterRejects uint64

	// PrefilterPasses counts inputs the prefilter passed on to the DFA
	PrefilterPasses uint64
}

// Strategy returns the execution strategy selected for this engine.
//
// Example:
//
//	strategy := engine.Strategy()
//	println(strategy.String()) // "UsePrefilter"
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Pattern returns the source pattern.
func (e *Engine) Pattern() string {
	return e.pattern
}

// AST returns the parsed syntax tree.
func (e *Engine) AST() syntax.Node {
	return e.ast
}

// NFA returns the compiled Thompson NFA.
func (e *Engine) NFA() *nfa.NFA {
	return e.nfa
}

// DFA returns the lazy DFA.
func (e *Engine) DFA() *lazy.DFA {
	return e.dfa
}

// Condition returns the anchoring condition.
func (e *Engine) Condition() lazy.Condition {
	return e.config.Condition
}

// Prefilter returns the prefilter, or nil if none was built.
func (e *Engine) Prefilter() prefilter.Prefilter {
	return e.prefilter
}

// ExactSet returns the pattern's finite language, or nil if unknown.
func (e *Engine) ExactSet() *literal.Seq {
	return e.exact
}

// Stats returns execution statistics.
func (e *Engine) Stats() Stats {
	return Stats{
		DFASearches:      atomic.LoadUint64(&e.stats.DFASearches),
		ExactSetSearches: atomic.LoadUint64(&e.stats.ExactSetSearches),
		PrefilterRejects: atomic.LoadUint64(&e.stats.PrefilterRejects),
		PrefilterPasses:  atomic.LoadUint64(&e.stats.PrefilterPasses),
	}
}

// ResetStats resets execution statistics to zero.
func (e *Engine) ResetStats() {
	atomic.StoreUint64(&e.stats.DFASearches, 0)
	atomic.StoreUint64(&e.stats.ExactSetSearches, 0)
	atomic.StoreUint64(&e.stats.PrefilterRejects, 0)
	atomic.StoreUint64(&e.stats.PrefilterPasses, 0)
}
