package meta

import (
	"strconv"

	"github.com/coregx/thompson/dfa/lazy"
	"github.com/coregx/thompson/literal"
	"github.com/coregx/thompson/prefilter"
)

// Strategy represents the execution strategy for matching.
//
// The orchestrator chooses between:
//   - UseDFA: run the lazy DFA on every input
//   - UsePrefilter: reject inputs lacking every required literal, then run the DFA
//   - UseExactSet: test membership in the pattern's finite language
//
// Strategy selection is automatic based on pattern analysis.
type Strategy int

const (
	// UseDFA uses only the lazy DFA.
	// Selected for:
	//   - Patterns that match the empty string
	//   - Patterns without a usable required literal set
	//   - When EnablePrefilter is false in config
	UseDFA Strategy = iota

	// UsePrefilter checks the required literals before running the lazy DFA.
	// Selected for:
	//   - Patterns where every match contains one of a small literal set
	//   - Conditions other than All, or an infinite language under All
	UsePrefilter

	// UseExactSet answers by set membership without running the DFA.
	// Selected for:
	//   - The All condition (a match is the whole input)
	//   - Patterns with a small finite language, like (foo|bar)baz or x{2,3}
	UseExactSet
)

// String returns a human-readable representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case UseDFA:
		return "UseDFA"
	case UsePrefilter:
		return "UsePrefilter"
	case UseExactSet:
		return "UseExactSet"
	default:
		return "Unknown"
	}
}

// SelectStrategy picks the execution strategy from the condition, the exact
// language (nil when unknown) and the prefilter (nil when none).
//
// Example:
//
//	strategy := meta.SelectStrategy(lazy.All, exact, pf)
//	// strategy == UseExactSet when exact is non-nil
func SelectStrategy(cond lazy.Condition, exact *literal.Seq, pf prefilter.Prefilter) Strategy {
	if cond == lazy.All && exact != nil {
		return UseExactSet
	}
	if pf != nil {
		return UsePrefilter
	}
	return UseDFA
}

// StrategyReason provides a human-readable explanation for strategy selection.
//
// This is useful for debugging and performance tuning.
func StrategyReason(strategy Strategy, exact *literal.Seq, pf prefilter.Prefilter) string {
	switch strategy {
	case UseExactSet:
		return "finite language of " + strconv.Itoa(exact.Len()) + " strings under full-string matching"
	case UsePrefilter:
		return "every match contains one of " + strconv.Itoa(pf.LiteralCount()) + " required literals"
	case UseDFA:
		return "no usable literals, lazy DFA on every input"
	default:
		return "unknown strategy"
	}
}
