package lazy

import (
	"unicode/utf8"

	"github.com/coregx/thompson/internal/sparse"
)

// Runtime simulates a DFA over input. It holds the current state and
// scratch space, so it must not be shared between goroutines.
type Runtime struct {
	dfa     *DFA
	current *State
	set     *sparse.SparseSet
}

// NewRuntime creates a runtime positioned at the start state.
func (d *DFA) NewRuntime() *Runtime {
	return &Runtime{
		dfa:     d,
		current: d.start,
		set:     d.newSet(),
	}
}

// Reset moves the runtime back to the start state.
func (r *Runtime) Reset() {
	r.current = r.dfa.start
}

// Transit consumes one character.
func (r *Runtime) Transit(char rune) {
	r.current = r.dfa.step(r.current, char, r.set)
}

// IsAcceptState reports whether the current subset contains an accept state.
func (r *Runtime) IsAcceptState() bool {
	return r.current.isMatch
}

// State returns the current state
func (r *Runtime) State() *State {
	return r.current
}

// Accept reports whether input matches under the DFA's condition.
//
// Start positions are tried left to right, each scan running over the rest
// of the input:
//   - without a tail anchor a scan succeeds as soon as it reaches an accept state
//   - with a head anchor only the first start position is tried, and its
//     result is final
//   - otherwise a scan succeeds if it ends in an accept state
//
// For All this is a full-string match from position 0, for Head a prefix
// match and for Tail a suffix match. When every start position fails the
// result is whether the empty string is accepted.
func (r *Runtime) Accept(input string) bool {
	head, tail := r.dfa.condition.anchors()
	r.Reset()

	text := input
	for text != "" {
		for _, c := range text {
			r.Transit(c)
			if r.IsAcceptState() && !tail {
				return true
			}
			if r.current.IsDead() {
				break
			}
		}
		if head && len(text) == len(input) {
			return r.IsAcceptState()
		}
		if r.IsAcceptState() && !head {
			return true
		}

		r.Reset()
		_, size := utf8.DecodeRuneInString(text)
		text = text[size:]
	}
	return r.IsAcceptState()
}
