package lazy

import (
	"fmt"
	"sort"

	"github.com/coregx/thompson/nfa"
)

// StateKey uniquely identifies a DFA state by its NFA state set.
//
// The key is the sorted ids packed four bytes each, so two subsets share a
// key exactly when they hold the same ids.
type StateKey string

// ComputeStateKey computes the key of a sorted set of NFA states.
func ComputeStateKey(sorted []nfa.StateID) StateKey {
	buf := make([]byte, 0, 4*len(sorted))
	for _, sid := range sorted {
		buf = append(buf, byte(sid), byte(sid>>8), byte(sid>>16), byte(sid>>24))
	}
	return StateKey(buf)
}

// State is one deterministic state of the implicit subset construction: the
// set of NFA states active after some prefix of input.
//
// States are immutable and may be shared between runtimes.
type State struct {
	key       StateKey
	nfaStates []nfa.StateID
	isMatch   bool
}

// NewState creates a state for the given NFA states. The ids are copied and
// sorted.
func NewState(nfaStates []nfa.StateID, isMatch bool) *State {
	sorted := make([]nfa.StateID, len(nfaStates))
	copy(sorted, nfaStates)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	return &State{
		key:       ComputeStateKey(sorted),
		nfaStates: sorted,
		isMatch:   isMatch,
	}
}

// Key returns the canonical key of the state
func (s *State) Key() StateKey {
	return s.key
}

// IsMatch returns true if the subset contains an NFA accept state
func (s *State) IsMatch() bool {
	return s.isMatch
}

// IsDead returns true if the subset is empty. A dead state never matches and
// every transition out of it leads back to it.
func (s *State) IsDead() bool {
	return len(s.nfaStates) == 0
}

// NFAStates returns the NFA states represented by this DFA state, in
// ascending order. The returned slice must not be modified.
func (s *State) NFAStates() []nfa.StateID {
	return s.nfaStates
}

// String returns a human-readable representation of the state
func (s *State) String() string {
	return fmt.Sprintf("DFAState(isMatch=%v, nfaStates=%v)", s.isMatch, s.nfaStates)
}
