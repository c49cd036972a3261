package nfa

import (
	"fmt"
	"sort"
)

// StateID uniquely identifies an NFA state.
// This is a 32-bit unsigned integer for compact representation.
type StateID uint32

// InvalidState represents an invalid/uninitialized state ID
const InvalidState StateID = 0xFFFFFFFF

// State is a single NFA state with its outgoing transitions.
type State struct {
	id     StateID
	edges  []Edge
	accept bool
}

// ID returns the state's unique identifier
func (s *State) ID() StateID {
	return s.id
}

// Edges returns the outgoing transitions of the state.
// The returned slice must not be modified.
func (s *State) Edges() []Edge {
	return s.edges
}

// IsAccept returns true if this is an accept state
func (s *State) IsAccept() bool {
	return s.accept
}

// String returns a human-readable representation of the state
func (s *State) String() string {
	if s.accept {
		return fmt.Sprintf("State(%d, Accept, %d edges)", s.id, len(s.edges))
	}
	return fmt.Sprintf("State(%d, %d edges)", s.id, len(s.edges))
}

// NFA is a finalized Thompson NFA. It has no mutators and is safe for
// concurrent use.
type NFA struct {
	// states contains all NFA states indexed by StateID
	states []State

	start StateID

	// accepts is sorted and free of duplicates
	accepts []StateID
}

// Start returns the starting state ID of the NFA
func (n *NFA) Start() StateID {
	return n.start
}

// Accepts returns the accept state IDs in ascending order.
func (n *NFA) Accepts() []StateID {
	return append([]StateID(nil), n.accepts...)
}

// State returns the state with the given ID.
// Returns nil if the ID is invalid.
func (n *NFA) State(id StateID) *State {
	if id == InvalidState || int(id) >= len(n.states) {
		return nil
	}
	return &n.states[id]
}

// IsAccept returns true if the given state is an accept state
func (n *NFA) IsAccept(id StateID) bool {
	if s := n.State(id); s != nil {
		return s.accept
	}
	return false
}

// IsAcceptSet reports whether any of ids is an accept state.
func (n *NFA) IsAcceptSet(ids []StateID) bool {
	for _, id := range ids {
		if n.IsAccept(id) {
			return true
		}
	}
	return false
}

// States returns the total number of states in the NFA
func (n *NFA) States() int {
	return len(n.states)
}

// Transitions returns the number of edges in the NFA.
func (n *NFA) Transitions() int {
	total := 0
	for i := range n.states {
		total += len(n.states[i].edges)
	}
	return total
}

// Validate checks the structural invariants of the automaton: a valid start
// state, a non-empty accept set and no edge leaving the state space.
func (n *NFA) Validate() error {
	if n.State(n.start) == nil {
		return fmt.Errorf("start state %d out of range", n.start)
	}
	if len(n.accepts) == 0 {
		return fmt.Errorf("no accept states")
	}
	for i := range n.states {
		for _, e := range n.states[i].edges {
			if n.State(e.Next) == nil {
				return fmt.Errorf("state %d has an edge to unknown state %d", i, e.Next)
			}
		}
	}
	return nil
}

// sortStateIDs sorts ids in place in ascending order.
func sortStateIDs(ids []StateID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}

// String returns a human-readable representation of the NFA
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states: %d, start: %d, accepts: %v}",
		len(n.states), n.start, n.accepts)
}
