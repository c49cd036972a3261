// Package lazy implements a Lazy DFA (Deterministic Finite Automaton) over a
// Thompson NFA.
//
// No transition table is built up front. A Runtime tracks the set of NFA
// states active after the input consumed so far and advances it one
// character at a time by move and epsilon-closure; each distinct set behaves
// as one deterministic state. Since sets are computed on demand, a step costs
// at most the size of the NFA and there is no exponential blowup.
//
// An optional Cache memoizes the sets and their successors, shared by every
// runtime of one DFA.
//
// Example usage:
//
//	node, _ := syntax.Parse("a*b")
//	n, _ := nfa.Compile(node, nfa.DefaultConfig())
//	d, _ := lazy.New(n, lazy.All, lazy.DefaultConfig())
//	if d.NewRuntime().Accept("aaab") {
//	    fmt.Println("Input matches pattern")
//	}
package lazy

import (
	"github.com/coregx/thompson/internal/conv"
	"github.com/coregx/thompson/internal/sparse"
	"github.com/coregx/thompson/nfa"
)

// DFA is a compiled automaton with an anchoring condition.
//
// Thread safety: a DFA is safe for concurrent use. Each goroutine must use its
// own Runtime.
type DFA struct {
	nfa       *nfa.NFA
	condition Condition
	config    Config

	// cache is nil when memoization is disabled
	cache *Cache

	// start is the epsilon-closure of the NFA start state
	start *State

	// dead is the empty subset
	dead *State
}

// New creates a DFA over n that matches under cond.
func New(n *nfa.NFA, cond Condition, config Config) (*DFA, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if n == nil {
		return nil, ErrInvalidNFA
	}
	if err := n.Validate(); err != nil {
		return nil, &DFAError{Kind: InvalidNFA, Message: "invalid source NFA", Cause: err}
	}

	d := &DFA{
		nfa:       n,
		condition: cond,
		config:    config,
		dead:      NewState(nil, false),
	}
	if config.Memoize {
		d.cache = NewCache(config.MaxStates)
	}

	set := d.newSet()
	set.Insert(uint32(n.Start()))
	d.start = d.closure(set)
	return d, nil
}

// NFA returns the source automaton
func (d *DFA) NFA() *nfa.NFA {
	return d.nfa
}

// Condition returns the anchoring condition
func (d *DFA) Condition() Condition {
	return d.condition
}

// Cache returns the subset cache, or nil when memoization is disabled
func (d *DFA) Cache() *Cache {
	return d.cache
}

// StartState returns the state the runtime starts from
func (d *DFA) StartState() *State {
	return d.start
}

// IsMatch runs Accept on a fresh runtime.
func (d *DFA) IsMatch(input string) bool {
	return d.NewRuntime().Accept(input)
}

func (d *DFA) newSet() *sparse.SparseSet {
	return sparse.NewSparseSet(conv.IntToUint32(d.nfa.States()))
}

// step returns the successor of from on char, computing it into set when it
// is not memoized.
func (d *DFA) step(from *State, char rune, set *sparse.SparseSet) *State {
	if from.IsDead() {
		return from
	}
	if d.cache != nil {
		if to, ok := d.cache.Next(from, char); ok {
			return to
		}
	}

	set.Clear()
	for _, id := range from.nfaStates {
		for _, e := range d.nfa.State(id).Edges() {
			if !e.Epsilon && e.Matcher.Matches(char) {
				set.Insert(uint32(e.Next))
			}
		}
	}
	to := d.closure(set)

	if d.cache != nil {
		d.cache.SetNext(from, char, to)
	}
	return to
}

// closure extends set with every state reachable by epsilon edges and
// returns the resulting DFA state.
func (d *DFA) closure(set *sparse.SparseSet) *State {
	// set grows while it is walked, which makes this a breadth-first search
	for i := 0; i < set.Len(); i++ {
		id := nfa.StateID(set.Values()[i])
		for _, e := range d.nfa.State(id).Edges() {
			if e.Epsilon {
				set.Insert(uint32(e.Next))
			}
		}
	}
	if set.IsEmpty() {
		return d.dead
	}

	ids := make([]nfa.StateID, set.Len())
	for i, v := range set.Values() {
		ids[i] = nfa.StateID(v)
	}
	state := NewState(ids, d.nfa.IsAcceptSet(ids))
	if d.cache != nil {
		return d.cache.Intern(state)
	}
	return state
}
