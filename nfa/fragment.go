package nfa

import "github.com/coregx/thompson/syntax"

// Edge is a transition out of a state: either an epsilon edge or an edge
// taken on any character the Matcher accepts.
type Edge struct {
	Epsilon bool
	Matcher syntax.Matcher
	Next    StateID
}

// String returns the edge label
func (e Edge) String() string {
	if e.Epsilon {
		return "ε"
	}
	return e.Matcher.String()
}

// Fragment is a sub-automaton under construction: its own states, one start
// state, a set of accept states and the transitions between them.
//
// Fragments are combined by merging their transition relations (ids are
// already unique) and adding epsilon edges between them. Combining consumes
// the inputs; they must not be used afterwards.
type Fragment struct {
	Start   StateID
	Accepts []StateID

	states []StateID
	edges  map[StateID][]Edge
}

// NewFragment creates a fragment owning the given states, with no
// transitions. Start and Accepts must be set by the caller.
func NewFragment(states ...StateID) *Fragment {
	return &Fragment{
		Start:  InvalidState,
		states: append([]StateID(nil), states...),
		edges:  make(map[StateID][]Edge),
	}
}

// States returns the ids of every state in the fragment.
func (f *Fragment) States() []StateID {
	return f.states
}

// Connect adds a transition from -> to taken on characters accepted by m.
func (f *Fragment) Connect(from StateID, m syntax.Matcher, to StateID) {
	f.edges[from] = append(f.edges[from], Edge{Matcher: m, Next: to})
}

// ConnectEpsilon adds an epsilon transition from -> to.
func (f *Fragment) ConnectEpsilon(from, to StateID) {
	f.edges[from] = append(f.edges[from], Edge{Epsilon: true, Next: to})
}

// Compose merges the states and transitions of frags into one fragment.
// The result has no start or accept states of its own.
func Compose(frags ...*Fragment) *Fragment {
	total := 0
	largest := 0
	for i, frag := range frags {
		total += len(frag.states)
		if len(frag.edges) > len(frags[largest].edges) {
			largest = i
		}
	}

	result := &Fragment{
		Start:  InvalidState,
		states: make([]StateID, 0, total),
		edges:  make(map[StateID][]Edge),
	}
	if len(frags) > 0 {
		// adopt the biggest relation instead of copying it
		result.edges = frags[largest].edges
	}
	for i, frag := range frags {
		result.states = append(result.states, frag.states...)
		if i == largest {
			continue
		}
		for from, edges := range frag.edges {
			result.edges[from] = append(result.edges[from], edges...)
		}
	}
	return result
}

// Build finalizes the fragment into an immutable NFA.
func (f *Fragment) Build() *NFA {
	size := 0
	for _, id := range f.states {
		if int(id)+1 > size {
			size = int(id) + 1
		}
	}

	states := make([]State, size)
	for i := range states {
		states[i].id = StateID(i)
	}
	for from, edges := range f.edges {
		states[from].edges = append([]Edge(nil), edges...)
	}

	accepts := append([]StateID(nil), f.Accepts...)
	sortStateIDs(accepts)
	for _, id := range accepts {
		states[id].accept = true
	}

	return &NFA{
		states:  states,
		start:   f.Start,
		accepts: dedupe(accepts),
	}
}

// dedupe removes adjacent duplicates from a sorted slice.
func dedupe(ids []StateID) []StateID {
	if len(ids) == 0 {
		return ids
	}
	out := ids[:1]
	for _, id := range ids[1:] {
		if id != out[len(out)-1] {
			out = append(out, id)
		}
	}
	return out
}
