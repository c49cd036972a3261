package nfa

import (
	"fmt"
	"io"
	"strings"
)

// WriteDot writes a Graphviz rendering of the automaton to w.
// Accept states are drawn as double circles.
func (n *NFA) WriteDot(w io.Writer) error {
	var b strings.Builder
	b.WriteString("digraph NFA {\n")
	b.WriteString("    rankdir=LR;\n")
	for i := range n.states {
		s := &n.states[i]
		shape := "circle"
		if s.accept {
			shape = "doublecircle"
		}
		fmt.Fprintf(&b, "    n%d [shape=%s];\n", s.id, shape)
		for _, e := range s.edges {
			fmt.Fprintf(&b, "    n%d -> n%d [label=%q];\n", s.id, e.Next, e.String())
		}
	}
	fmt.Fprintf(&b, "    _start [shape=point]; _start -> n%d;\n", n.start)
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// Dot returns the Graphviz rendering of the automaton.
func (n *NFA) Dot() string {
	var b strings.Builder
	_ = n.WriteDot(&b) // strings.Builder never fails
	return b.String()
}
