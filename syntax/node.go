// Package syntax parses regular expression patterns into an abstract syntax
// tree.
//
// The pattern language is deliberately small: literal characters, '.',
// alternation '|', grouping '(' ')', character classes '[...]' with ranges,
// and the quantifiers '*', '+', '?', '{m}' and '{m,n}'. A backslash turns
// any following character into a literal.
//
// Example:
//
//	node, err := syntax.Parse("(ab|c)*d{2,3}")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(node) // (ab|c)*d{2,3}
package syntax

import (
	"strconv"
	"strings"
)

// Node is a node of the abstract syntax tree.
//
// The set of node types is closed: *Character, *Concat, *Union, *Star, *Plus,
// *Question and *Repeat. Nodes are immutable once built.
type Node interface {
	// String renders the node in pattern syntax. Parsing the rendering yields
	// a tree accepting the same language.
	String() string

	node()
}

// Character matches a single character through its Matcher. A Character
// holding the Empty matcher is the zero-width construct.
type Character struct {
	Matcher Matcher
}

// Concat matches Left followed by Right.
type Concat struct {
	Left, Right Node
}

// Union matches any one of its children. Children are folded left to right.
type Union struct {
	Children []Node
}

// Star matches zero or more repetitions of Child.
type Star struct {
	Child Node
}

// Plus matches one or more repetitions of Child.
type Plus struct {
	Child Node
}

// Question matches zero or one occurrence of Child.
type Question struct {
	Child Node
}

// Repeat matches between Min and Max (inclusive) repetitions of Child.
type Repeat struct {
	Child    Node
	Min, Max int
}

func (*Character) node() {}
func (*Concat) node()    {}
func (*Union) node()     {}
func (*Star) node()      {}
func (*Plus) node()      {}
func (*Question) node()  {}
func (*Repeat) node()    {}

// precedence levels used when rendering
const (
	precUnion = iota
	precConcat
	precQuantifier
	precAtom
)

func precedence(n Node) int {
	switch n := n.(type) {
	case *Union:
		return precUnion
	case *Concat:
		return precConcat
	case *Star, *Plus, *Question, *Repeat:
		return precQuantifier
	case *Character:
		if n.Matcher.IsEmpty() {
			// renders as nothing, so it must be parenthesised under a quantifier
			return precConcat
		}
		return precAtom
	default:
		return precUnion
	}
}

// wrap renders n, parenthesising it when it binds looser than min.
func wrap(n Node, min int) string {
	if precedence(n) < min {
		return "(" + n.String() + ")"
	}
	return n.String()
}

func (n *Character) String() string { return n.Matcher.String() }

func (n *Concat) String() string {
	return wrap(n.Left, precConcat) + wrap(n.Right, precConcat)
}

func (n *Union) String() string {
	parts := make([]string, len(n.Children))
	for i, child := range n.Children {
		parts[i] = child.String()
	}
	return strings.Join(parts, "|")
}

func (n *Star) String() string     { return wrap(n.Child, precAtom) + "*" }
func (n *Plus) String() string     { return wrap(n.Child, precAtom) + "+" }
func (n *Question) String() string { return wrap(n.Child, precAtom) + "?" }

func (n *Repeat) String() string {
	count := strconv.Itoa(n.Min)
	if n.Max != n.Min {
		count += "," + strconv.Itoa(n.Max)
	}
	return wrap(n.Child, precAtom) + "{" + count + "}"
}

// EmptyNode returns the zero-width node.
func EmptyNode() Node {
	return &Character{Matcher: Empty()}
}

// MakeUnion reduces an ordered list of alternatives to a single node: no
// alternatives give the zero-width node, one is returned unchanged and more
// become a Union.
func MakeUnion(nodes ...Node) Node {
	switch len(nodes) {
	case 0:
		return EmptyNode()
	case 1:
		return nodes[0]
	default:
		children := make([]Node, len(nodes))
		copy(children, nodes)
		return &Union{Children: children}
	}
}

// MakeConcat chains nodes left to right. No nodes give the zero-width node.
func MakeConcat(nodes ...Node) Node {
	if len(nodes) == 0 {
		return EmptyNode()
	}
	result := nodes[0]
	for _, n := range nodes[1:] {
		result = &Concat{Left: result, Right: n}
	}
	return result
}

// Exactly returns a Repeat of child with the single-point count range [n, n].
func Exactly(child Node, n int) *Repeat {
	return &Repeat{Child: child, Min: n, Max: n}
}
