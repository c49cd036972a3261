package nfa

import (
	"fmt"

	"github.com/coregx/thompson/syntax"
)

// Compile assembles node into an NFA by Thompson construction.
func Compile(node syntax.Node, config Config) (*NFA, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	c := &compiler{ctx: NewContext(config.MaxStates)}
	frag := c.assemble(node)
	if err := c.ctx.Err(); err != nil {
		return nil, &CompileError{Pattern: node.String(), Err: err}
	}
	return frag.Build(), nil
}

// compiler assembles fragments from a single id source.
type compiler struct {
	ctx *Context
}

// assemble is the single dispatch over the closed node set. Every call
// allocates fresh states, so assembling the same subtree twice yields two
// disjoint instances.
func (c *compiler) assemble(node syntax.Node) *Fragment {
	if c.ctx.Err() != nil {
		return c.empty()
	}

	switch n := node.(type) {
	case *syntax.Character:
		if n.Matcher.IsEmpty() {
			return c.empty()
		}
		return c.character(n.Matcher)
	case *syntax.Concat:
		left := c.assemble(n.Left)
		right := c.assemble(n.Right)
		return c.concat(left, right)
	case *syntax.Union:
		if len(n.Children) == 0 {
			return c.empty()
		}
		frag := c.assemble(n.Children[0])
		for _, child := range n.Children[1:] {
			frag = c.union(frag, c.assemble(child))
		}
		return frag
	case *syntax.Star:
		return c.star(c.assemble(n.Child))
	case *syntax.Plus:
		once := c.assemble(n.Child)
		loop := c.star(c.assemble(n.Child))
		return c.concat(once, loop)
	case *syntax.Question:
		return c.question(c.assemble(n.Child))
	case *syntax.Repeat:
		return c.repeat(n)
	default:
		panic(fmt.Sprintf("nfa: unknown node type %T", node))
	}
}

// empty is the zero-width fragment: one state that is both start and accept.
func (c *compiler) empty() *Fragment {
	s := c.ctx.NewState()
	frag := NewFragment(s)
	frag.Start = s
	frag.Accepts = []StateID{s}
	return frag
}

func (c *compiler) character(m syntax.Matcher) *Fragment {
	start := c.ctx.NewState()
	accept := c.ctx.NewState()
	frag := NewFragment(start, accept)
	frag.Connect(start, m, accept)
	frag.Start = start
	frag.Accepts = []StateID{accept}
	return frag
}

func (c *compiler) concat(first, second *Fragment) *Fragment {
	frag := Compose(first, second)
	for _, s := range first.Accepts {
		frag.ConnectEpsilon(s, second.Start)
	}
	frag.Start = first.Start
	frag.Accepts = second.Accepts
	return frag
}

func (c *compiler) union(first, second *Fragment) *Fragment {
	start := c.ctx.NewState()
	frag := Compose(first, second, NewFragment(start))
	frag.ConnectEpsilon(start, first.Start)
	frag.ConnectEpsilon(start, second.Start)
	frag.Start = start
	frag.Accepts = make([]StateID, 0, len(first.Accepts)+len(second.Accepts))
	frag.Accepts = append(frag.Accepts, first.Accepts...)
	frag.Accepts = append(frag.Accepts, second.Accepts...)
	return frag
}

func (c *compiler) star(child *Fragment) *Fragment {
	start := c.ctx.NewState()
	accept := c.ctx.NewState()
	frag := Compose(child, NewFragment(start, accept))
	frag.ConnectEpsilon(start, child.Start)
	frag.ConnectEpsilon(start, accept)
	for _, s := range child.Accepts {
		frag.ConnectEpsilon(s, child.Start)
		frag.ConnectEpsilon(s, accept)
	}
	frag.Start = start
	frag.Accepts = []StateID{accept}
	return frag
}

func (c *compiler) question(child *Fragment) *Fragment {
	return c.union(child, c.empty())
}

// repeat expands child{min,max} into min mandatory copies followed by
// max-min nested optional copies: a{1,3} becomes a(a(a)?)?.
func (c *compiler) repeat(n *syntax.Repeat) *Fragment {
	var tail *Fragment
	for i := n.Min; i < n.Max; i++ {
		if c.ctx.Err() != nil {
			return c.empty()
		}
		inst := c.assemble(n.Child)
		if tail != nil {
			inst = c.concat(inst, tail)
		}
		tail = c.question(inst)
	}

	var frag *Fragment
	for i := 0; i < n.Min; i++ {
		if c.ctx.Err() != nil {
			return c.empty()
		}
		inst := c.assemble(n.Child)
		if frag == nil {
			frag = inst
		} else {
			frag = c.concat(frag, inst)
		}
	}

	switch {
	case frag == nil && tail == nil:
		return c.empty()
	case frag == nil:
		return tail
	case tail == nil:
		return frag
	default:
		return c.concat(frag, tail)
	}
}
