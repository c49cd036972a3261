package literal

import (
	"github.com/coregx/thompson/syntax"
)

// ExtractorConfig configures literal extraction limits.
//
// These limits prevent excessive extraction from complex patterns:
//   - MaxLiterals: prevents memory bloat from alternations like (a|b|c|d|...)
//   - MaxLiteralLen: prevents extracting very long literals
//   - MaxClassSize: prevents expanding large character classes like [a-z]
type ExtractorConfig struct {
	// MaxLiterals limits the number of literals in any intermediate set.
	// Default: 64.
	MaxLiterals int

	// MaxLiteralLen limits the length in bytes of each literal.
	// Default: 64.
	MaxLiteralLen int

	// MaxClassSize limits the size of character ranges to expand.
	// A range like [a-c] is expanded to "a", "b", "c"; [a-z] is not.
	// Default: 10.
	MaxClassSize int
}

// DefaultConfig returns the default extractor configuration.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
		MaxClassSize:  10,
	}
}

// Extractor extracts literal sets from syntax trees.
//
// Example:
//
//	node, _ := syntax.Parse("(hello|world)+")
//	seq := literal.New(literal.DefaultConfig()).ExtractRequired(node)
//	// seq = ["hello", "world"]
type Extractor struct {
	config ExtractorConfig
}

// New creates an extractor with the given limits.
func New(config ExtractorConfig) *Extractor {
	return &Extractor{config: config}
}

// facts is what the extractor knows about the language of a subtree.
type facts struct {
	// exact is the whole (finite) language, when known
	exact    []string
	exactOK  bool
	required []string // every string in the language contains one of these
}

// ExtractRequired returns a set of non-empty literals such that every string
// the pattern matches contains at least one of them, or nil when no such set
// is known. A pattern that matches the empty string always yields nil.
//
// When the pattern's language is finite and small, the result is exactly that
// language and every literal is marked Complete.
func (e *Extractor) ExtractRequired(node syntax.Node) *Seq {
	f := e.analyze(node)
	if f.exactOK && e.usable(f.exact) {
		return newSeqFromStrings(f.exact, true)
	}
	req := e.require(f)
	if req == nil {
		return nil
	}
	return newSeqFromStrings(req, false)
}

// ExtractExact returns the pattern's whole language when it is finite and
// within the configured limits, or nil otherwise. The result may contain the
// empty literal.
func (e *Extractor) ExtractExact(node syntax.Node) *Seq {
	f := e.analyze(node)
	if !f.exactOK || len(f.exact) > e.config.MaxLiterals {
		return nil
	}
	return newSeqFromStrings(f.exact, true)
}

// usable reports whether strs can serve as a required set.
func (e *Extractor) usable(strs []string) bool {
	if len(strs) == 0 || len(strs) > e.config.MaxLiterals {
		return false
	}
	for _, s := range strs {
		if s == "" || len(s) > e.config.MaxLiteralLen {
			return false
		}
	}
	return true
}

// require converts facts into a required set, or nil.
func (e *Extractor) require(f facts) []string {
	if f.required != nil {
		return f.required
	}
	if f.exactOK {
		return e.requireStrings(f.exact)
	}
	return nil
}

// better picks the more selective of two required sets: longer shortest
// literal first, then fewer literals.
func better(a, b []string) []string {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	minA, minB := minLen(a), minLen(b)
	if minA != minB {
		if minA > minB {
			return a
		}
		return b
	}
	if len(b) < len(a) {
		return b
	}
	return a
}

func minLen(strs []string) int {
	shortest := len(strs[0])
	for _, s := range strs[1:] {
		if len(s) < shortest {
			shortest = len(s)
		}
	}
	return shortest
}

func exactly(strs ...string) facts {
	return facts{exact: strs, exactOK: true}
}

func (e *Extractor) analyze(node syntax.Node) facts {
	switch n := node.(type) {
	case *syntax.Character:
		return e.character(n.Matcher)
	case *syntax.Concat:
		return e.concat(n)
	case *syntax.Union:
		return e.union(n.Children)
	case *syntax.Star:
		return facts{}
	case *syntax.Plus:
		return facts{required: e.require(e.analyze(n.Child))}
	case *syntax.Question:
		child := e.analyze(n.Child)
		if child.exactOK && len(child.exact) < e.config.MaxLiterals {
			return exactly(append(append([]string(nil), child.exact...), "")...)
		}
		return facts{}
	case *syntax.Repeat:
		return e.repeat(n)
	default:
		return facts{}
	}
}

func (e *Extractor) character(m syntax.Matcher) facts {
	switch m.Kind {
	case syntax.MatchEmpty:
		return exactly("")
	case syntax.MatchLiteral:
		return exactly(string(m.Lo))
	case syntax.MatchRange:
		size := int(m.Hi) - int(m.Lo) + 1
		if size <= 0 || size > e.config.MaxClassSize {
			return facts{}
		}
		strs := make([]string, 0, size)
		for r := m.Lo; r <= m.Hi; r++ {
			strs = append(strs, string(r))
		}
		return exactly(strs...)
	default:
		return facts{}
	}
}

// product returns every concatenation of a string from a with one from b, or
// false when the result would exceed the limits.
func (e *Extractor) product(a, b []string) ([]string, bool) {
	if len(a)*len(b) > e.config.MaxLiterals {
		return nil, false
	}
	out := make([]string, 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			if len(x)+len(y) > e.config.MaxLiteralLen {
				return nil, false
			}
			out = append(out, x+y)
		}
	}
	return out, true
}

// concat walks a chain of concatenated nodes. Each maximal run of children
// with a known finite language contributes the product of those languages;
// every other child contributes its own required set. The best candidate wins.
func (e *Extractor) concat(n *syntax.Concat) facts {
	var best []string
	run := []string{""}
	exact := true
	for _, child := range flattenConcat(n, nil) {
		f := e.analyze(child)
		if f.exactOK {
			if next, ok := e.product(run, f.exact); ok {
				run = next
				continue
			}
			best = better(best, e.requireStrings(run))
			run = f.exact
			exact = false
			continue
		}
		exact = false
		best = better(best, e.requireStrings(run))
		best = better(best, e.require(f))
		run = []string{""}
	}
	if exact {
		return exactly(run...)
	}
	return facts{required: better(best, e.requireStrings(run))}
}

func (e *Extractor) requireStrings(strs []string) []string {
	if e.usable(strs) {
		return strs
	}
	return nil
}

func flattenConcat(node syntax.Node, out []syntax.Node) []syntax.Node {
	if c, ok := node.(*syntax.Concat); ok {
		out = flattenConcat(c.Left, out)
		return flattenConcat(c.Right, out)
	}
	return append(out, node)
}

func (e *Extractor) union(children []syntax.Node) facts {
	all := make([]facts, len(children))
	exactOK := true
	total := 0
	for i, child := range children {
		all[i] = e.analyze(child)
		exactOK = exactOK && all[i].exactOK
		total += len(all[i].exact)
	}
	if exactOK && total <= e.config.MaxLiterals {
		var strs []string
		for _, f := range all {
			strs = append(strs, f.exact...)
		}
		return exactly(strs...)
	}

	var required []string
	for _, f := range all {
		req := e.require(f)
		if req == nil || len(required)+len(req) > e.config.MaxLiterals {
			return facts{}
		}
		required = append(required, req...)
	}
	return facts{required: required}
}

func (e *Extractor) repeat(n *syntax.Repeat) facts {
	child := e.analyze(n.Child)
	if child.exactOK {
		if strs, ok := e.powers(child.exact, n.Min, n.Max); ok {
			return exactly(strs...)
		}
	}
	if n.Min >= 1 {
		return facts{required: e.require(child)}
	}
	return facts{}
}

// powers returns the union of base^k for k in [lo, hi], or false when it
// would exceed the limits.
func (e *Extractor) powers(base []string, lo, hi int) ([]string, bool) {
	if hi > e.config.MaxLiteralLen {
		return nil, false
	}
	var out []string
	current := []string{""}
	for k := 0; k <= hi; k++ {
		if k >= lo {
			out = append(out, current...)
			if len(out) > e.config.MaxLiterals {
				return nil, false
			}
		}
		if k == hi {
			break
		}
		next, ok := e.product(current, base)
		if !ok {
			return nil, false
		}
		current = next
	}
	return out, true
}
