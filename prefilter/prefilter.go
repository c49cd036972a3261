// Package prefilter provides fast rejection of inputs that cannot match,
// using literals extracted from the pattern.
//
// Every string a pattern matches contains at least one of its required
// literals (see package literal). An input that contains none of them cannot
// match under any anchoring condition, so the automaton never has to run.
//
// The package selects the prefilter strategy from the literal count:
//   - Single literal → memmem-style substring search
//   - Several literals → Aho-Corasick automaton
//
// Example usage:
//
//	node, _ := syntax.Parse("(hello|world)+")
//	seq := literal.New(literal.DefaultConfig()).ExtractRequired(node)
//
//	pf := prefilter.New(seq)
//	pf.IsMatch([]byte("say hello")) // true
//	pf.IsMatch([]byte("goodbye"))   // false: cannot match
package prefilter

import (
	"bytes"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/thompson/literal"
)

// Prefilter reports whether an input may match.
//
// A false result is definitive: the input cannot match. A true result only
// means that a required literal occurs; the automaton must still decide.
type Prefilter interface {
	// IsMatch returns true if the haystack contains at least one literal.
	IsMatch(haystack []byte) bool

	// Find returns the start of the first literal occurrence at or after
	// start, or -1 if there is none.
	Find(haystack []byte, start int) int

	// LiteralCount returns the number of literals the prefilter searches for.
	LiteralCount() int
}

// New builds the prefilter for seq.
//
// Returns nil when no prefilter can be built: seq is empty or contains the
// empty literal (which every input contains).
func New(seq *literal.Seq) Prefilter {
	if seq.IsEmpty() || seq.MinLen() == 0 {
		return nil
	}
	if seq.Len() == 1 {
		return newMemmem(seq.Get(0).Bytes)
	}
	return newAhoCorasick(seq)
}

// memmemPrefilter searches for a single literal.
type memmemPrefilter struct {
	needle []byte
}

func newMemmem(needle []byte) *memmemPrefilter {
	return &memmemPrefilter{needle: append([]byte(nil), needle...)}
}

func (p *memmemPrefilter) IsMatch(haystack []byte) bool {
	return bytes.Contains(haystack, p.needle)
}

func (p *memmemPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start > len(haystack) {
		return -1
	}
	pos := bytes.Index(haystack[start:], p.needle)
	if pos < 0 {
		return -1
	}
	return start + pos
}

func (p *memmemPrefilter) LiteralCount() int {
	return 1
}

// ahoCorasickPrefilter searches for several literals in one pass.
type ahoCorasickPrefilter struct {
	auto  *ahocorasick.Automaton
	count int
}

// newAhoCorasick returns nil if the automaton cannot be built.
func newAhoCorasick(seq *literal.Seq) Prefilter {
	builder := ahocorasick.NewBuilder()
	for _, lit := range seq.Literals() {
		builder.AddPattern(lit.Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &ahoCorasickPrefilter{auto: auto, count: seq.Len()}
}

func (p *ahoCorasickPrefilter) IsMatch(haystack []byte) bool {
	return p.auto.IsMatch(haystack)
}

func (p *ahoCorasickPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start > len(haystack) {
		return -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

func (p *ahoCorasickPrefilter) LiteralCount() int {
	return p.count
}
