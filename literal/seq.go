// Package literal extracts literal strings from a syntax tree.
//
// The extracted literals feed the prefilter: when every string a pattern can
// match contains one of a small set of literals, an input that contains none
// of them can be rejected without running the automaton.
//
// Key concepts:
//   - A Literal is a concrete byte sequence
//   - A Seq is a set of alternative literals (e.g., from alternations like /foo|bar/)
package literal

import (
	"bytes"
	"sort"
	"strings"
)

// Literal represents a literal byte sequence extracted from a pattern.
// The Complete flag indicates whether this literal is an entire match
// (true) or just a substring every match contains (false).
//
// Example:
//   - Pattern /hello/ → Literal{[]byte("hello"), true}
//   - Pattern /hello+/ → Literal{[]byte("hell"), false} (hell then o+)
type Literal struct {
	// Bytes contains the actual literal byte sequence.
	Bytes []byte

	// Complete indicates whether this literal represents the entire match.
	Complete bool
}

// NewLiteral creates a new Literal from the given byte sequence and completeness flag.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{
		Bytes:    b,
		Complete: complete,
	}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns a string representation of the literal for debugging purposes.
// Format: "literal{bytes, complete=true/false}"
func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq represents a set of alternative literals.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("foo"), true),
//	    literal.NewLiteral([]byte("bar"), true),
//	)
//	fmt.Printf("Sequence has %d literals\n", seq.Len()) // Output: Sequence has 2 literals
type Seq struct {
	literals []Literal
}

// NewSeq creates a new sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{
		literals: lits,
	}
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// IsEmpty returns true if the sequence contains no literals.
func (s *Seq) IsEmpty() bool {
	return s.Len() == 0
}

// Get returns the literal at index i.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// Literals returns the literals of the sequence.
// The returned slice must not be modified.
func (s *Seq) Literals() []Literal {
	if s == nil {
		return nil
	}
	return s.literals
}

// AllComplete returns true if the sequence is non-empty and every literal is
// a complete match.
func (s *Seq) AllComplete() bool {
	if s.IsEmpty() {
		return false
	}
	for _, lit := range s.literals {
		if !lit.Complete {
			return false
		}
	}
	return true
}

// MinLen returns the length of the shortest literal, or 0 for an empty sequence.
func (s *Seq) MinLen() int {
	if s.IsEmpty() {
		return 0
	}
	min := s.literals[0].Len()
	for _, lit := range s.literals[1:] {
		if lit.Len() < min {
			min = lit.Len()
		}
	}
	return min
}

// Contains returns true if one of the literals equals b.
func (s *Seq) Contains(b []byte) bool {
	for _, lit := range s.Literals() {
		if bytes.Equal(lit.Bytes, b) {
			return true
		}
	}
	return false
}

// String returns a string representation of the sequence for debugging.
func (s *Seq) String() string {
	parts := make([]string, 0, s.Len())
	for _, lit := range s.Literals() {
		parts = append(parts, lit.String())
	}
	return "Seq[" + strings.Join(parts, ", ") + "]"
}

// newSeqFromStrings builds a sorted, deduplicated sequence.
func newSeqFromStrings(strs []string, complete bool) *Seq {
	sorted := append([]string(nil), strs...)
	sort.Strings(sorted)
	lits := make([]Literal, 0, len(sorted))
	for i, str := range sorted {
		if i > 0 && str == sorted[i-1] {
			continue
		}
		lits = append(lits, NewLiteral([]byte(str), complete))
	}
	return NewSeq(lits...)
}
