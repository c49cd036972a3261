package syntax

import (
	"fmt"
	"strings"
)

// MatcherKind identifies what a Matcher accepts.
type MatcherKind uint8

const (
	// MatchEmpty accepts no character. As a Character node it is the
	// zero-width construct that matches the empty string.
	MatchEmpty MatcherKind = iota

	// MatchLiteral accepts exactly one character.
	MatchLiteral

	// MatchAny accepts every character.
	MatchAny

	// MatchRange accepts characters in [Lo, Hi].
	MatchRange
)

// Matcher is a stateless predicate over a single character.
type Matcher struct {
	Kind MatcherKind
	Lo   rune // the character for MatchLiteral, lower bound for MatchRange
	Hi   rune // upper bound for MatchRange
}

// Empty returns the matcher that accepts no character.
func Empty() Matcher {
	return Matcher{Kind: MatchEmpty}
}

// Literal returns a matcher for the single character r.
func Literal(r rune) Matcher {
	return Matcher{Kind: MatchLiteral, Lo: r, Hi: r}
}

// Any returns the matcher that accepts every character.
func Any() Matcher {
	return Matcher{Kind: MatchAny}
}

// Range returns a matcher for the inclusive range [lo, hi].
// A range with lo > hi accepts nothing.
func Range(lo, hi rune) Matcher {
	return Matcher{Kind: MatchRange, Lo: lo, Hi: hi}
}

// Matches reports whether the matcher accepts r.
func (m Matcher) Matches(r rune) bool {
	switch m.Kind {
	case MatchLiteral:
		return r == m.Lo
	case MatchAny:
		return true
	case MatchRange:
		return m.Lo <= r && r <= m.Hi
	default:
		return false
	}
}

// IsEmpty reports whether m is the Empty matcher.
func (m Matcher) IsEmpty() bool {
	return m.Kind == MatchEmpty
}

// String renders the matcher in pattern syntax.
func (m Matcher) String() string {
	switch m.Kind {
	case MatchLiteral:
		return escape(m.Lo)
	case MatchAny:
		return "."
	case MatchRange:
		return "[" + escape(m.Lo) + "-" + escape(m.Hi) + "]"
	case MatchEmpty:
		return ""
	default:
		return fmt.Sprintf("Matcher(%d)", m.Kind)
	}
}

// escape quotes r with a backslash when it would otherwise scan as a
// metacharacter.
func escape(r rune) string {
	if _, ok := metaRunes[r]; ok || r == '\\' {
		return `\` + string(r)
	}
	return string(r)
}

// QuoteMeta escapes every metacharacter in s so that the result parses as a
// sequence of literal characters.
func QuoteMeta(s string) string {
	var b strings.Builder
	for _, r := range s {
		b.WriteString(escape(r))
	}
	return b.String()
}
