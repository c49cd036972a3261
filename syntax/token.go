package syntax

import "fmt"

// Kind identifies the lexical class of a Token.
type Kind uint8

const (
	// KindCharacter is a literal character, including escaped metacharacters.
	KindCharacter Kind = iota
	KindDot
	KindUnion
	KindStar
	KindPlus
	KindQuestion
	KindLParen
	KindRParen
	KindLSquareBracket
	KindRSquareBracket
	KindHyphen
	KindLCurlyBracket
	KindRCurlyBracket
	KindEOF
)

// String returns a human-readable representation of the Kind
func (k Kind) String() string {
	switch k {
	case KindCharacter:
		return "Character"
	case KindDot:
		return "Dot"
	case KindUnion:
		return "Union"
	case KindStar:
		return "Star"
	case KindPlus:
		return "Plus"
	case KindQuestion:
		return "Question"
	case KindLParen:
		return "LParen"
	case KindRParen:
		return "RParen"
	case KindLSquareBracket:
		return "LSquareBracket"
	case KindRSquareBracket:
		return "RSquareBracket"
	case KindHyphen:
		return "Hyphen"
	case KindLCurlyBracket:
		return "LCurlyBracket"
	case KindRCurlyBracket:
		return "RCurlyBracket"
	case KindEOF:
		return "EOF"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// metaRunes maps each metacharacter to the token kind it scans as.
var metaRunes = map[rune]Kind{
	'.': KindDot,
	'|': KindUnion,
	'*': KindStar,
	'+': KindPlus,
	'?': KindQuestion,
	'(': KindLParen,
	')': KindRParen,
	'[': KindLSquareBracket,
	']': KindRSquareBracket,
	'-': KindHyphen,
	'{': KindLCurlyBracket,
	'}': KindRCurlyBracket,
}

// Token is a single lexical unit of a pattern.
//
// Rune holds the character for KindCharacter tokens and the metacharacter
// itself for every other kind except KindEOF.
type Token struct {
	Kind Kind
	Rune rune
}

// CharToken returns a literal character token.
func CharToken(r rune) Token {
	return Token{Kind: KindCharacter, Rune: r}
}

// EOF returns the end-of-input token.
func EOF() Token {
	return Token{Kind: KindEOF}
}

// SameKind reports whether t and other have the same kind, ignoring payload.
func (t Token) SameKind(other Token) bool {
	return t.Kind == other.Kind
}

// ClassRune returns the rune the token stands for inside a character class.
// Every token except ']' and EOF stands for its own character there.
func (t Token) ClassRune() (rune, bool) {
	switch t.Kind {
	case KindRSquareBracket, KindEOF:
		return 0, false
	default:
		return t.Rune, true
	}
}

// String returns a human-readable representation of the token
func (t Token) String() string {
	switch t.Kind {
	case KindCharacter:
		return fmt.Sprintf("Character(%q)", t.Rune)
	case KindEOF:
		return "EOF"
	default:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Rune)
	}
}
