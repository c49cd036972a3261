package syntax

// Lexer scans a pattern into tokens, one rune at a time and without lookback.
type Lexer struct {
	pattern []rune
	pos     int
}

// NewLexer creates a lexer over pattern.
func NewLexer(pattern string) *Lexer {
	return &Lexer{pattern: []rune(pattern)}
}

// Scan consumes and returns the next token. Once the pattern is exhausted it
// returns EOF on every call.
//
// A backslash makes the following rune a literal character; a trailing
// backslash is itself a literal.
func (l *Lexer) Scan() Token {
	if l.pos >= len(l.pattern) {
		return EOF()
	}
	r := l.pattern[l.pos]
	l.pos++

	if r == '\\' {
		if l.pos >= len(l.pattern) {
			return CharToken('\\')
		}
		escaped := l.pattern[l.pos]
		l.pos++
		return CharToken(escaped)
	}
	if kind, ok := metaRunes[r]; ok {
		return Token{Kind: kind, Rune: r}
	}
	return CharToken(r)
}
