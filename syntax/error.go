package syntax

import "fmt"

// ErrorKind classifies parse errors.
type ErrorKind uint8

const (
	// MissingParen indicates a '(' whose ')' never appeared.
	MissingParen ErrorKind = iota

	// MissingSquareBracket indicates a '[' whose ']' never appeared.
	MissingSquareBracket

	// MissingCurlyBracket indicates a '{' whose '}' never appeared.
	MissingCurlyBracket

	// Number indicates a quantifier body that is neither {m} nor {m,n} with m <= n.
	Number

	// Other is a generic syntax error.
	Other
)

// String returns a human-readable error kind name
func (k ErrorKind) String() string {
	switch k {
	case MissingParen:
		return "MissingParen"
	case MissingSquareBracket:
		return "MissingSquareBracket"
	case MissingCurlyBracket:
		return "MissingCurlyBracket"
	case Number:
		return "Number"
	case Other:
		return "Other"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// Sentinel parse errors for use with errors.Is.
var (
	ErrMissingParen         = &Error{Kind: MissingParen}
	ErrMissingSquareBracket = &Error{Kind: MissingSquareBracket}
	ErrMissingCurlyBracket  = &Error{Kind: MissingCurlyBracket}
	ErrNumber               = &Error{Kind: Number}
	ErrSyntax               = &Error{Kind: Other}
)

// Error is a parse error. Parsing stops at the first error.
type Error struct {
	Kind    ErrorKind
	Pattern string // the pattern being parsed, if known
}

// Message returns the error text without the pattern context.
func (e *Error) Message() string {
	switch e.Kind {
	case MissingParen:
		return "Missing `)`"
	case MissingSquareBracket:
		return "Missing `]`"
	case MissingCurlyBracket:
		return "Missing `}`"
	case Number:
		return "{} must be {count} or {start,end}"
	default:
		return "Syntax Error"
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("error parsing regexp %q: %s", e.Pattern, e.Message())
	}
	return e.Message()
}

// Is implements error comparison for errors.Is
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// missing returns the error raised when the closer of kind never appears.
func missing(closer Kind) ErrorKind {
	switch closer {
	case KindRParen:
		return MissingParen
	case KindRSquareBracket:
		return MissingSquareBracket
	case KindRCurlyBracket:
		return MissingCurlyBracket
	default:
		return Other
	}
}
