package syntax

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// countBody is the grammar of a rendered quantifier body such as "2" or
// "1,3". Empty pieces between commas are skipped.
type countBody struct {
	Bounds []string `parser:"( @Int | Comma )*"`
}

var countLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Comma", Pattern: `,`},
})

var countParser = participle.MustBuild[countBody](
	participle.Lexer(countLexer),
)

// parseCount interprets the text between '{' and '}'. It accepts exactly one
// non-negative integer m, meaning [m, m], or two integers m <= n, meaning
// [m, n]. Spaces are ignored.
func parseCount(text string) (lo, hi int, ok bool) {
	text = strings.ReplaceAll(text, " ", "")
	if text == "" {
		return 0, 0, false
	}
	body, err := countParser.ParseString("", text)
	if err != nil {
		return 0, 0, false
	}

	bounds := make([]int, 0, len(body.Bounds))
	for _, s := range body.Bounds {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, false
		}
		bounds = append(bounds, n)
	}

	switch len(bounds) {
	case 1:
		return bounds[0], bounds[0], true
	case 2:
		if bounds[0] > bounds[1] {
			return 0, 0, false
		}
		return bounds[0], bounds[1], true
	default:
		return 0, 0, false
	}
}
