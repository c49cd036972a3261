package syntax

// Parser is a recursive-descent parser over the token stream of one pattern.
//
// Grammar:
//
//	expression    -> subExpression EOF
//	subExpression -> sequence ('|' subExpression)?
//	sequence      -> subSequence | ε
//	subSequence   -> star subSequence*
//	star          -> factor ('*' | '+' | '?' | '{' count '}')?
//	factor        -> '(' subExpression ')' | '[' classItem* ']' | '.' | CHARACTER
//
// The parser has no error recovery: the first error aborts the parse.
type Parser struct {
	lexer   *Lexer
	looking Token
	pattern string
}

// NewParser creates a parser for pattern, primed with the first token.
func NewParser(pattern string) *Parser {
	p := &Parser{
		lexer:   NewLexer(pattern),
		pattern: pattern,
	}
	p.move()
	return p
}

// Parse parses pattern into a syntax tree.
func Parse(pattern string) (Node, error) {
	return NewParser(pattern).Expression()
}

func (p *Parser) move() {
	p.looking = p.lexer.Scan()
}

func (p *Parser) fail(kind ErrorKind) error {
	return &Error{Kind: kind, Pattern: p.pattern}
}

// matchKind consumes the lookahead if it has the given kind. A missing
// closing bracket is reported as such; any other mismatch is a syntax error.
func (p *Parser) matchKind(kind Kind) error {
	if p.looking.Kind != kind {
		return p.fail(missing(kind))
	}
	p.move()
	return nil
}

// startsSequence reports whether the lookahead can begin a sequence.
func (p *Parser) startsSequence() bool {
	switch p.looking.Kind {
	case KindLParen, KindCharacter, KindDot, KindLSquareBracket, KindLCurlyBracket, KindHyphen:
		return true
	default:
		return false
	}
}

// Expression parses a whole pattern up to EOF.
func (p *Parser) Expression() (Node, error) {
	node, err := p.subExpression()
	if err != nil {
		return nil, err
	}
	if err := p.matchKind(KindEOF); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *Parser) subExpression() (Node, error) {
	first, err := p.sequence()
	if err != nil {
		return nil, err
	}
	nodes := []Node{first}
	for p.looking.Kind == KindUnion {
		p.move()
		next, err := p.sequence()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, next)
	}
	return MakeUnion(nodes...), nil
}

func (p *Parser) sequence() (Node, error) {
	if !p.startsSequence() {
		return EmptyNode(), nil
	}
	return p.subSequence()
}

func (p *Parser) subSequence() (Node, error) {
	var nodes []Node
	for {
		node, err := p.star()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
		if !p.startsSequence() {
			return MakeConcat(nodes...), nil
		}
	}
}

func (p *Parser) star() (Node, error) {
	node, err := p.factor()
	if err != nil {
		return nil, err
	}

	switch p.looking.Kind {
	case KindPlus:
		p.move()
		return &Plus{Child: node}, nil
	case KindStar:
		p.move()
		return &Star{Child: node}, nil
	case KindQuestion:
		p.move()
		return &Question{Child: node}, nil
	case KindLCurlyBracket:
		p.move()
		body, err := p.sequence()
		if err != nil {
			return nil, err
		}
		if err := p.matchKind(KindRCurlyBracket); err != nil {
			return nil, err
		}
		lo, hi, ok := parseCount(body.String())
		if !ok {
			return nil, p.fail(Number)
		}
		return &Repeat{Child: node, Min: lo, Max: hi}, nil
	default:
		return node, nil
	}
}

func (p *Parser) factor() (Node, error) {
	switch p.looking.Kind {
	case KindLParen:
		p.move()
		node, err := p.subExpression()
		if err != nil {
			return nil, err
		}
		if err := p.matchKind(KindRParen); err != nil {
			return nil, err
		}
		return node, nil
	case KindLSquareBracket:
		p.move()
		return p.class()
	case KindDot:
		p.move()
		return &Character{Matcher: Any()}, nil
	case KindHyphen:
		p.move()
		return &Character{Matcher: Literal('-')}, nil
	case KindCharacter:
		r := p.looking.Rune
		p.move()
		return &Character{Matcher: Literal(r)}, nil
	default:
		return nil, p.fail(Other)
	}
}

// class parses the items of a character class after the opening '['.
//
// For "x-y" both the range and the end character y are collected; y is
// then seen again as the start of the next item, so "a-c-e" spans a..e.
func (p *Parser) class() (Node, error) {
	var items []Node
	for p.looking.Kind != KindRSquareBracket {
		start, ok := p.looking.ClassRune()
		if !ok {
			return nil, p.fail(MissingSquareBracket)
		}
		items = append(items, &Character{Matcher: Literal(start)})
		p.move()

		if p.looking.Kind != KindHyphen {
			continue
		}
		p.move()
		if end, ok := p.looking.ClassRune(); ok {
			if end < start {
				return nil, p.fail(Other)
			}
			items = append(items, &Character{Matcher: Range(start, end)})
		} else {
			items = append(items, &Character{Matcher: Literal('-')})
		}
	}
	if err := p.matchKind(KindRSquareBracket); err != nil {
		return nil, err
	}
	return MakeUnion(items...), nil
}
