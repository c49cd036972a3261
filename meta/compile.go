package meta

import (
	"strings"
	"unicode/utf8"

	"github.com/coregx/thompson/dfa/lazy"
	"github.com/coregx/thompson/literal"
	"github.com/coregx/thompson/nfa"
	"github.com/coregx/thompson/prefilter"
	"github.com/coregx/thompson/syntax"
)

// Compile compiles a pattern with the default configuration.
//
// Example:
//
//	engine, err := meta.Compile("a*b")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Errors:
//   - *ConfigError if the configuration is invalid
//   - *syntax.Error if the pattern is malformed
//   - *nfa.CompileError if the NFA exceeds MaxNFAStates
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	ast, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}

	nfaEngine, err := nfa.Compile(ast, config.nfaConfig())
	if err != nil {
		return nil, err
	}

	dfa, err := lazy.New(nfaEngine, config.Condition, config.dfaConfig())
	if err != nil {
		return nil, err
	}

	e := &Engine{
		pattern:  pattern,
		ast:      ast,
		nfa:      nfaEngine,
		dfa:      dfa,
		runtimes: newRuntimePool(dfa),
		config:   config,
	}
	if config.EnablePrefilter {
		e.buildLiteralEngines()
	}
	e.strategy = SelectStrategy(config.Condition, e.exact, e.prefilter)
	return e, nil
}

// buildLiteralEngines extracts literals and builds the exact set and the
// prefilter from them.
func (e *Engine) buildLiteralEngines() {
	extractor := literal.New(e.config.extractorConfig())

	if e.config.Condition == lazy.All {
		e.exact = extractor.ExtractExact(e.ast)
	}
	required := extractor.ExtractRequired(e.ast)
	e.prefilter = prefilter.New(required)

	e.needsValidUTF8 = hasRuneError(e.exact) || hasRuneError(required)
}

func hasRuneError(seq *literal.Seq) bool {
	for _, lit := range seq.Literals() {
		if strings.ContainsRune(string(lit.Bytes), utf8.RuneError) {
			return true
		}
	}
	return false
}
