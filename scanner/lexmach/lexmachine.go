package lexmach

import (
	"fmt"
	"sync"

	lexnum "github.com/kut-info-compiler/lexer-lexnum-200309u"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'lexnum.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lexnum.scanner")
}

// The grammar of numeric literals
var integerPatterns = []string{
	`0`,
	`[1-9][0-9]*`,
	`0[xX][0-9a-fA-F]+`,
	`[0-9]*[a-fA-F][0-9a-fA-F]*`,
}

var decimalPatterns = []string{
	`[1-9][0-9]*\.[0-9]*`,
	`0\.[0-9]*`,
	`\.[0-9]+`,
}

var (
	initOnce sync.Once         // monitors one-time initialization
	lexer    *lexmachine.Lexer // compiled grammar, read-only after init
	lexerErr error             // compilation error, if any
)

// Lexer returns the lexmachine lexer for the grammar of numeric literals.
// The grammar is compiled on first use. Lexer will return an error if
// compiling the DFA failed.
func Lexer() (*lexmachine.Lexer, error) {
	initOnce.Do(func() {
		lx := lexmachine.NewLexer()
		for _, p := range integerPatterns {
			lx.Add([]byte(p), makeToken(lexnum.Integer))
		}
		for _, p := range decimalPatterns {
			lx.Add([]byte(p), makeToken(lexnum.Decimal))
		}
		if err := lx.Compile(); err != nil {
			tracer().Errorf("Error compiling DFA: %v", err)
			lexerErr = fmt.Errorf("cannot compile numeric literal grammar: %w", err)
			return
		}
		lexer = lx
	})
	return lexer, lexerErr
}

// makeToken is an action which wraps a scanned match into a token of the
// given kind.
func makeToken(kind lexnum.Kind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(kind), string(m.Bytes), m), nil
	}
}

// Recognize returns the longest match of the grammar of numeric literals
// starting at byte offset start of text. If nothing matches, the token is
// of kind lexnum.Error and has length 0.
func Recognize(text string, start int) (lexnum.Token, error) {
	noMatch := lexnum.MakeToken(lexnum.Error, text, start, 0)
	if start < 0 || start >= len(text) {
		return noMatch, nil
	}
	lx, err := Lexer()
	if err != nil {
		return noMatch, err
	}
	scan, err := lx.Scanner([]byte(text[start:]))
	if err != nil {
		return noMatch, fmt.Errorf("cannot create scanner: %w", err)
	}
	tok, err, eof := scan.Next()
	if eof {
		return noMatch, nil
	}
	if err != nil {
		if _, is := err.(*machines.UnconsumedInput); is {
			tracer().Debugf("grammar does not match %q at %d", text, start)
			return noMatch, nil
		}
		return noMatch, err
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("tok is %T | %v", tok, tok)
	return lexnum.MakeToken(lexnum.Kind(token.Type), text, start, len(token.Lexeme)), nil
}
