package scanner

import (
	"unicode/utf8"

	lexnum "github.com/kut-info-compiler/lexer-lexnum-200309u"
	"github.com/kut-info-compiler/lexer-lexnum-200309u/dfa"
)

// effect describes how entering a state updates the running marks of a scan.
type effect struct {
	kind    lexnum.Kind // kind to record, if setKind
	setKind bool
	extend  bool // token grows by the character just read
	reset   bool // discard everything matched so far
	stop    bool // absorbing state, no more input is read
}

// effects is indexed by the state entered. Start is never entered.
var effects = [dfa.NumStates]effect{
	dfa.Start:          {},
	dfa.IntegerRun:     {kind: lexnum.Integer, setKind: true, extend: true},
	dfa.LeadingZero:    {kind: lexnum.Integer, setKind: true, extend: true},
	dfa.Error:          {kind: lexnum.Error, setKind: true, reset: true, stop: true},
	dfa.LeadingPoint:   {extend: true},
	dfa.HexPrefix:      {kind: lexnum.Integer, setKind: true, extend: true},
	dfa.ZeroPoint:      {kind: lexnum.Integer, setKind: true, extend: true},
	dfa.FractionDigits: {kind: lexnum.Decimal, setKind: true, extend: true},
	dfa.ZeroDigits:     {extend: true},
	dfa.DecimalAccept:  {kind: lexnum.Decimal, setKind: true, stop: true},
	dfa.IntegerAccept:  {kind: lexnum.Integer, setKind: true, stop: true},
	dfa.ZeroFraction:   {kind: lexnum.Decimal, setKind: true, extend: true},
	dfa.HexDigits:      {extend: true},
}

// scan holds the local state of a single run of the automaton.
type scan struct {
	text     string
	start    int
	pos      int       // next byte to read
	state    dfa.State // current state
	endMark  int       // end of the longest acceptable token so far
	kindMark lexnum.Kind
}

// Scan recognizes the numeric literal starting at byte offset start of text.
// It returns the longest literal found, classified as lexnum.Integer or
// lexnum.Decimal. If no literal starts at start, Scan returns a token of
// kind lexnum.Error with length 0; partial matches are never reported.
//
// The character which drives the automaton into an accepting state ends the
// literal and is not part of the token:
//
//	Scan("12;", 0)     =>  INT "12"
//	Scan("0x", 0)      =>  INT "0"     incomplete hex prefix
//	Scan("10.3", 0)    =>  DEC "10.3"
//	Scan(".", 0)       =>  ERR
//
// Offsets outside of text lead to an Error token.
func Scan(text string, start int) lexnum.Token {
	if start < 0 || start > len(text) {
		tracer().Debugf("scan offset %d out of range [0…%d]", start, len(text))
		return lexnum.MakeToken(lexnum.Error, text, start, 0)
	}
	sc := scan{
		text:     text,
		start:    start,
		pos:      start,
		state:    dfa.Start,
		endMark:  start,
		kindMark: lexnum.Error,
	}
	for sc.pos < len(text) {
		r, w := utf8.DecodeRuneInString(text[sc.pos:])
		sc.pos += w
		class := dfa.Classify(r)
		next := dfa.Next(sc.state, class)
		tracer().Debugf("δ(%s,%s) = %s  @%d", sc.state, class, next, sc.pos)
		if stop := sc.enter(next, w); stop {
			break
		}
	}
	tok := lexnum.MakeToken(sc.kindMark, text, start, sc.endMark-start)
	tracer().Debugf("scanned %s %v", tok, tok.Span())
	return tok
}

// enter applies the effect of entering state next, followed by the correction
// for the transition, if any. w is the width of the character just read.
// enter returns true if the scan has to stop.
func (sc *scan) enter(next dfa.State, w int) bool {
	e := effects[next]
	if e.setKind {
		sc.kindMark = e.kind
	}
	if e.reset {
		sc.endMark = sc.start
	} else if e.extend {
		sc.endMark += w
	}
	if fix := fixupFor(sc.state, next); fix != noFixup {
		fix.apply(sc)
	}
	sc.state = next
	return e.stop
}
