package lexnum

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// --- Token kinds -----------------------------------------------------------

// Kind is the category of a scanned token.
type Kind int8

// Kinds of tokens. Error signals that no numeric literal starts at the
// scanned position.
const (
	Error Kind = iota
	Integer
	Decimal
)

// String returns the short label used when printing tokens: INT, DEC or ERR.
func (k Kind) String() string {
	switch k {
	case Integer:
		return "INT"
	case Decimal:
		return "DEC"
	case Error:
		return "ERR"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// --- Tokens ----------------------------------------------------------------

// Token is the result of a single scan. Tokens are values and are never
// modified after construction.
//
// An example would be a token for a hexadecimal integer:
//
//	Kind   = Integer       // category of the literal
//	Lexeme = "0xabc"       // lexeme as it appeared in the input
//	Value  = int64(2748)   // converted on demand
//	Span   = (4…9)         // occurred from byte position 4 in the input
type Token struct {
	kind   Kind
	start  int
	length int
	lexeme string
}

// MakeToken creates a token of kind typ covering text[start:start+length].
// Error tokens always have length 0. If the span does not fit into text,
// the lexeme is left empty.
func MakeToken(typ Kind, text string, start, length int) Token {
	if typ == Error || length < 0 {
		length = 0
	}
	t := Token{kind: typ, start: start, length: length}
	if start >= 0 && start+length <= len(text) {
		t.lexeme = text[start : start+length]
	}
	return t
}

// Kind returns the category of the token.
func (t Token) Kind() Kind {
	return t.kind
}

// Start returns the offset of the token within the scanned text.
func (t Token) Start() int {
	return t.start
}

// Len returns the length of the token in bytes.
func (t Token) Len() int {
	return t.length
}

// Lexeme returns the characters the token covers.
func (t Token) Lexeme() string {
	return t.lexeme
}

// Span returns the half-open range of the token within the scanned text.
func (t Token) Span() Span {
	return Span{t.start, t.start + t.length}
}

// IsError is true for tokens of kind Error.
func (t Token) IsError() bool {
	return t.kind == Error
}

// Value converts the lexeme into a number. Integers are returned as int64,
// or as *big.Int if they do not fit. A trailing point of an integer lexeme
// ("10.") is ignored. Decimals are returned as float64. Error tokens have
// value nil.
func (t Token) Value() interface{} {
	switch t.kind {
	case Integer:
		return integerValue(t.lexeme)
	case Decimal:
		return decimalValue(t.lexeme)
	}
	return nil
}

// String prints a token the way the command line tool does: the kind label
// immediately followed by the lexeme.
func (t Token) String() string {
	return t.kind.String() + t.lexeme
}

func integerValue(s string) interface{} {
	s = strings.TrimSuffix(s, ".")
	digits, base := s, 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		digits, base = s[2:], 16
	} else if strings.ContainsAny(s, "abcdefABCDEF") {
		base = 16
	}
	if n, err := strconv.ParseInt(digits, base, 64); err == nil {
		return n
	}
	if n, ok := new(big.Int).SetString(digits, base); ok {
		return n
	}
	return nil
}

func decimalValue(s string) interface{} {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// ParseFloat reports overflow together with ±Inf
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f
		}
		return nil
	}
	return f
}

// --- Spans -----------------------------------------------------------------

// Span is a small type for capturing a run of input. A span denotes a start
// position and the position just behind the end.
type Span [2]int // (x…y)

// From returns the start value of a span.
func (s Span) From() int {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() int {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() int {
	return s[1] - s[0]
}

// IsNull is true for spans of length 0.
func (s Span) IsNull() bool {
	return s[0] == s[1]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
