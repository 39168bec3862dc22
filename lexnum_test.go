package lexnum

import (
	"math/big"
	"testing"
)

func TestKindLabels(t *testing.T) {
	for k, label := range map[Kind]string{Integer: "INT", Decimal: "DEC", Error: "ERR"} {
		if k.String() != label {
			t.Errorf("expected kind %d to print as %s, is %s", int(k), label, k.String())
		}
	}
}

func TestMakeToken(t *testing.T) {
	tok := MakeToken(Integer, "  0xabc;", 2, 5)
	if tok.Lexeme() != "0xabc" {
		t.Errorf("expected lexeme 0xabc, is %q", tok.Lexeme())
	}
	if tok.Span() != (Span{2, 7}) || tok.Span().Len() != 5 {
		t.Errorf("unexpected span %v", tok.Span())
	}
	if tok.String() != "INT0xabc" {
		t.Errorf("expected INT0xabc, have %s", tok)
	}
	e := MakeToken(Error, "..", 0, 2)
	if e.Len() != 0 || !e.Span().IsNull() || !e.IsError() {
		t.Errorf("error tokens must have length 0, have %v", e.Span())
	}
	if e.String() != "ERR" {
		t.Errorf("expected ERR, have %s", e)
	}
	if MakeToken(Integer, "1", 0, 5).Lexeme() != "" {
		t.Errorf("expected empty lexeme for span outside of text")
	}
}

func TestTokenValue(t *testing.T) {
	for i, test := range []struct {
		kind   Kind
		lexeme string
		value  interface{}
	}{
		{Integer, "0", int64(0)},
		{Integer, "100", int64(100)},
		{Integer, "0xabc", int64(0xabc)},
		{Integer, "0XFF", int64(255)},
		{Integer, "abc", int64(0xabc)},
		{Integer, "0123456789a", int64(0x0123456789a)},
		{Decimal, "10.3", 10.3},
		{Decimal, "0.12", 0.12},
		{Decimal, ".12", 0.12},
		{Decimal, "10.", 10.0},
		{Integer, "10.", int64(10)},
		{Integer, "0.", int64(0)},
		{Error, "", nil},
	} {
		tok := MakeToken(test.kind, test.lexeme, 0, len(test.lexeme))
		if v := tok.Value(); v != test.value {
			t.Errorf("test %d: expected value of %q to be %v, is %v", i, test.lexeme, test.value, v)
		}
	}
}

func TestTokenValueOverflow(t *testing.T) {
	lexeme := "0xffffffffffffffffff"
	tok := MakeToken(Integer, lexeme, 0, len(lexeme))
	n, ok := tok.Value().(*big.Int)
	if !ok {
		t.Fatalf("expected big integer for %s, have %T", lexeme, tok.Value())
	}
	if n.Text(16) != "ffffffffffffffffff" {
		t.Errorf("unexpected value %s", n.Text(16))
	}
}
