package lexmach

import (
	"testing"

	lexnum "github.com/kut-info-compiler/lexer-lexnum-200309u"
	"github.com/kut-info-compiler/lexer-lexnum-200309u/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCompile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexnum.scanner")
	defer teardown()
	//
	lx, err := Lexer()
	if err != nil {
		t.Fatal(err)
	}
	if again, _ := Lexer(); again != lx {
		t.Errorf("expected grammar to be compiled once")
	}
}

func TestRecognize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexnum.scanner")
	defer teardown()
	//
	for i, test := range []struct {
		input  string
		start  int
		kind   lexnum.Kind
		lexeme string
	}{
		{"0", 0, lexnum.Integer, "0"},
		{"1.", 0, lexnum.Decimal, "1."},
		{"0.", 0, lexnum.Decimal, "0."},
		{"007", 0, lexnum.Integer, "0"},
		{"x=.25", 2, lexnum.Decimal, ".25"},
		{"", 0, lexnum.Error, ""},
		{"-", 0, lexnum.Error, ""},
	} {
		tok, err := Recognize(test.input, test.start)
		if err != nil {
			t.Fatal(err)
		}
		if tok.Kind() != test.kind || tok.Lexeme() != test.lexeme || tok.Start() != test.start {
			t.Errorf("test %d: expected %s%s at %d, have %s at %d", i, test.kind, test.lexeme,
				test.start, tok, tok.Start())
		}
	}
}

// The automaton agrees with the grammar for these inputs.
func TestAgreesWithScanner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexnum.scanner")
	defer teardown()
	//
	for _, input := range []string{
		"0", "100", "0xabc", "0x", "0123456789a", "10.3", "0.12", ".12", ".", "abc",
		"12;", "0x ", "10.3.4", ".12x", "fg", "x1", "..", "0123", "0xff+1", "0.12.5",
	} {
		ref, err := Recognize(input, 0)
		if err != nil {
			t.Fatal(err)
		}
		if tok := scanner.Scan(input, 0); tok != ref {
			t.Errorf("expected scanner to agree with grammar on %q: have %s, grammar %s", input, tok, ref)
		}
	}
}

// The automaton applies corrections the grammar does not know about.
func TestKnownDivergences(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexnum.scanner")
	defer teardown()
	//
	for _, d := range []struct {
		input            string
		scanned, grammar string
	}{
		{"1.", "INT1.", "DEC1."},
		{"0.a", "INT0.", "DEC0."},
		{"1.x", "ERR", "DEC1."},
		{"01", "INT01", "INT0"},
		{"0123 ", "INT0123", "INT0"},
	} {
		ref, _ := Recognize(d.input, 0)
		tok := scanner.Scan(d.input, 0)
		if tok.String() != d.scanned || ref.String() != d.grammar {
			t.Errorf("%q: expected scanner %s / grammar %s, have %s / %s", d.input,
				d.scanned, d.grammar, tok, ref)
		}
	}
}
