package scanner

import (
	lexnum "github.com/kut-info-compiler/lexer-lexnum-200309u"
	"github.com/kut-info-compiler/lexer-lexnum-200309u/dfa"
	"github.com/kut-info-compiler/lexer-lexnum-200309u/dfa/sparse"
)

// fixup is a correction of the running marks, applied on a specific
// transition (from, to) after the effect of entering to.
type fixup int32

const (
	noFixup      fixup = iota
	lonePoint          // Start → LeadingPoint: a "." and nothing else is an error
	bareHexPrefix      // LeadingZero → HexPrefix: "0x" and nothing else counts as "0"
	hexCollapse        // HexPrefix → IntegerAccept: "0x" without hex digits is "0"
	zeroRunAtEnd       // ZeroDigits → ZeroDigits: "0" + digits up to end of input is "0"
)

// fixups is keyed by (from, to). Almost all transitions go without correction.
var fixups = func() *sparse.IntMatrix {
	m := sparse.NewIntMatrix(dfa.NumStates, dfa.NumStates, int32(noFixup))
	m.Set(int(dfa.Start), int(dfa.LeadingPoint), int32(lonePoint))
	m.Set(int(dfa.LeadingZero), int(dfa.HexPrefix), int32(bareHexPrefix))
	m.Set(int(dfa.HexPrefix), int(dfa.IntegerAccept), int32(hexCollapse))
	m.Set(int(dfa.ZeroDigits), int(dfa.ZeroDigits), int32(zeroRunAtEnd))
	return m
}()

func fixupFor(from, to dfa.State) fixup {
	return fixup(fixups.Value(int(from), int(to)))
}

// remaining is the length of the text from the scan's start offset.
func (sc *scan) remaining() int {
	return len(sc.text) - sc.start
}

func (fix fixup) apply(sc *scan) {
	switch fix {
	case lonePoint:
		if sc.remaining() == 1 {
			sc.kindMark = lexnum.Error
			sc.endMark = sc.start
		}
	case bareHexPrefix:
		if sc.remaining() == 2 {
			sc.endMark = sc.start + 1
		}
	case hexCollapse:
		sc.endMark = sc.start + 1
	case zeroRunAtEnd:
		// Only at end of input: "0123" collapses to "0" while "0123 " keeps
		// all digits (see TestScanZeroRunCorrection).
		if sc.pos == len(sc.text) {
			sc.endMark = sc.start + 1
		}
	}
	tracer().Debugf("%s: token end is %d", fix, sc.endMark)
}

func (fix fixup) String() string {
	switch fix {
	case lonePoint:
		return "lone-point"
	case bareHexPrefix:
		return "bare-hex-prefix"
	case hexCollapse:
		return "hex-collapse"
	case zeroRunAtEnd:
		return "zero-run-at-end"
	}
	return "none"
}
