package dfa

import "fmt"

// --- Character classes -----------------------------------------------------

// CharClass is an equivalence class of input characters. Classes keep the
// transition table small: all characters within a class drive the automaton
// alike.
type CharClass int8

// Character classes, in column order of the transition table.
const (
	Period       CharClass = iota // .
	HexMarker                     // x X
	Zero                          // 0
	NonZeroDigit                  // 1-9
	HexLetter                     // a-f A-F
	Other                         // everything else
	NumClasses   = 6              // number of columns of the transition table
)

var classNames = [NumClasses]string{"Period", "HexMarker", "Zero", "NonZeroDigit", "HexLetter", "Other"}

func (c CharClass) String() string {
	if c < 0 || int(c) >= NumClasses {
		return fmt.Sprintf("CharClass(%d)", int(c))
	}
	return classNames[c]
}

// Classify maps a character to its class. Classify is total: characters
// outside of the numeric alphabet, including every non-ASCII rune, belong
// to class Other.
func Classify(r rune) CharClass {
	switch {
	case r == '.':
		return Period
	case r == 'x' || r == 'X':
		return HexMarker
	case r == '0':
		return Zero
	case '1' <= r && r <= '9':
		return NonZeroDigit
	case 'a' <= r && r <= 'f', 'A' <= r && r <= 'F':
		return HexLetter
	}
	return Other
}
