package dfa

import "fmt"

// State is a state of the automaton.
type State int8

// States of the automaton. The numbering is the row order of the transition
// table. Error, DecimalAccept and IntegerAccept are absorbing.
const (
	Start          State = iota // 0  initial state
	IntegerRun                  // 1  [1-9][0-9]* or a run containing a hex letter
	LeadingZero                 // 2  0
	Error                       // 3  absorbing, no literal
	LeadingPoint                // 4  . at the start
	HexPrefix                   // 5  0x or 0X
	ZeroPoint                   // 6  0.
	FractionDigits              // 7  digits behind a decimal point
	ZeroDigits                  // 8  0 followed by decimal digits
	DecimalAccept               // 9  absorbing, decimal recognized
	IntegerAccept               // 10 absorbing, integer recognized
	ZeroFraction                // 11 digits behind 0.
	HexDigits                   // 12 hex digits behind 0x
	NumStates      = 13         // number of rows of the transition table
)

var stateNames = [NumStates]string{
	"Start", "IntegerRun", "LeadingZero", "Error", "LeadingPoint", "HexPrefix",
	"ZeroPoint", "FractionDigits", "ZeroDigits", "DecimalAccept", "IntegerAccept",
	"ZeroFraction", "HexDigits",
}

func (s State) String() string {
	if !s.valid() {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// IsTerminal is true for the absorbing states. Once entered, further input
// cannot change the classification.
func (s State) IsTerminal() bool {
	return s == Error || s == DecimalAccept || s == IntegerAccept
}

func (s State) valid() bool {
	return s >= 0 && int(s) < NumStates
}
