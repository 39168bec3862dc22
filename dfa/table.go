package dfa

import (
	"errors"
	"fmt"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Matrix is a state transition table: Matrix[s][c] is the successor of state
// s for an input character of class c.
type Matrix [NumStates][NumClasses]State

// delta is the transition table of the numeric literal automaton.
// It encodes the grammar
//
//	0  |  [1-9][0-9]*  |  0[xX][0-9a-fA-F]+  |  [0-9]*[a-fA-F][0-9a-fA-F]*   integer
//	[1-9][0-9]*\.[0-9]*  |  0\.[0-9]*  |  \.[0-9]+                          decimal
var delta = Matrix{
	//              Period          HexMarker      Zero            NonZeroDigit    HexLetter      Other
	Start:          {LeadingPoint, Error, LeadingZero, IntegerRun, IntegerRun, Error},
	IntegerRun:     {LeadingPoint, IntegerAccept, IntegerRun, IntegerRun, IntegerRun, IntegerAccept},
	LeadingZero:    {ZeroPoint, HexPrefix, LeadingZero, ZeroDigits, IntegerRun, IntegerAccept},
	Error:          {Error, Error, Error, Error, Error, Error},
	LeadingPoint:   {Error, Error, FractionDigits, FractionDigits, Error, Error},
	HexPrefix:      {IntegerAccept, IntegerAccept, HexDigits, HexDigits, HexDigits, IntegerAccept},
	ZeroPoint:      {IntegerAccept, IntegerAccept, ZeroFraction, ZeroFraction, IntegerAccept, IntegerAccept},
	FractionDigits: {DecimalAccept, DecimalAccept, FractionDigits, FractionDigits, DecimalAccept, DecimalAccept},
	ZeroDigits:     {IntegerAccept, IntegerAccept, ZeroDigits, ZeroDigits, IntegerRun, IntegerAccept},
	DecimalAccept:  {DecimalAccept, DecimalAccept, DecimalAccept, DecimalAccept, DecimalAccept, DecimalAccept},
	IntegerAccept:  {IntegerAccept, IntegerAccept, IntegerAccept, IntegerAccept, IntegerAccept, IntegerAccept},
	ZeroFraction:   {DecimalAccept, DecimalAccept, ZeroFraction, ZeroFraction, DecimalAccept, DecimalAccept},
	HexDigits:      {IntegerAccept, IntegerAccept, HexDigits, HexDigits, HexDigits, IntegerAccept},
}

// Transitions returns a copy of the transition table of the automaton.
func Transitions() Matrix {
	return delta
}

// Next returns the successor of state s for a character of class c.
func Next(s State, c CharClass) State {
	return delta.Next(s, c)
}

// Validate checks the structural properties of the transition table of the
// automaton. See Matrix.Validate.
func Validate() error {
	return delta.Validate()
}

// Fingerprint returns a digest of the transition table of the automaton.
func Fingerprint() (string, error) {
	return delta.Fingerprint()
}

// Next returns the successor of state s for a character of class c.
// Arguments out of range lead to Error.
func (m *Matrix) Next(s State, c CharClass) State {
	if !s.valid() || c < 0 || int(c) >= NumClasses {
		return Error
	}
	return m[s][c]
}

// ErrMalformedTable is returned by Validate for tables violating the
// structural properties of the automaton.
var ErrMalformedTable = errors.New("malformed transition table")

// Validate checks that
//
//   - every entry of m is a valid state, i.e. m is a total function
//   - exactly Error, DecimalAccept and IntegerAccept are absorbing
//   - every state reachable from Start is able to reach an absorbing state
func (m Matrix) Validate() error {
	for s := State(0); int(s) < NumStates; s++ {
		for c := CharClass(0); int(c) < NumClasses; c++ {
			if !m[s][c].valid() {
				return fmt.Errorf("%w: δ(%s,%s) = %d", ErrMalformedTable, s, c, m[s][c])
			}
		}
		if m.absorbing(s) != s.IsTerminal() {
			return fmt.Errorf("%w: state %s absorbing=%v", ErrMalformedTable, s, m.absorbing(s))
		}
	}
	for _, s := range m.Reachable(Start) {
		terminates := false
		for _, t := range m.Reachable(s) {
			if t.IsTerminal() {
				terminates = true
				break
			}
		}
		if !terminates {
			return fmt.Errorf("%w: state %s cannot reach a terminal state", ErrMalformedTable, s)
		}
	}
	tracer().Debugf("transition table is valid")
	return nil
}

func (m Matrix) absorbing(s State) bool {
	for c := CharClass(0); int(c) < NumClasses; c++ {
		if m[s][c] != s {
			return false
		}
	}
	return true
}

// Reachable returns all the states reachable from state from, including from
// itself, in increasing order.
func (m Matrix) Reachable(from State) []State {
	visited := treeset.NewWith(stateComparator)
	worklist := arraylist.New()
	worklist.Add(from)
	for !worklist.Empty() {
		x, _ := worklist.Get(0)
		worklist.Remove(0)
		s := x.(State)
		if visited.Contains(s) {
			continue
		}
		visited.Add(s)
		for c := CharClass(0); int(c) < NumClasses; c++ {
			if next := m.Next(s, c); !visited.Contains(next) {
				worklist.Add(next)
			}
		}
	}
	states := make([]State, 0, visited.Size())
	for _, x := range visited.Values() {
		states = append(states, x.(State))
	}
	return states
}

// We need this for sets of states. It sorts states by number.
func stateComparator(s1, s2 interface{}) int {
	return utils.IntComparator(int(s1.(State)), int(s2.(State)))
}

// Fingerprint returns a hex digest of m. Tables with identical entries have
// identical fingerprints.
func (m Matrix) Fingerprint() (string, error) {
	h, err := structhash.Hash(struct{ Delta Matrix }{m}, 1)
	if err != nil {
		return "", fmt.Errorf("cannot fingerprint transition table: %w", err)
	}
	return h, nil
}
