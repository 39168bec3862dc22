/*
Package dfa defines the deterministic finite automaton for numeric literals:
a classifier mapping characters to character classes, and a fixed state
transition table over these classes.

The table is data, not control flow. Adding a class or a state is a change
of the matrix, not of the scanning code. Clients normally do not use the
table directly, but rather through package scanner. Package dfa provides
some tools to inspect it, e.g. for debugging purposes:

	if err := dfa.Validate(); err != nil { … }   // check structural properties
	dfa.Dump()                                   // visible with trace level Debug
	dfa.TableAsHTML(w)                           // export as HTML

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package dfa

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexnum.dfa'.
func tracer() tracing.Trace {
	return tracing.Select("lexnum.dfa")
}
