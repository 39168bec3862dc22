/*
Package scanner recognizes the first numeric literal at a given offset of a
line of text.

The engine drives the automaton of package dfa over the input, one character
at a time, and keeps track of the longest valid literal seen so far. A few
transitions carry corrections of the token length, e.g. an incomplete hex
prefix "0x" is reported as the integer "0".

	tok := scanner.Scan("0x1f;", 0)   // INT 0x1f
	tok = scanner.Scan(".", 0)        // ERR, length 0

Scanning never fails: input without a literal at the given offset results in
a token of kind lexnum.Error with length 0. Scans share no state and may run
concurrently. Besides single scans the package offers a line-oriented scanner
for readers and concurrent scanning of many lines.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexnum.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lexnum.scanner")
}
