/*
Package lexmach provides a reference recognizer for numeric literals, compiled
from the regular expressions of the literal grammar by the lexmachine scanner
generator.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

The recognizer reports the longest match of the grammar at a given offset:

	tok, err := lexmach.Recognize("0x1f;", 0)   // INT 0x1f
	if err != nil {
		// lexmachine failed to compile the grammar
	}

It does not apply the corrections of package scanner and therefore differs
from scanner.Scan for some inputs, e.g. "1.x" (DEC "1." vs. ERR) or "0123 "
(INT "0" vs. INT "0123"). Clients use it to cross-check the automaton.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package lexmach
