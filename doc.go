/*
Package lexnum recognizes numeric literals with a hand-built deterministic
finite automaton.

Given a line of text and a start offset, lexnum finds the first numeric
literal starting at that offset and classifies it as an integer or a decimal
value. Recognized literals are

	0                           integer
	[1-9][0-9]*                 integer
	0[xX][0-9a-fA-F]+           integer
	[0-9]*[a-fA-F][0-9a-fA-F]*  integer
	[1-9][0-9]*\.[0-9]*         decimal
	0\.[0-9]*                   decimal
	\.[0-9]+                    decimal

Package structure is as follows:

■ dfa: Package dfa holds the character classifier and the state transition
table of the automaton, together with tools to validate and export it.

■ scanner: Package scanner drives the automaton over input text and produces
tokens. Sub-package lexmach provides a reference recognizer for the same
grammar, compiled by lexmachine.

The base package contains the token types which are used throughout all the
other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package lexnum
