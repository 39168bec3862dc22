/*
Command lexnum reads lines of text and prints the numeric literal found at
the beginning of each line.

Every result is printed as the kind of the literal, immediately followed by
the literal itself:

	$ echo "0x1f;" | lexnum -batch
	INT0x1f
	$ lexnum .12
	DEC.12

Without arguments and without -batch, lexnum starts an interactive prompt.
Quit with <ctrl>D. Settings may be read from a TOML file (-config), flags
override the file.

	prompt  = "lexnum> "
	trace   = "Info"      # Debug | Info | Error
	offset  = 0           # offset to scan from within each line
	compare = false       # print the longest grammar match, too
	jobs    = 0           # concurrent scans in batch mode, 0 = GOMAXPROCS

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexnum.cli'
func tracer() tracing.Trace {
	return tracing.Select("lexnum.cli")
}
