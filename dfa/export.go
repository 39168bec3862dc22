package dfa

import (
	"bytes"
	"fmt"
	"io"
)

// Dump is a debugging helper. It prints the transition table to the tracer
// at level Debug.
func Dump() {
	tracer().Debugf("--- transition table ------------------------------")
	var b bytes.Buffer
	for s := State(0); int(s) < NumStates; s++ {
		b.Reset()
		b.WriteString(fmt.Sprintf("%2d %-15s|", s, s))
		for c := CharClass(0); int(c) < NumClasses; c++ {
			b.WriteString(fmt.Sprintf(" %2d", delta[s][c]))
		}
		if s.IsTerminal() {
			b.WriteString("  (absorbing)")
		}
		tracer().Debugf("%s", b.String())
	}
	tracer().Debugf("---------------------------------------------------")
}

// TableAsHTML exports the transition table in HTML-format.
func TableAsHTML(w io.Writer) error {
	return delta.asHTML(w)
}

func (m Matrix) asHTML(w io.Writer) error {
	var b bytes.Buffer
	b.WriteString("<html><body>\n")
	b.WriteString(fmt.Sprintf("transition table of size %d x %d<p>", NumStates, NumClasses))
	b.WriteString("<table border=1 cellspacing=0 cellpadding=5>\n")
	b.WriteString("<tr bgcolor=#cccccc><td></td>\n")
	for c := CharClass(0); int(c) < NumClasses; c++ {
		b.WriteString(fmt.Sprintf("<td>%s</td>", c))
	}
	b.WriteString("</tr>\n")
	for s := State(0); int(s) < NumStates; s++ {
		if s.IsTerminal() {
			b.WriteString(fmt.Sprintf("<tr><td><b>%d %s</b></td>\n", s, s))
		} else {
			b.WriteString(fmt.Sprintf("<tr><td>%d %s</td>\n", s, s))
		}
		for c := CharClass(0); int(c) < NumClasses; c++ {
			b.WriteString(fmt.Sprintf("<td>%d</td>\n", m[s][c]))
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table></body></html>\n")
	if _, err := w.Write(b.Bytes()); err != nil {
		return fmt.Errorf("cannot export transition table: %w", err)
	}
	return nil
}
