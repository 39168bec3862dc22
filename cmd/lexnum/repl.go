package main

import (
	"fmt"

	"github.com/chzyer/readline"
	lexnum "github.com/kut-info-compiler/lexer-lexnum-200309u"
	"github.com/kut-info-compiler/lexer-lexnum-200309u/dfa"
	"github.com/kut-info-compiler/lexer-lexnum-200309u/scanner"
	"github.com/pterm/pterm"
)

// Intp is our interactive session object
type Intp struct {
	cfg  config
	repl *readline.Instance
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if _, err := intp.Eval(line); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	println("Good bye!")
}

// Eval scans a line of input and prints the result.
func (intp *Intp) Eval(line string) (lexnum.Token, error) {
	tok := scanner.Scan(line, intp.cfg.Offset)
	out, err := format(tok, line, intp.cfg)
	if err != nil {
		return tok, err
	}
	if tok.IsError() {
		pterm.Error.Println(out)
	} else {
		pterm.Info.Println(out)
		tracer().Debugf("%s %v = %v", tok.Kind(), tok.Span(), tok.Value())
	}
	return tok, nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// printTable renders the transition table of the automaton on the terminal.
func printTable() {
	m := dfa.Transitions()
	header := []string{"state"}
	for c := dfa.CharClass(0); int(c) < dfa.NumClasses; c++ {
		header = append(header, c.String())
	}
	data := pterm.TableData{header}
	for s := dfa.State(0); int(s) < dfa.NumStates; s++ {
		row := []string{fmt.Sprintf("%2d %s", s, s)}
		for c := dfa.CharClass(0); int(c) < dfa.NumClasses; c++ {
			row = append(row, fmt.Sprintf("%d", m[s][c]))
		}
		data = append(data, row)
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	if fp, err := dfa.Fingerprint(); err == nil {
		pterm.Info.Println("fingerprint " + fp)
	}
}
