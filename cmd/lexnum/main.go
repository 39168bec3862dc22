package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kut-info-compiler/lexer-lexnum-200309u/dfa"
	"github.com/kut-info-compiler/lexer-lexnum-200309u/scanner"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// main() scans numeric literals. Input is taken from the command line
// arguments, from stdin in batch mode, or interactively from a prompt.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	opts := defineFlags(flag.CommandLine)
	conffile := flag.String("config", "", "Settings file (TOML)")
	batch := flag.Bool("batch", false, "Read lines from stdin, print results without prompt")
	htmlfile := flag.String("html", "", "Export the transition table as HTML to file and exit")
	table := flag.Bool("table", false, "Print the transition table and exit")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	cfg, err := loadConfig(*conffile, defaultConfig())
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(2)
	}
	cfg = opts.override(flag.CommandLine, cfg)
	setTraceLevel(cfg.Trace) // now set the user supplied level
	//
	// check the automaton and handle table requests
	if err := dfa.Validate(); err != nil {
		tracer().Errorf("%v", err)
		os.Exit(4)
	}
	dfa.Dump() // only visible in debug mode
	if *table {
		printTable()
		return
	}
	if *htmlfile != "" {
		if err := exportHTML(*htmlfile); err != nil {
			tracer().Errorf("%v", err)
			os.Exit(1)
		}
		return
	}
	//
	// scan command line input, stdin, or go into interactive mode
	if input := strings.Join(flag.Args(), " "); input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		if err := writeResult(os.Stdout, scanner.Scan(input, cfg.Offset), input, cfg); err != nil {
			tracer().Errorf("%v", err)
			os.Exit(1)
		}
		return
	}
	if *batch {
		if err := runBatch(context.Background(), os.Stdin, os.Stdout, cfg); err != nil {
			tracer().Errorf("%v", err)
			os.Exit(1)
		}
		return
	}
	repl, err := readline.New(cfg.Prompt)
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer repl.Close()
	pterm.Info.Println("Welcome to lexnum") // colored welcome message
	tracer().Infof("Quit with <ctrl>D")     // inform user how to stop the CLI
	intp := &Intp{cfg: cfg, repl: repl}
	intp.REPL()
}

func exportHTML(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := dfa.TableAsHTML(f); err != nil {
		return err
	}
	tracer().Infof("Transition table written to %s", filename)
	return nil
}

// setTraceLevel sets the level for all the tracers of lexnum.
func setTraceLevel(l string) {
	level := tracing.TraceLevelFromString(l)
	for _, key := range []string{"lexnum.cli", "lexnum.scanner", "lexnum.dfa"} {
		tracing.Select(key).SetTraceLevel(level)
	}
}
