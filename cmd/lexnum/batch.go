package main

import (
	"bufio"
	"context"
	"fmt"
	"io"

	lexnum "github.com/kut-info-compiler/lexer-lexnum-200309u"
	"github.com/kut-info-compiler/lexer-lexnum-200309u/scanner"
	"github.com/kut-info-compiler/lexer-lexnum-200309u/scanner/lexmach"
)

// runBatch scans every line of r and writes one result line per input line
// to w. With more than one job, all of the input is read first and the lines
// are scanned concurrently.
func runBatch(ctx context.Context, r io.Reader, w io.Writer, cfg config) error {
	if cfg.Jobs == 1 {
		ls := scanner.NewLineScanner("stdin", r, scanner.StartAt(cfg.Offset))
		for {
			tok, line, err := ls.NextToken()
			if err == io.EOF {
				return nil
			} else if err != nil {
				return err
			}
			if err := writeResult(w, tok, line, cfg); err != nil {
				return err
			}
		}
	}
	var lines []string
	input := bufio.NewScanner(r)
	for input.Scan() {
		lines = append(lines, input.Text())
	}
	if err := input.Err(); err != nil {
		return fmt.Errorf("cannot read input (%w)", err)
	}
	tokens, err := scanner.ScanLines(ctx, lines, cfg.Offset, cfg.Jobs)
	if err != nil {
		return err
	}
	for i, tok := range tokens {
		if err := writeResult(w, tok, lines[i], cfg); err != nil {
			return err
		}
	}
	return nil
}

func writeResult(w io.Writer, tok lexnum.Token, line string, cfg config) error {
	out, err := format(tok, line, cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

// format prints a token as kind and lexeme, e.g. "INT100". With compare set,
// the longest grammar match is appended.
func format(tok lexnum.Token, line string, cfg config) (string, error) {
	if !cfg.Compare {
		return tok.String(), nil
	}
	ref, err := lexmach.Recognize(line, cfg.Offset)
	if err != nil {
		return "", err
	}
	if ref == tok {
		return tok.String(), nil
	}
	return fmt.Sprintf("%s\t(grammar: %s)", tok, ref), nil
}
