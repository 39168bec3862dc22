package scanner

import (
	"bufio"
	"fmt"
	"io"

	lexnum "github.com/kut-info-compiler/lexer-lexnum-200309u"
)

// LineScanner reads input line by line and scans every line for a numeric
// literal. Create one with NewLineScanner.
type LineScanner struct {
	lines    *bufio.Scanner
	sourceID string      // name of the input, used for error messages
	start    int         // offset to scan from within each line
	lineno   int         // number of the last line read
	Error    func(error) // error handler
}

// Default error reporting function for line scanners
func logError(e error) {
	tracer().Errorf("scanner error: %s", e.Error())
}

// NewLineScanner creates a scanner reading lines from input.
func NewLineScanner(sourceID string, input io.Reader, opts ...Option) *LineScanner {
	ls := &LineScanner{
		lines:    bufio.NewScanner(input),
		sourceID: sourceID,
		Error:    logError,
	}
	for _, opt := range opts {
		opt(ls)
	}
	return ls
}

// SetErrorHandler sets an error handler for the scanner.
func (ls *LineScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		ls.Error = logError
		return
	}
	ls.Error = h
}

// NextToken reads the next line and scans it. It returns the token together
// with the line it was found in. At the end of input NextToken returns
// io.EOF. Read errors are reported to the error handler and returned.
func (ls *LineScanner) NextToken() (lexnum.Token, string, error) {
	if !ls.lines.Scan() {
		if err := ls.lines.Err(); err != nil {
			err = fmt.Errorf("%s:%d: cannot read line (%w)", ls.sourceID, ls.lineno+1, err)
			ls.Error(err)
			return lexnum.Token{}, "", err
		}
		tracer().Debugf("LineScanner reached end of input %s", ls.sourceID)
		return lexnum.Token{}, "", io.EOF
	}
	ls.lineno++
	line := ls.lines.Text()
	return Scan(line, ls.start), line, nil
}

// LineNo returns the 1-based number of the line last read.
func (ls *LineScanner) LineNo() int {
	return ls.lineno
}

// --- Options for line scanners ---------------------------------------------

// Option configures a line scanner.
type Option func(ls *LineScanner)

// StartAt sets the offset at which each line is scanned. Default is 0.
func StartAt(offset int) Option {
	return func(ls *LineScanner) {
		ls.start = offset
	}
}

// MaxLineLength sets the maximum length of input lines in bytes. Longer
// lines result in an error (bufio.ErrTooLong). n <= 0 keeps the default
// limit of bufio.MaxScanTokenSize.
func MaxLineLength(n int) Option {
	return func(ls *LineScanner) {
		if n <= 0 {
			return
		}
		size := 4096
		if n < size {
			size = n
		}
		ls.lines.Buffer(make([]byte, 0, size), n)
	}
}
