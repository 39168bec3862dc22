package scanner

import (
	"context"
	"runtime"

	lexnum "github.com/kut-info-compiler/lexer-lexnum-200309u"
	"golang.org/x/sync/errgroup"
)

// ScanLines scans a batch of lines concurrently, each one from offset start.
// At most jobs lines are scanned at the same time; jobs <= 0 means
// GOMAXPROCS. The tokens are returned in the order of the lines.
//
// ScanLines stops early if ctx is cancelled and returns the context's error.
func ScanLines(ctx context.Context, lines []string, start int, jobs int) ([]lexnum.Token, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	tokens := make([]lexnum.Token, len(lines)) // indices are unique per goroutine
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i := range lines {
		i := i
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			tokens[i] = Scan(lines[i], start)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	tracer().Debugf("scanned %d lines with %d jobs", len(lines), jobs)
	return tokens, nil
}
