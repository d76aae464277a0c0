package dynamo

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ParallelFor executes fn over [0, n) split into at most workers chunks.
// Small ranges run inline on the calling goroutine.
func ParallelFor(ctx context.Context, n, minChunk, workers int, fn func(start, end int)) error {
	if workers <= 1 || n <= minChunk {
		fn(0, n)
		return ctx.Err()
	}

	if minChunk < 1 {
		minChunk = 1
	}
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		s, e := start, end
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(s, e)
			return nil
		})
	}

	return g.Wait()
}
