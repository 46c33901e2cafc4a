package poker

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// minChunk keeps tiny batches from being split across goroutines.
const minChunk = 64

// WinnersParallel returns the same result as Winners, reducing contiguous
// chunks of the batch on up to workers goroutines and merging the partial
// winner sets. workers <= 0 uses GOMAXPROCS. When several hands are malformed
// the error names the earliest one, as Winners would.
func WinnersParallel(ctx context.Context, hands []string, workers int) ([]string, error) {
	partials, err := mapChunks(ctx, len(hands), workers, func(lo, hi int) (winnerSet, error) {
		return scan(hands[lo:hi], lo)
	})
	if err != nil {
		return nil, err
	}

	var total winnerSet
	for _, p := range partials {
		total.merge(p)
	}
	return pick(hands, total.indices), nil
}

// EvaluateParallel scores every hand, spreading contiguous chunks over up to
// workers goroutines. Scores are returned in input order; the error, if any,
// is a *HandError for the earliest malformed hand.
func EvaluateParallel(ctx context.Context, hands []string, workers int) ([]Score, error) {
	scores := make([]Score, len(hands))
	_, err := mapChunks(ctx, len(hands), workers, func(lo, hi int) (struct{}, error) {
		for i := lo; i < hi; i++ {
			s, err := Evaluate(hands[i])
			if err != nil {
				return struct{}{}, &HandError{Index: i, Text: hands[i], Err: err}
			}
			scores[i] = s
		}
		return struct{}{}, nil
	})
	if err != nil {
		return nil, err
	}
	return scores, nil
}

// mapChunks splits [0, n) into contiguous chunks, runs fn on each and returns
// the results in chunk order. Every chunk runs to completion, so the error
// returned is always the one from the lowest chunk.
func mapChunks[T any](ctx context.Context, n, workers int, fn func(lo, hi int) (T, error)) ([]T, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	size := max((n+workers-1)/workers, minChunk)
	chunks := (n + size - 1) / size
	if chunks <= 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := fn(0, n)
		if err != nil {
			return nil, err
		}
		return []T{v}, nil
	}

	results := make([]T, chunks)
	errs := make([]error, chunks)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for c := range chunks {
		lo := c * size
		hi := min(lo+size, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[c], errs[c] = fn(lo, hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
