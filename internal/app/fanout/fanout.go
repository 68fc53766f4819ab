// Package fanout runs independent reads concurrently with a bound on the
// number in flight, keeping each result next to its input.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item with at most maxWorkers calls in flight and
// returns the results in input order. A failing item does not cancel the
// others. Items that have not started when ctx ends record ctx.Err()
// without calling fn.
//
// A maxWorkers below 1 is treated as 1. An empty items returns an empty
// non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(max(maxWorkers, 1))

	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result[R]{Err: err}
				return nil
			}
			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// Values returns the successful values of results, substituting fallback for
// each failed item.
func Values[R any](results []Result[R], fallback R) []R {
	out := make([]R, len(results))
	for i, r := range results {
		if r.Err != nil {
			out[i] = fallback
			continue
		}
		out[i] = r.Value
	}
	return out
}
