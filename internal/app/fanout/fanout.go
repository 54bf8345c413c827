// Package fanout runs a function over a slice of items with bounded
// concurrency and returns the results in input order.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome for one item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn once per item with at most maxWorkers calls in flight and
// blocks until every item has a result. Results[i] always belongs to
// items[i], and one item failing never stops the others.
//
// Items not yet started when ctx is canceled get ctx.Err() and fn is not
// called for them; calls already running are left to observe ctx
// themselves. A maxWorkers below 1 is treated as 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))

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
