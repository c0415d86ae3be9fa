// Package parallel runs a fixed group of independent lookups and joins
// once all of them are done.
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Op is one member of a group. It stores its result through a closure.
type Op func(ctx context.Context) error

// Run starts every op concurrently and waits for the group. The first
// failure cancels the context handed to the other ops and is the error
// returned. Results written by the ops are only meaningful when Run
// returns nil.
func Run(ctx context.Context, ops ...Op) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, op := range ops {
		g.Go(func() error {
			return op(gctx)
		})
	}
	return g.Wait()
}

// Into adapts a typed lookup into an Op that stores its result in dst.
func Into[T any](dst *T, fn func(ctx context.Context) (T, error)) Op {
	return func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}
