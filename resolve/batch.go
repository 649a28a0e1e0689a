package resolve

import (
	"context"

	"github.com/fwojciec/yweather"
	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency is the number of passes ResolveCoordinates runs at once.
const DefaultBatchConcurrency = 4

// ResolveCoordinates resolves every coordinate and blocks until all passes
// have finished. Results are returned in input order; a pass that is still
// running when ctx is done reports ECANCELED.
func (r *Resolver) ResolveCoordinates(ctx context.Context, coords []yweather.Coordinate, unit yweather.Unit, concurrency int) []Result {
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}

	results := make([]Result, len(coords))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, coord := range coords {
		g.Go(func() error {
			sink := NewChanSink()
			r.ResolveCoordinate(gctx, coord, unit, sink)

			res, err := sink.Wait(gctx)
			if err != nil {
				res = Result{Err: canceled("batch", err)}
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	return results
}
