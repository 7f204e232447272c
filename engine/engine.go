package engine

import (
	"context"
	"runtime"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/hupe1980/kdgo"
	"github.com/hupe1980/kdgo/distance"
	"github.com/hupe1980/kdgo/selection"
)

// Options contains configuration options for the engine.
type Options struct {
	// Workers bounds the number of concurrent query goroutines.
	Workers int

	// RateLimit throttles query starts across all workers. rate.Inf
	// disables throttling.
	RateLimit rate.Limit

	// RateBurst is the limiter burst size when RateLimit is finite.
	RateBurst int

	// Logger receives batch completion events at debug level.
	Logger *kdgo.Logger
}

// DefaultOptions contains the default configuration options for the engine.
var DefaultOptions = Options{
	Workers:   0, // 0 = GOMAXPROCS
	RateLimit: rate.Inf,
	RateBurst: 1,
}

// Result is one delivered neighbour of a batch query.
type Result[F distance.Float, T any] struct {
	Item     T
	Distance F
}

// Engine runs query batches against a single tree. It is safe for
// concurrent use by multiple goroutines; per-worker scratch state is pooled
// internally.
type Engine[F distance.Float, T any] struct {
	tree     *kdgo.Tree[F, T]
	opts     Options
	limiter  *rate.Limiter
	logger   *kdgo.Logger
	heapPool sync.Pool
}

// New creates an engine over the given tree.
func New[F distance.Float, T any](tree *kdgo.Tree[F, T], optFns ...func(o *Options)) *Engine[F, T] {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.Logger == nil {
		opts.Logger = kdgo.NoopLogger()
	}

	e := &Engine[F, T]{
		tree:   tree,
		opts:   opts,
		logger: opts.Logger,
	}
	if opts.RateLimit != rate.Inf {
		burst := opts.RateBurst
		if burst < 1 {
			burst = 1
		}
		e.limiter = rate.NewLimiter(opts.RateLimit, burst)
	}
	e.heapPool.New = func() any {
		return selection.NewHeap[F, T](1)
	}

	return e
}

// NearestNeighbours runs a k-NN query for every entry of queries and returns
// one ascending-sorted result slice per query, index-aligned with the input.
// Queries that deliver nothing (see Tree.NearestNeighbours) yield a nil
// slice. opts.Sorted and opts.Scratch are managed by the engine; a non-nil
// opts.Filter must be safe for concurrent use.
//
// Cancellation applies between queries: an individual tree query always runs
// to completion once started.
func (e *Engine[F, T]) NearestNeighbours(ctx context.Context, queries [][]F, k int, distFn distance.Func[F], opts *kdgo.QueryOptions[F, T]) ([][]Result[F, T], error) {
	out := make([][]Result[F, T], len(queries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Workers)

	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			if err := e.wait(ctx); err != nil {
				return err
			}

			qo := kdgo.QueryOptions[F, T]{Sorted: true}
			if opts != nil {
				qo.Filter = opts.Filter
			}

			h := e.heapPool.Get().(*selection.Heap[F, T])
			defer e.heapPool.Put(h)
			qo.Scratch = h

			var res []Result[F, T]
			e.tree.NearestNeighbours(q, k, distFn, &qo, func(item T, dist F) {
				res = append(res, Result[F, T]{Item: item, Distance: dist})
			})
			out[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.logger.WithK(k).WithCount(len(queries)).Debug("batch knn completed")

	return out, nil
}

// FindNeighbours runs a radius query for every entry of queries and returns
// one result slice per query, index-aligned with the input, each in
// unspecified order. A non-nil opts.Filter must be safe for concurrent use.
func (e *Engine[F, T]) FindNeighbours(ctx context.Context, queries [][]F, radius F, distFn distance.Func[F], opts *kdgo.QueryOptions[F, T]) ([][]Result[F, T], error) {
	out := make([][]Result[F, T], len(queries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Workers)

	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			if err := e.wait(ctx); err != nil {
				return err
			}

			var qo *kdgo.QueryOptions[F, T]
			if opts != nil {
				qo = &kdgo.QueryOptions[F, T]{Filter: opts.Filter}
			}

			var res []Result[F, T]
			e.tree.FindNeighbours(q, radius, distFn, qo, func(item T, dist F) {
				res = append(res, Result[F, T]{Item: item, Distance: dist})
			})
			out[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.logger.WithCount(len(queries)).Debug("batch range query completed")

	return out, nil
}

func (e *Engine[F, T]) wait(ctx context.Context) error {
	if e.limiter != nil {
		return e.limiter.Wait(ctx)
	}
	return ctx.Err()
}

// BitmapFilter adapts a roaring bitmap of item IDs into a candidate filter
// for trees carrying uint32 items. A nil bitmap rejects everything.
func BitmapFilter(ids *roaring.Bitmap) func(uint32) bool {
	if ids == nil {
		return func(uint32) bool { return false }
	}
	return ids.Contains
}
