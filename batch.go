package fixvec

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

type batchOptions struct {
	concurrency int
	logger      *Logger
}

// BatchOption configures batch transform behavior.
type BatchOption func(*batchOptions)

// WithConcurrency limits the number of vectors transformed in parallel.
// Values below 1 fall back to GOMAXPROCS.
func WithConcurrency(n int) BatchOption {
	return func(o *batchOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithLogger configures the logger used by batch transforms.
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) BatchOption {
	return func(o *batchOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// AbsAll applies Abs to every vector in vecs concurrently and returns the
// results in the same order. It stops at the first error or context
// cancellation; on error the partial results are discarded.
func AbsAll[T Number](ctx context.Context, vecs []*Vector[T], optFns ...BatchOption) ([]*Vector[T], error) {
	return transformAll(ctx, vecs, func(v *Vector[T]) (*Vector[T], error) {
		return v.Abs()
	}, optFns)
}

// MapAll applies fn element-wise to every vector in vecs concurrently and
// returns the results in the same order. fn must be safe for concurrent use.
func MapAll[T Number](ctx context.Context, vecs []*Vector[T], fn func(T) T, optFns ...BatchOption) ([]*Vector[T], error) {
	return transformAll(ctx, vecs, func(v *Vector[T]) (*Vector[T], error) {
		return v.Map(fn), nil
	}, optFns)
}

func transformAll[T Number](ctx context.Context, vecs []*Vector[T], fn func(*Vector[T]) (*Vector[T], error), optFns []BatchOption) ([]*Vector[T], error) {
	opts := batchOptions{
		concurrency: runtime.GOMAXPROCS(0),
		logger:      NoopLogger(),
	}

	for _, optFn := range optFns {
		optFn(&opts)
	}

	out := make([]*Vector[T], len(vecs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.concurrency)

	for i, v := range vecs {
		i, v := i, v
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := fn(v)
			if err != nil {
				return fmt.Errorf("vector %d: %w", i, err)
			}
			out[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	opts.logger.Debug("batch transform complete", "vectors", len(vecs), "concurrency", opts.concurrency)

	return out, nil
}
