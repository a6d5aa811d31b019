package cursor

import (
	"context"
	"runtime"

	"github.com/dogmatiq/primitivekit/collection"
	"github.com/dogmatiq/primitivekit/internal/errorx"
	"golang.org/x/sync/errgroup"
)

// Parallel calls fn for each element of c using up to the given number of
// concurrent workers. If workers is not positive, GOMAXPROCS is used.
//
// The calling goroutine performs every split, handing each batch to a worker.
// Once c can no longer be split, the remainder of c is drained by a worker of
// its own. fn must be safe for concurrent use.
//
// It returns the first error returned by fn or by the cursors. Once an error
// has occurred no further batches are started.
func Parallel[T collection.Element](
	c collection.Cursor[T],
	workers int,
	fn func(T) error,
) error {
	if fn == nil {
		panic("function must not be nil")
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)

	for index := 0; ctx.Err() == nil; index++ {
		batch, err := c.TrySplit()
		if err != nil {
			g.Go(func() error { return err })
			break
		}

		if batch == nil {
			g.Go(func() (err error) {
				defer errorx.Wrap(&err, "remainder after batch %d", index)
				return drain(ctx, c, fn)
			})
			break
		}

		g.Go(func() (err error) {
			defer errorx.Wrap(&err, "batch %d", index)
			return drain(ctx, batch, fn)
		})
	}

	return g.Wait()
}

// drain calls fn for each remaining element of c until an error occurs or ctx
// is canceled.
func drain[T collection.Element](
	ctx context.Context,
	c collection.Cursor[T],
	fn func(T) error,
) error {
	var fnErr error

	for fnErr == nil && ctx.Err() == nil {
		ok, err := c.TryAdvance(func(v T) {
			fnErr = fn(v)
		})
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}

	return fnErr
}
