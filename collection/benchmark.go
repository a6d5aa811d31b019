package collection

import (
	"context"
	"testing"

	"github.com/dogmatiq/primitivekit/internal/x/xtesting"
)

// RunBenchmarks runs benchmarks against a [Collection] implementation.
//
// newCollection must return a new collection containing the given values.
func RunBenchmarks[T Element](
	b *testing.B,
	newCollection func(values ...T) Collection[T],
) {
	const size = 10_000

	values := make([]T, size)
	for i := range values {
		values[i] = T(i)
	}

	b.Run("Contains", func(b *testing.B) {
		b.Run("present element", func(b *testing.B) {
			var c Collection[T]

			xtesting.Benchmark(
				b,
				// SETUP
				func(context.Context) error {
					c = newCollection(values...)
					return nil
				},
				// BEFORE EACH
				nil,
				// BENCHMARKED CODE
				func(context.Context) error {
					_, err := c.Contains(T(size / 2))
					return err
				},
				// AFTER EACH
				nil,
			)
		})

		b.Run("absent element", func(b *testing.B) {
			var c Collection[T]

			xtesting.Benchmark(
				b,
				// SETUP
				func(context.Context) error {
					c = newCollection(values...)
					return nil
				},
				// BEFORE EACH
				nil,
				// BENCHMARKED CODE
				func(context.Context) error {
					_, err := c.Contains(T(-1))
					return err
				},
				// AFTER EACH
				nil,
			)
		})
	})

	b.Run("ContainsAll", func(b *testing.B) {
		var c, other Collection[T]

		xtesting.Benchmark(
			b,
			// SETUP
			func(context.Context) error {
				c = newCollection(values...)
				other = newCollection(values[:100]...)
				return nil
			},
			// BEFORE EACH
			nil,
			// BENCHMARKED CODE
			func(context.Context) error {
				_, err := c.ContainsAll(other)
				return err
			},
			// AFTER EACH
			nil,
		)
	})

	b.Run("Range", func(b *testing.B) {
		var c Collection[T]

		xtesting.Benchmark(
			b,
			// SETUP
			func(context.Context) error {
				c = newCollection(values...)
				return nil
			},
			// BEFORE EACH
			nil,
			// BENCHMARKED CODE
			func(context.Context) error {
				return c.Range(func(T) bool { return true })
			},
			// AFTER EACH
			nil,
		)
	})

	b.Run("ParallelRange", func(b *testing.B) {
		var c Collection[T]

		xtesting.Benchmark(
			b,
			// SETUP
			func(context.Context) error {
				c = newCollection(values...)
				return nil
			},
			// BEFORE EACH
			nil,
			// BENCHMARKED CODE
			func(context.Context) error {
				return c.ParallelRange(0, func(T) error { return nil })
			},
			// AFTER EACH
			nil,
		)
	})

	b.Run("Add", func(b *testing.B) {
		var c Collection[T]

		xtesting.Benchmark(
			b,
			// SETUP
			nil,
			// BEFORE EACH
			func(context.Context) error {
				c = newCollection(values...)
				return nil
			},
			// BENCHMARKED CODE
			func(context.Context) error {
				_, err := c.Add(T(size))
				return err
			},
			// AFTER EACH
			nil,
		)
	})

	b.Run("Remove", func(b *testing.B) {
		var c Collection[T]

		xtesting.Benchmark(
			b,
			// SETUP
			nil,
			// BEFORE EACH
			func(context.Context) error {
				c = newCollection(values...)
				return nil
			},
			// BENCHMARKED CODE
			func(context.Context) error {
				_, err := c.Remove(T(size / 2))
				return err
			},
			// AFTER EACH
			nil,
		)
	})
}
