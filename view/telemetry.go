package view

import (
	"context"

	"github.com/dogmatiq/primitivekit/collection"
	"github.com/dogmatiq/primitivekit/internal/telemetry"
	"github.com/dogmatiq/primitivekit/internal/x/xtelemetry"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// WithTelemetry returns a collection that forwards each operation to c and
// records traces, metrics and logs about it.
//
// Len, IsEmpty, Kind, Iterator and Cursor are forwarded without
// instrumentation.
func WithTelemetry[T collection.Element](
	c collection.Collection[T],
	p trace.TracerProvider,
	m metric.MeterProvider,
	l log.LoggerProvider,
) collection.Collection[T] {
	provider := telemetry.Provider{
		TracerProvider: p,
		MeterProvider:  m,
		LoggerProvider: l,
	}

	telem := provider.Recorder(
		"github.com/dogmatiq/primitivekit/view",
		telemetry.Type("collection.type", c),
		telemetry.Stringer("collection.kind", c.Kind()),
		telemetry.String("collection.handle", xtelemetry.HandleID()),
	)

	return &instrumented[T]{
		Next:      c,
		Telemetry: telem,
		ElementIO: telem.Counter("element.io", "{element}", "The cumulative number of elements that have been read or written."),
		Length:    telem.Histogram("length", "{element}", "The number of elements in the collection after each mutation."),
	}
}

// instrumented is a decorator that adds instrumentation to a
// [collection.Collection].
type instrumented[T collection.Element] struct {
	Next      collection.Collection[T]
	Telemetry *telemetry.Recorder

	ElementIO telemetry.Instrument[int64]
	Length    telemetry.Instrument[int64]
}

func (c *instrumented[T]) Kind() collection.Kind {
	return c.Next.Kind()
}

func (c *instrumented[T]) Len() int {
	return c.Next.Len()
}

func (c *instrumented[T]) IsEmpty() bool {
	return c.Next.IsEmpty()
}

func (c *instrumented[T]) Iterator() collection.Iterator[T] {
	return c.Next.Iterator()
}

func (c *instrumented[T]) Cursor() collection.Cursor[T] {
	return c.Next.Cursor()
}

func (c *instrumented[T]) Contains(v T) (bool, error) {
	return observe(c, "contains", func() (bool, error) {
		return c.Next.Contains(v)
	}, element(v))
}

func (c *instrumented[T]) ContainsAny(v any) (bool, error) {
	return observe(c, "contains_any", func() (bool, error) {
		return c.Next.ContainsAny(v)
	})
}

func (c *instrumented[T]) ContainsAll(other collection.Boxed) (bool, error) {
	return observe(c, "contains_all", func() (bool, error) {
		return c.Next.ContainsAll(other)
	}, telemetry.Int("other_length", other.Len()))
}

func (c *instrumented[T]) Range(fn collection.RangeFunc[T]) error {
	if fn == nil {
		panic("range function must not be nil")
	}

	_, err := observe(c, "range", func() (int, error) {
		n := 0
		err := c.Next.Range(func(v T) bool {
			n++
			return fn(v)
		})
		return n, err
	})
	return err
}

func (c *instrumented[T]) RangeAny(fn func(any) bool) error {
	if fn == nil {
		panic("range function must not be nil")
	}

	_, err := observe(c, "range_any", func() (int, error) {
		n := 0
		err := c.Next.RangeAny(func(v any) bool {
			n++
			return fn(v)
		})
		return n, err
	})
	return err
}

func (c *instrumented[T]) ToSlice() ([]T, error) {
	return observe(c, "to_slice", c.Next.ToSlice)
}

func (c *instrumented[T]) ParallelRange(workers int, fn func(T) error) error {
	_, err := observe(c, "parallel_range", func() (struct{}, error) {
		return struct{}{}, c.Next.ParallelRange(workers, fn)
	}, telemetry.Int("workers", workers))
	return err
}

func (c *instrumented[T]) Add(v T) (bool, error) {
	return mutate(c, "add", func() (bool, error) {
		return c.Next.Add(v)
	}, element(v))
}

func (c *instrumented[T]) Remove(v T) (bool, error) {
	return mutate(c, "remove", func() (bool, error) {
		return c.Next.Remove(v)
	}, element(v))
}

func (c *instrumented[T]) AddAll(other collection.Boxed) (bool, error) {
	return mutate(c, "add_all", func() (bool, error) {
		return c.Next.AddAll(other)
	}, telemetry.Int("other_length", other.Len()))
}

func (c *instrumented[T]) RemoveAll(other collection.Boxed) (bool, error) {
	return mutate(c, "remove_all", func() (bool, error) {
		return c.Next.RemoveAll(other)
	}, telemetry.Int("other_length", other.Len()))
}

func (c *instrumented[T]) RetainAll(other collection.Boxed) (bool, error) {
	return mutate(c, "retain_all", func() (bool, error) {
		return c.Next.RetainAll(other)
	}, telemetry.Int("other_length", other.Len()))
}

func (c *instrumented[T]) RemoveIf(pred func(T) bool) (bool, error) {
	return mutate(c, "remove_if", func() (bool, error) {
		return c.Next.RemoveIf(pred)
	})
}

func (c *instrumented[T]) Clear() error {
	_, err := mutate(c, "clear", func() (bool, error) {
		return true, c.Next.Clear()
	})
	return err
}

// observe records a span, metrics and a log record for a single read
// operation.
func observe[T collection.Element, R any](
	c *instrumented[T],
	op string,
	fn func() (R, error),
	attrs ...telemetry.Attr,
) (R, error) {
	event := "collection." + op

	ctx, span := c.Telemetry.StartSpan(context.Background(), event, attrs...)
	defer span.End()

	result, err := fn()
	if err != nil {
		c.Telemetry.Error(ctx, event+".error", err)
		return result, err
	}

	switch r := any(result).(type) {
	case bool:
		span.SetAttributes(telemetry.Bool("result", r))
	case int:
		c.ElementIO(ctx, int64(r), telemetry.String("direction", "read"))
	case []T:
		c.ElementIO(ctx, int64(len(r)), telemetry.String("direction", "read"))
	}

	c.Telemetry.Info(ctx, event+".ok", op+" completed")

	return result, nil
}

// mutate is [observe] for operations that may modify the collection.
func mutate[T collection.Element](
	c *instrumented[T],
	op string,
	fn func() (bool, error),
	attrs ...telemetry.Attr,
) (bool, error) {
	event := "collection." + op

	ctx, span := c.Telemetry.StartSpan(context.Background(), event, attrs...)
	defer span.End()

	changed, err := fn()
	if err != nil {
		c.Telemetry.Error(ctx, event+".error", err)
		return false, err
	}

	span.SetAttributes(telemetry.Bool("changed", changed))
	c.Length(ctx, int64(c.Next.Len()))

	if changed {
		c.ElementIO(ctx, 1, telemetry.String("direction", "write"))
		c.Telemetry.Info(ctx, event+".ok", "collection was modified")
	} else {
		c.Telemetry.Info(ctx, event+".ok", "collection was not modified")
	}

	return changed, nil
}

func element[T collection.Element](v T) telemetry.Attr {
	switch v := any(v).(type) {
	case int32:
		return telemetry.Int("element", v)
	case int64:
		return telemetry.Int("element", v)
	case float64:
		return telemetry.Float("element", v)
	default:
		return telemetry.Attr{}
	}
}
