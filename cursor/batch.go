package cursor

import (
	"github.com/dogmatiq/primitivekit/collection"
)

const (
	// BatchUnit is the growth increment of the batches produced by
	// [Batch.TrySplit]. The n'th split produces a batch of up to n * BatchUnit
	// elements.
	BatchUnit = 1 << 10

	// MaxBatch is the largest batch produced by [Batch.TrySplit].
	MaxBatch = 1 << 25
)

// Batch is a [collection.Cursor] over any [collection.Source], including those
// that do not support random access.
//
// It binds to the source lazily. The first call to TrySplit, TryAdvance,
// ForEachRemaining or EstimateSize queries the source's length and obtains an
// iterator. Both are retained for the lifetime of the cursor.
//
// It is not safe for concurrent use. Cursors returned by TrySplit are
// independent of their parent and may be used on other goroutines.
type Batch[T collection.Element] struct {
	source collection.Source[T]
	chars  collection.Characteristics
	unit   int
	max    int

	it     collection.Iterator[T]
	est    int
	splits int
}

var _ collection.Cursor[int32] = (*Batch[int32])(nil)

// An Option configures a [Batch] cursor.
type Option func(*options)

type options struct {
	chars collection.Characteristics
	unit  int
	max   int
}

// WithCharacteristics sets the characteristics reported by the cursor.
func WithCharacteristics(c collection.Characteristics) Option {
	return func(o *options) {
		o.chars = c
	}
}

// WithBatchUnit sets the growth increment of split batches. It panics if n is
// not positive.
func WithBatchUnit(n int) Option {
	if n <= 0 {
		panic("batch unit must be positive")
	}

	return func(o *options) {
		o.unit = n
	}
}

// WithMaxBatch sets the largest batch produced by a split. It panics if n is
// not positive.
func WithMaxBatch(n int) Option {
	if n <= 0 {
		panic("maximum batch size must be positive")
	}

	return func(o *options) {
		o.max = n
	}
}

// New returns a cursor that traverses the elements of s.
func New[T collection.Element](s collection.Source[T], opts ...Option) *Batch[T] {
	o := options{
		unit: BatchUnit,
		max:  MaxBatch,
	}

	for _, opt := range opts {
		opt(&o)
	}

	return &Batch[T]{
		source: s,
		chars:  o.chars,
		unit:   o.unit,
		max:    o.max,
	}
}

// bind queries the source's length and obtains its iterator, if it has not
// already done so.
func (c *Batch[T]) bind() {
	if c.it == nil {
		c.est = c.source.Len()
		c.it = c.source.Iterator()
	}
}

// TryAdvance calls fn with the next element, if any.
func (c *Batch[T]) TryAdvance(fn func(T)) (bool, error) {
	if fn == nil {
		panic("consumer must not be nil")
	}

	c.bind()

	if !c.it.HasNext() {
		return false, nil
	}

	v, err := c.it.Next()
	if err != nil {
		return false, err
	}

	fn(v)

	return true, nil
}

// TryAdvanceAny is the boxed form of TryAdvance.
func (c *Batch[T]) TryAdvanceAny(fn func(any)) (bool, error) {
	if fn == nil {
		panic("consumer must not be nil")
	}
	return c.TryAdvance(func(v T) { fn(v) })
}

// ForEachRemaining calls fn for each remaining element, in encounter order.
func (c *Batch[T]) ForEachRemaining(fn func(T)) error {
	if fn == nil {
		panic("consumer must not be nil")
	}

	c.bind()

	return c.it.ForEachRemaining(fn)
}

// ForEachRemainingAny is the boxed form of ForEachRemaining.
func (c *Batch[T]) ForEachRemainingAny(fn func(any)) error {
	if fn == nil {
		panic("consumer must not be nil")
	}
	return c.ForEachRemaining(func(v T) { fn(v) })
}

// TrySplit moves a batch of the remaining elements into a new cursor.
//
// Batches grow linearly. The n'th split claims up to n * [BatchUnit] elements,
// but never more than [MaxBatch]. It returns nil once every element counted at
// bind time has been claimed.
func (c *Batch[T]) TrySplit() (collection.Cursor[T], error) {
	c.bind()

	if c.est <= 0 || !c.it.HasNext() {
		return nil, nil
	}

	n := c.unit * (c.splits + 1)
	if n > c.max || n <= 0 {
		n = c.max
	}
	if n > c.est {
		n = c.est
	}

	values := make([]T, 0, n)
	for len(values) < n && c.it.HasNext() {
		v, err := c.it.Next()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	c.splits++

	if len(values) < n {
		c.est = 0
	} else {
		c.est -= len(values)
	}

	return OfSlice(values, c.chars), nil
}

// EstimateSize returns the number of elements in the source at bind time, less
// those claimed by TrySplit.
func (c *Batch[T]) EstimateSize() int {
	c.bind()
	return c.est
}

// Characteristics returns the characteristics the cursor was created with.
func (c *Batch[T]) Characteristics() collection.Characteristics {
	return c.chars
}

// Comparator returns nil if the cursor is [collection.Sorted], meaning natural
// order.
func (c *Batch[T]) Comparator() (func(a, b T) int, error) {
	return comparator[T](c.chars)
}

func comparator[T collection.Element](c collection.Characteristics) (func(a, b T) int, error) {
	if c.Has(collection.Sorted) {
		return nil, nil
	}
	return nil, collection.ErrNotSorted
}
