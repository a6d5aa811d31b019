package cursor

import "github.com/dogmatiq/primitivekit/collection"

// Slice is a [collection.Cursor] over the elements of a slice.
//
// It is the type of the batches produced by [Batch.TrySplit]. It splits by
// halving its remaining elements.
type Slice[T collection.Element] struct {
	values []T
	chars  collection.Characteristics
}

var _ collection.Cursor[int32] = (*Slice[int32])(nil)

// OfSlice returns a cursor over the given values. The slice is not copied.
func OfSlice[T collection.Element](values []T, c collection.Characteristics) *Slice[T] {
	return &Slice[T]{
		values: values,
		chars:  c | collection.Sized | collection.Subsized,
	}
}

// TryAdvance calls fn with the next element, if any.
func (c *Slice[T]) TryAdvance(fn func(T)) (bool, error) {
	if fn == nil {
		panic("consumer must not be nil")
	}

	if len(c.values) == 0 {
		return false, nil
	}

	v := c.values[0]
	c.values = c.values[1:]
	fn(v)

	return true, nil
}

// TryAdvanceAny is the boxed form of TryAdvance.
func (c *Slice[T]) TryAdvanceAny(fn func(any)) (bool, error) {
	if fn == nil {
		panic("consumer must not be nil")
	}
	return c.TryAdvance(func(v T) { fn(v) })
}

// ForEachRemaining calls fn for each remaining element, in order.
func (c *Slice[T]) ForEachRemaining(fn func(T)) error {
	if fn == nil {
		panic("consumer must not be nil")
	}

	values := c.values
	c.values = nil

	for _, v := range values {
		fn(v)
	}

	return nil
}

// ForEachRemainingAny is the boxed form of ForEachRemaining.
func (c *Slice[T]) ForEachRemainingAny(fn func(any)) error {
	if fn == nil {
		panic("consumer must not be nil")
	}
	return c.ForEachRemaining(func(v T) { fn(v) })
}

// TrySplit moves the first half of the remaining elements into a new cursor.
func (c *Slice[T]) TrySplit() (collection.Cursor[T], error) {
	n := len(c.values) / 2
	if n == 0 {
		return nil, nil
	}

	prefix := c.values[:n:n]
	c.values = c.values[n:]

	return &Slice[T]{prefix, c.chars}, nil
}

// EstimateSize returns the exact number of remaining elements.
func (c *Slice[T]) EstimateSize() int {
	return len(c.values)
}

// Characteristics returns the characteristics of the cursor.
func (c *Slice[T]) Characteristics() collection.Characteristics {
	return c.chars
}

// Comparator returns nil if the cursor is [collection.Sorted].
func (c *Slice[T]) Comparator() (func(a, b T) int, error) {
	return comparator[T](c.chars)
}
