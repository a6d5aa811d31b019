package view

import (
	"github.com/dogmatiq/primitivekit/collection"
	"github.com/dogmatiq/primitivekit/derive"
)

// Iterator is a view of a [collection.Iterator].
//
// HasNext and Next always forward to the delegate. ForEachRemaining forwards
// under [Pure], and is derived from HasNext and Next otherwise. Remove forwards
// under [Pure] and [Shallow]. A [Minimal] iterator view can not remove
// elements.
type Iterator[T collection.Element] struct {
	next   collection.Iterator[T]
	policy Policy
}

var _ collection.Iterator[int32] = (*Iterator[int32])(nil)

// OfIterator returns a view of it that realizes its operations according to p.
func OfIterator[T collection.Element](it collection.Iterator[T], p Policy) *Iterator[T] {
	p.validate()

	return &Iterator[T]{
		next:   it,
		policy: p,
	}
}

// HasNext returns true if the delegate has more elements.
func (v *Iterator[T]) HasNext() bool {
	return v.next.HasNext()
}

// Next returns the delegate's next element.
func (v *Iterator[T]) Next() (T, error) {
	return v.next.Next()
}

// NextAny is the boxed form of Next.
func (v *Iterator[T]) NextAny() (any, error) {
	x, err := v.Next()
	if err != nil {
		return nil, err
	}
	return x, nil
}

// Remove removes the most recent element from the delegate's collection.
func (v *Iterator[T]) Remove() error {
	if v.policy == Minimal {
		return collection.UnsupportedMutationError{Op: "Iterator.Remove"}
	}
	return v.next.Remove()
}

// ForEachRemaining calls fn for each remaining element.
func (v *Iterator[T]) ForEachRemaining(fn func(T)) error {
	if v.policy == Pure {
		return v.next.ForEachRemaining(fn)
	}
	return derive.ForEachRemaining[T](v, fn)
}

// ForEachRemainingAny is the boxed form of ForEachRemaining.
func (v *Iterator[T]) ForEachRemainingAny(fn func(any)) error {
	if fn == nil {
		panic("consumer must not be nil")
	}
	return v.ForEachRemaining(func(x T) { fn(x) })
}
