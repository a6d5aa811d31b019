// Package derive computes compound collection operations from the primitive
// operations of a [collection.Source].
//
// These are the operations a collection would have if it implemented nothing
// but Len and Iterator (and Add, for [AddAll]). They never call any other
// method of the source, which makes them suitable both as defaults for new
// implementations and as the realization of views that must not depend on
// their delegate's compound operations.
package derive

import (
	"github.com/dogmatiq/primitivekit/collection"
	"github.com/dogmatiq/primitivekit/cursor"
)

// Adder is a collection that supports adding individual elements.
type Adder[T collection.Element] interface {
	Add(v T) (bool, error)
}

// IsEmpty returns true if s has no elements.
func IsEmpty[T collection.Element](s collection.Source[T]) bool {
	return s.Len() == 0
}

// Contains returns true if v is an element of s.
//
// It stops iterating as soon as v is found.
func Contains[T collection.Element](s collection.Source[T], v T) (bool, error) {
	it := s.Iterator()

	for it.HasNext() {
		x, err := it.Next()
		if err != nil {
			return false, err
		}

		if collection.Same(x, v) {
			return true, nil
		}
	}

	return false, nil
}

// ContainsAll returns true if every element of c is an element of s.
//
// If c is a [collection.Collection] of the same kind its elements are visited
// using its iterator, without boxing. Otherwise they are visited in boxed form
// and any value that is not of type T is treated as absent.
func ContainsAll[T collection.Element](s collection.Source[T], c collection.Boxed) (bool, error) {
	return every(c, func(v T) (bool, error) {
		return Contains(s, v)
	})
}

// Range invokes fn for each element of s until it returns false.
func Range[T collection.Element](s collection.Source[T], fn collection.RangeFunc[T]) error {
	if fn == nil {
		panic("range function must not be nil")
	}

	it := s.Iterator()

	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return err
		}

		if !fn(v) {
			return nil
		}
	}

	return nil
}

// ToSlice returns a new slice containing every element of s.
func ToSlice[T collection.Element](s collection.Source[T]) ([]T, error) {
	values := make([]T, 0, s.Len())

	err := Range(s, func(v T) bool {
		values = append(values, v)
		return true
	})

	return values, err
}

// Cursor returns a lazily bound [cursor.Batch] over s.
func Cursor[T collection.Element](s collection.Source[T]) collection.Cursor[T] {
	return cursor.New(s)
}

// ParallelRange invokes fn for each element of s using up to the given number
// of workers. See [cursor.Parallel].
func ParallelRange[T collection.Element](
	s collection.Source[T],
	workers int,
	fn func(T) error,
) error {
	return cursor.Parallel(Cursor(s), workers, fn)
}

// ForEachRemaining calls fn for each element remaining in it.
func ForEachRemaining[T collection.Element](it collection.Iterator[T], fn func(T)) error {
	if fn == nil {
		panic("consumer must not be nil")
	}

	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return err
		}
		fn(v)
	}

	return nil
}
