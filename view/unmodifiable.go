package view

import (
	"github.com/dogmatiq/primitivekit/collection"
)

// ReadOnlyCollection is a [Collection] view that can not modify its delegate.
//
// Every mutating operation returns a [collection.UnsupportedMutationError],
// regardless of the policy, without calling the delegate. Iterators returned
// by the view can not remove elements.
type ReadOnlyCollection[T collection.Element] struct {
	*Collection[T]
}

var _ collection.Collection[int32] = (*ReadOnlyCollection[int32])(nil)

// Unmodifiable returns a read-only view of c that realizes its operations
// according to p.
//
// Derived operations iterate using the view's masked iterator.
func Unmodifiable[T collection.Element](c collection.Collection[T], p Policy) *ReadOnlyCollection[T] {
	v := &ReadOnlyCollection[T]{}
	v.Collection = OfSource[T](c, v, p)
	return v
}

// Iterator returns an iterator over the delegate's elements that can not
// remove elements.
func (v *ReadOnlyCollection[T]) Iterator() collection.Iterator[T] {
	return UnmodifiableIterator(v.Collection.Iterator(), v.policy)
}

// Add returns an [collection.UnsupportedMutationError].
func (v *ReadOnlyCollection[T]) Add(T) (bool, error) {
	return false, collection.UnsupportedMutationError{Op: "Add"}
}

// Remove returns an [collection.UnsupportedMutationError].
func (v *ReadOnlyCollection[T]) Remove(T) (bool, error) {
	return false, collection.UnsupportedMutationError{Op: "Remove"}
}

// AddAll returns an [collection.UnsupportedMutationError].
func (v *ReadOnlyCollection[T]) AddAll(collection.Boxed) (bool, error) {
	return false, collection.UnsupportedMutationError{Op: "AddAll"}
}

// RemoveAll returns an [collection.UnsupportedMutationError].
func (v *ReadOnlyCollection[T]) RemoveAll(collection.Boxed) (bool, error) {
	return false, collection.UnsupportedMutationError{Op: "RemoveAll"}
}

// RetainAll returns an [collection.UnsupportedMutationError].
func (v *ReadOnlyCollection[T]) RetainAll(collection.Boxed) (bool, error) {
	return false, collection.UnsupportedMutationError{Op: "RetainAll"}
}

// RemoveIf returns an [collection.UnsupportedMutationError].
func (v *ReadOnlyCollection[T]) RemoveIf(func(T) bool) (bool, error) {
	return false, collection.UnsupportedMutationError{Op: "RemoveIf"}
}

// Clear returns an [collection.UnsupportedMutationError].
func (v *ReadOnlyCollection[T]) Clear() error {
	return collection.UnsupportedMutationError{Op: "Clear"}
}

// ReadOnlySet is a [Set] view that can not modify its delegate.
type ReadOnlySet[T collection.Element] struct {
	*ReadOnlyCollection[T]
	eq equality[T]
}

var _ collection.Set[int32] = (*ReadOnlySet[int32])(nil)

// UnmodifiableSet returns a read-only view of s that realizes its operations
// according to p.
func UnmodifiableSet[T collection.Element](s collection.Set[T], p Policy, opts ...Option) *ReadOnlySet[T] {
	return &ReadOnlySet[T]{
		ReadOnlyCollection: Unmodifiable[T](s, p),
		eq:                 newEquality(s, p, opts),
	}
}

// Equal returns true if other is a set with the same elements as the view.
func (v *ReadOnlySet[T]) Equal(other any) (bool, error) {
	return v.eq.Equal(v, other)
}

// Hash returns the hash code of the view.
func (v *ReadOnlySet[T]) Hash() (uint64, error) {
	return v.eq.Hash(v)
}

// ReadOnlyIterator is an [Iterator] view that can not remove elements.
type ReadOnlyIterator[T collection.Element] struct {
	*Iterator[T]
}

var _ collection.Iterator[int32] = (*ReadOnlyIterator[int32])(nil)

// UnmodifiableIterator returns a view of it that can not remove elements.
func UnmodifiableIterator[T collection.Element](it collection.Iterator[T], p Policy) *ReadOnlyIterator[T] {
	return &ReadOnlyIterator[T]{OfIterator(it, p)}
}

// Remove returns an [collection.UnsupportedMutationError].
func (v *ReadOnlyIterator[T]) Remove() error {
	return collection.UnsupportedMutationError{Op: "Iterator.Remove"}
}
