package view

import (
	"github.com/dogmatiq/primitivekit/collection"
)

// Collection is a view of a [collection.Collection].
//
// It holds nothing but a reference to its delegate and a [Policy]. It never
// copies the delegate's elements.
type Collection[T collection.Element] struct {
	next   collection.Collection[T]
	policy Policy
	impl   strategy[T]
}

var _ collection.Collection[int32] = (*Collection[int32])(nil)

// Of returns a view of c that realizes its operations according to p.
func Of[T collection.Element](c collection.Collection[T], p Policy) *Collection[T] {
	return OfSource[T](c, nil, p)
}

// OfSource returns a view of c whose derived operations are computed from the
// Len and Iterator operations of self instead of those of the view.
//
// It allows a type that embeds the view to override its primitives:
//
//	type evens struct{ *view.Collection[int32] }
//
//	e := &evens{}
//	e.Collection = view.OfSource(c, e, view.Shallow)
//
// Every operation derived under the [Shallow] and [Minimal] policies, such as
// Contains or RemoveIf, then observes the overridden Len and Iterator. self's
// Iterator must not call back into a derived operation of the view. Add is
// always forwarded to c. If self is nil, the view's own primitives are used.
func OfSource[T collection.Element](
	c collection.Collection[T],
	self collection.Source[T],
	p Policy,
) *Collection[T] {
	p.validate()

	v := &Collection[T]{
		next:   c,
		policy: p,
	}

	if self == nil {
		self = v
	}
	v.impl = newStrategy[T](p, self, c)

	return v
}

// Policy returns the view's forwarding policy.
func (v *Collection[T]) Policy() Policy {
	return v.policy
}

// Kind returns the kind of elements stored in the delegate.
func (v *Collection[T]) Kind() collection.Kind {
	return v.next.Kind()
}

// Len returns the number of elements in the delegate.
func (v *Collection[T]) Len() int {
	return v.next.Len()
}

// IsEmpty returns true if the delegate has no elements.
func (v *Collection[T]) IsEmpty() bool {
	return v.next.IsEmpty()
}

// Iterator returns an iterator over the delegate's elements.
//
// Under the [Minimal] policy the iterator fails as soon as an element is
// requested.
func (v *Collection[T]) Iterator() collection.Iterator[T] {
	if v.policy == Minimal {
		return unwired[T]{v.next}
	}
	return v.next.Iterator()
}

// Contains returns true if x is an element of the delegate.
func (v *Collection[T]) Contains(x T) (bool, error) {
	return v.impl.Contains(x)
}

// ContainsAny is the boxed form of Contains.
func (v *Collection[T]) ContainsAny(x any) (bool, error) {
	return collection.ContainsAny[T](v, x)
}

// ContainsAll returns true if every element of c is an element of the
// delegate.
func (v *Collection[T]) ContainsAll(c collection.Boxed) (bool, error) {
	return v.impl.ContainsAll(c)
}

// Range invokes fn for each element of the delegate.
func (v *Collection[T]) Range(fn collection.RangeFunc[T]) error {
	return v.impl.Range(fn)
}

// RangeAny is the boxed form of Range.
func (v *Collection[T]) RangeAny(fn func(any) bool) error {
	return collection.RangeAny[T](v, fn)
}

// ToSlice returns a new slice containing the delegate's elements.
func (v *Collection[T]) ToSlice() ([]T, error) {
	return v.impl.ToSlice()
}

// Cursor returns a cursor over the delegate's elements.
func (v *Collection[T]) Cursor() collection.Cursor[T] {
	return v.impl.Cursor()
}

// ParallelRange invokes fn for each element of the delegate using up to the
// given number of workers.
func (v *Collection[T]) ParallelRange(workers int, fn func(T) error) error {
	return v.impl.ParallelRange(workers, fn)
}

// Add adds x to the delegate.
func (v *Collection[T]) Add(x T) (bool, error) {
	return v.impl.Add(x)
}

// Remove removes a single instance of x from the delegate.
func (v *Collection[T]) Remove(x T) (bool, error) {
	return v.impl.Remove(x)
}

// AddAll adds every element of c to the delegate.
func (v *Collection[T]) AddAll(c collection.Boxed) (bool, error) {
	return v.impl.AddAll(c)
}

// RemoveAll removes every element of the delegate that is in c.
func (v *Collection[T]) RemoveAll(c collection.Boxed) (bool, error) {
	return v.impl.RemoveAll(c)
}

// RetainAll removes every element of the delegate that is not in c.
func (v *Collection[T]) RetainAll(c collection.Boxed) (bool, error) {
	return v.impl.RetainAll(c)
}

// RemoveIf removes every element of the delegate for which pred returns true.
func (v *Collection[T]) RemoveIf(pred func(T) bool) (bool, error) {
	return v.impl.RemoveIf(pred)
}

// Clear removes every element from the delegate.
func (v *Collection[T]) Clear() error {
	return v.impl.Clear()
}

// unwired is the iterator of a [Minimal] view. It reports whether the delegate
// has elements, but can not produce them.
type unwired[T collection.Element] struct {
	next collection.Collection[T]
}

func (it unwired[T]) HasNext() bool {
	return !it.next.IsEmpty()
}

func (it unwired[T]) Next() (T, error) {
	var zero T
	return zero, collection.ProtocolViolationError{Op: "Iterator.Next"}
}

func (it unwired[T]) Remove() error {
	return collection.ProtocolViolationError{Op: "Iterator.Remove"}
}

func (it unwired[T]) ForEachRemaining(fn func(T)) error {
	if fn == nil {
		panic("consumer must not be nil")
	}

	if it.HasNext() {
		return collection.ProtocolViolationError{Op: "Iterator.ForEachRemaining"}
	}

	return nil
}
