package memorylist

import (
	"slices"

	"github.com/dogmatiq/primitivekit/collection"
	"github.com/dogmatiq/primitivekit/cursor"
	"github.com/dogmatiq/primitivekit/derive"
	"github.com/dogmatiq/primitivekit/driver/memory/internal/clone"
)

// List is an array-backed [collection.Collection]. It may contain duplicate
// elements and iterates in insertion order.
//
// The zero value is an empty list. It is not safe for concurrent mutation.
type List[T collection.Element] struct {
	values []T
}

var _ collection.Collection[int32] = (*List[int32])(nil)

// New returns a list containing the given values.
func New[T collection.Element](values ...T) *List[T] {
	return &List[T]{values: slices.Clone(values)}
}

// Kind returns the kind of elements stored in the list.
func (l *List[T]) Kind() collection.Kind {
	return collection.KindOf[T]()
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return len(l.values)
}

// IsEmpty returns true if the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return len(l.values) == 0
}

// Contains returns true if v is an element of the list.
func (l *List[T]) Contains(v T) (bool, error) {
	return l.indexOf(v) >= 0, nil
}

// ContainsAny is the boxed form of Contains.
func (l *List[T]) ContainsAny(v any) (bool, error) {
	return collection.ContainsAny[T](l, v)
}

// ContainsAll returns true if every element of c is an element of the list.
func (l *List[T]) ContainsAll(c collection.Boxed) (bool, error) {
	return derive.ContainsAll[T](l, c)
}

// Iterator returns an iterator over the list, in order.
func (l *List[T]) Iterator() collection.Iterator[T] {
	return &iterator[T]{list: l, last: -1}
}

// Range invokes fn for each element of the list, in order.
func (l *List[T]) Range(fn collection.RangeFunc[T]) error {
	if fn == nil {
		panic("range function must not be nil")
	}

	for _, v := range l.values {
		if !fn(v) {
			break
		}
	}

	return nil
}

// RangeAny is the boxed form of Range.
func (l *List[T]) RangeAny(fn func(any) bool) error {
	return collection.RangeAny[T](l, fn)
}

// ToSlice returns a copy of the list's elements.
func (l *List[T]) ToSlice() ([]T, error) {
	if len(l.values) == 0 {
		return []T{}, nil
	}
	return clone.Clone(l.values), nil
}

// Cursor returns an ordered cursor over the list.
func (l *List[T]) Cursor() collection.Cursor[T] {
	return cursor.New[T](l, cursor.WithCharacteristics(collection.Ordered))
}

// ParallelRange invokes fn for each element using up to the given number of
// workers.
func (l *List[T]) ParallelRange(workers int, fn func(T) error) error {
	return cursor.Parallel(l.Cursor(), workers, fn)
}

// Add appends v to the list. It always returns true.
func (l *List[T]) Add(v T) (bool, error) {
	l.values = append(l.values, v)
	return true, nil
}

// AddAll appends each element of c to the list.
func (l *List[T]) AddAll(c collection.Boxed) (bool, error) {
	return derive.AddAll[T](l, c)
}

// Remove removes the first instance of v.
func (l *List[T]) Remove(v T) (bool, error) {
	i := l.indexOf(v)
	if i < 0 {
		return false, nil
	}

	l.values = slices.Delete(l.values, i, i+1)
	return true, nil
}

// RemoveIf removes each element for which pred returns true.
func (l *List[T]) RemoveIf(pred func(T) bool) (bool, error) {
	if pred == nil {
		panic("predicate must not be nil")
	}

	n := len(l.values)
	l.values = slices.DeleteFunc(l.values, pred)

	return len(l.values) < n, nil
}

// RemoveAll removes each element that is an element of c.
func (l *List[T]) RemoveAll(c collection.Boxed) (bool, error) {
	return derive.RemoveAll[T](l, c)
}

// RetainAll removes each element that is not an element of c.
func (l *List[T]) RetainAll(c collection.Boxed) (bool, error) {
	return derive.RetainAll[T](l, c)
}

// Clear removes every element.
func (l *List[T]) Clear() error {
	l.values = l.values[:0]
	return nil
}

func (l *List[T]) indexOf(v T) int {
	return slices.IndexFunc(l.values, func(x T) bool {
		return collection.Same(x, v)
	})
}

type iterator[T collection.Element] struct {
	list *List[T]
	next int
	last int
}

func (it *iterator[T]) HasNext() bool {
	return it.next < len(it.list.values)
}

func (it *iterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, collection.ErrExhausted
	}

	v := it.list.values[it.next]
	it.last = it.next
	it.next++

	return v, nil
}

func (it *iterator[T]) Remove() error {
	if it.last < 0 {
		return collection.ErrNoCurrentElement
	}

	it.list.values = slices.Delete(it.list.values, it.last, it.last+1)
	it.next = it.last
	it.last = -1

	return nil
}

func (it *iterator[T]) ForEachRemaining(fn func(T)) error {
	return derive.ForEachRemaining[T](it, fn)
}
