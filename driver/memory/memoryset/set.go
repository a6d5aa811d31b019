package memoryset

import (
	"math"

	"github.com/dogmatiq/primitivekit/collection"
	"github.com/dogmatiq/primitivekit/cursor"
	"github.com/dogmatiq/primitivekit/derive"
	"github.com/dogmatiq/primitivekit/driver/memory/internal/clone"
)

// Set is a hash-based [collection.Set].
//
// Elements are identified by [collection.Same]. Iteration order is insertion
// order until an element is removed.
//
// The zero value is an empty set. It is not safe for concurrent mutation.
type Set[T collection.Element] struct {
	index  map[uint64]int
	values []T
}

var _ collection.Set[int32] = (*Set[int32])(nil)

// New returns a set containing the given values.
func New[T collection.Element](values ...T) *Set[T] {
	s := &Set[T]{}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Kind returns the kind of elements stored in the set.
func (s *Set[T]) Kind() collection.Kind {
	return collection.KindOf[T]()
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int {
	return len(s.values)
}

// IsEmpty returns true if the set has no elements.
func (s *Set[T]) IsEmpty() bool {
	return len(s.values) == 0
}

// Contains returns true if v is an element of the set.
func (s *Set[T]) Contains(v T) (bool, error) {
	_, ok := s.index[keyOf(v)]
	return ok, nil
}

// ContainsAny is the boxed form of Contains.
func (s *Set[T]) ContainsAny(v any) (bool, error) {
	return collection.ContainsAny[T](s, v)
}

// ContainsAll returns true if every element of c is an element of the set.
func (s *Set[T]) ContainsAll(c collection.Boxed) (bool, error) {
	if p, ok := c.(collection.Collection[T]); ok {
		var missing bool
		if err := p.Range(func(v T) bool {
			_, ok := s.index[keyOf(v)]
			missing = !ok
			return ok
		}); err != nil {
			return false, err
		}
		return !missing, nil
	}

	return derive.ContainsAll[T](s, c)
}

// Iterator returns an iterator over the set.
func (s *Set[T]) Iterator() collection.Iterator[T] {
	return &iterator[T]{set: s, last: -1}
}

// Range invokes fn for each element of the set.
func (s *Set[T]) Range(fn collection.RangeFunc[T]) error {
	if fn == nil {
		panic("range function must not be nil")
	}

	for _, v := range s.values {
		if !fn(v) {
			break
		}
	}

	return nil
}

// RangeAny is the boxed form of Range.
func (s *Set[T]) RangeAny(fn func(any) bool) error {
	return collection.RangeAny[T](s, fn)
}

// ToSlice returns a copy of the set's elements.
func (s *Set[T]) ToSlice() ([]T, error) {
	if len(s.values) == 0 {
		return []T{}, nil
	}
	return clone.Clone(s.values), nil
}

// Cursor returns a distinct cursor over the set.
func (s *Set[T]) Cursor() collection.Cursor[T] {
	return cursor.New[T](s, cursor.WithCharacteristics(collection.Distinct))
}

// ParallelRange invokes fn for each element using up to the given number of
// workers.
func (s *Set[T]) ParallelRange(workers int, fn func(T) error) error {
	return cursor.Parallel(s.Cursor(), workers, fn)
}

// Add adds v to the set. It returns false if v was already present.
func (s *Set[T]) Add(v T) (bool, error) {
	k := keyOf(v)

	if _, ok := s.index[k]; ok {
		return false, nil
	}

	if s.index == nil {
		s.index = map[uint64]int{}
	}

	s.index[k] = len(s.values)
	s.values = append(s.values, v)

	return true, nil
}

// AddAll adds each element of c to the set.
func (s *Set[T]) AddAll(c collection.Boxed) (bool, error) {
	return derive.AddAll[T](s, c)
}

// Remove removes v from the set. It returns false if v was not present.
func (s *Set[T]) Remove(v T) (bool, error) {
	i, ok := s.index[keyOf(v)]
	if !ok {
		return false, nil
	}

	s.removeAt(i)
	return true, nil
}

// RemoveIf removes each element for which pred returns true.
func (s *Set[T]) RemoveIf(pred func(T) bool) (bool, error) {
	return derive.RemoveIf[T](s, pred)
}

// RemoveAll removes each element that is an element of c.
func (s *Set[T]) RemoveAll(c collection.Boxed) (bool, error) {
	return derive.RemoveAll[T](s, c)
}

// RetainAll removes each element that is not an element of c.
func (s *Set[T]) RetainAll(c collection.Boxed) (bool, error) {
	return derive.RetainAll[T](s, c)
}

// Clear removes every element.
func (s *Set[T]) Clear() error {
	clear(s.index)
	s.values = s.values[:0]
	return nil
}

// Equal returns true if other is a set with the same elements.
func (s *Set[T]) Equal(other any) (bool, error) {
	return collection.Equal[T](s, other)
}

// Hash returns the hash code of the set.
func (s *Set[T]) Hash() (uint64, error) {
	return collection.Hash[T](s)
}

// removeAt removes the element at index i by moving the last element into its
// place.
func (s *Set[T]) removeAt(i int) {
	last := len(s.values) - 1

	delete(s.index, keyOf(s.values[i]))

	if i != last {
		moved := s.values[last]
		s.values[i] = moved
		s.index[keyOf(moved)] = i
	}

	s.values = s.values[:last]
}

func keyOf[T collection.Element](v T) uint64 {
	switch v := any(v).(type) {
	case int32:
		return uint64(v)
	case int64:
		return uint64(v)
	case float64:
		return math.Float64bits(v)
	default:
		panic("unknown element type")
	}
}

type iterator[T collection.Element] struct {
	set  *Set[T]
	next int
	last int
}

func (it *iterator[T]) HasNext() bool {
	return it.next < len(it.set.values)
}

func (it *iterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, collection.ErrExhausted
	}

	v := it.set.values[it.next]
	it.last = it.next
	it.next++

	return v, nil
}

// Remove removes the most recent element. The last element of the set is
// moved into its place, so it is visited next.
func (it *iterator[T]) Remove() error {
	if it.last < 0 {
		return collection.ErrNoCurrentElement
	}

	it.set.removeAt(it.last)
	it.next = it.last
	it.last = -1

	return nil
}

func (it *iterator[T]) ForEachRemaining(fn func(T)) error {
	return derive.ForEachRemaining[T](it, fn)
}
