// Package memoryboxed provides an in-memory set of boxed values.
//
// It is a generic-element collaborator for primitive collections. It is used
// wherever a collection of arbitrary values must interoperate with a
// primitive collection.
package memoryboxed

import (
	"math"
	"reflect"
	"slices"

	"github.com/dogmatiq/primitivekit/collection"
)

// Set is a [collection.BoxedSet] of arbitrary comparable values.
//
// Float64 values are compared by their bit pattern, consistent with
// [collection.Same]. A value that is not comparable, such as a slice, is never
// equal to any value, including itself. It is never deduplicated and never
// found by ContainsAny.
type Set struct {
	values []any
}

var _ collection.BoxedSet = (*Set)(nil)

// New returns a set containing the given values.
func New(values ...any) *Set {
	s := &Set{}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Len returns the number of elements in the set.
func (s *Set) Len() int {
	return len(s.values)
}

// Add adds v to the set. It returns false if v was already present.
func (s *Set) Add(v any) bool {
	if s.indexOf(v) >= 0 {
		return false
	}
	s.values = append(s.values, v)
	return true
}

// Remove removes v from the set. It returns false if v was not present.
func (s *Set) Remove(v any) bool {
	i := s.indexOf(v)
	if i < 0 {
		return false
	}
	s.values = slices.Delete(s.values, i, i+1)
	return true
}

// ContainsAny returns true if v is an element of the set.
func (s *Set) ContainsAny(v any) (bool, error) {
	return s.indexOf(v) >= 0, nil
}

// RangeAny invokes fn for each element in insertion order.
func (s *Set) RangeAny(fn func(any) bool) error {
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

// Equal returns true if other is a set, boxed or primitive, with the same
// elements.
func (s *Set) Equal(other any) (bool, error) {
	return collection.EqualBoxed(s, other)
}

// Hash returns the hash code of the set.
func (s *Set) Hash() (uint64, error) {
	return collection.HashBoxed(s)
}

func (s *Set) indexOf(v any) int {
	return slices.IndexFunc(s.values, func(x any) bool {
		return same(x, v)
	})
}

func same(a, b any) bool {
	if a, ok := a.(float64); ok {
		b, ok := b.(float64)
		return ok && math.Float64bits(a) == math.Float64bits(b)
	}
	if a == nil || b == nil {
		return a == b
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if !reflect.ValueOf(a).Comparable() || !reflect.ValueOf(b).Comparable() {
		return false
	}
	return a == b
}
