package collection

import "reflect"

// Equal returns true if other is a set containing the same elements as s.
//
// other may be a primitive [Set] of any kind, or a [BoxedSet]. Two empty sets
// are always equal, regardless of kind. Non-empty sets of different kinds are
// never equal. Any other value is never equal to s.
//
// It panics with an [InvariantError] if other declares an unknown [Kind].
//
// Equal only uses s's Len, Contains and ContainsAll operations, so it may be
// used to implement [Set.Equal] without depending on the equality of some
// other set.
func Equal[T Element](s Set[T], other any) (bool, error) {
	if identical(s, other) {
		return true, nil
	}

	switch o := other.(type) {
	case Kinded:
		n, isSet := setLen(o)
		if !isSet || n != s.Len() {
			return false, nil
		}

		if n == 0 {
			return true, nil
		}

		if o.Kind() != KindOf[T]() {
			return false, nil
		}

		return s.ContainsAll(o.(Set[T]))

	case BoxedSet:
		if o.Len() != s.Len() {
			return false, nil
		}
		return containsEvery(o, func(v any) (bool, error) {
			return ContainsAny[T](s, v)
		})

	default:
		return false, nil
	}
}

// EqualBoxed returns true if other is a set containing the same elements as
// the boxed set b.
//
// It is the counterpart of [Equal] for [BoxedSet] implementations. When other
// is a primitive set the comparison is performed by [Equal] so that the result
// is symmetric.
func EqualBoxed(b BoxedSet, other any) (bool, error) {
	if identical(b, other) {
		return true, nil
	}

	switch o := other.(type) {
	case Kinded:
		switch k := o.Kind(); k {
		case KindInt32:
			return equalToBoxed[int32](o, b)
		case KindInt64:
			return equalToBoxed[int64](o, b)
		case KindFloat64:
			return equalToBoxed[float64](o, b)
		default:
			panic(InvariantError{Kind: k, Value: o})
		}

	case BoxedSet:
		if o.Len() != b.Len() {
			return false, nil
		}
		return containsEvery(o, b.ContainsAny)

	default:
		return false, nil
	}
}

// Hash returns the hash code of a set of primitive elements, which is the sum
// of the hashes of its elements.
//
// The hash of an empty set is zero for every kind, as is the hash of an empty
// [BoxedSet].
func Hash[T Element](s Source[T]) (uint64, error) {
	var h uint64

	it := s.Iterator()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return 0, err
		}
		h += HashElement(v)
	}

	return h, nil
}

// HashBoxed returns the hash code of a set of boxed elements. It is equal to
// [Hash] for a primitive set with the same elements.
func HashBoxed(b Boxed) (uint64, error) {
	var h uint64

	err := b.RangeAny(func(v any) bool {
		h += HashAny(v)
		return true
	})

	return h, err
}

func equalToBoxed[T Element](o Kinded, b BoxedSet) (bool, error) {
	if s, ok := o.(Set[T]); ok {
		return Equal(s, b)
	}
	if _, ok := o.(Collection[T]); ok {
		return false, nil
	}
	panic(InvariantError{Kind: o.Kind(), Value: o})
}

// setLen returns the size of o if it is a primitive set.
func setLen(o Kinded) (n int, isSet bool) {
	switch k := o.Kind(); k {
	case KindInt32:
		return setLenOf[int32](o)
	case KindInt64:
		return setLenOf[int64](o)
	case KindFloat64:
		return setLenOf[float64](o)
	default:
		panic(InvariantError{Kind: k, Value: o})
	}
}

func setLenOf[T Element](o Kinded) (int, bool) {
	if s, ok := o.(Set[T]); ok {
		return s.Len(), true
	}
	if _, ok := o.(Collection[T]); ok {
		return 0, false
	}
	panic(InvariantError{Kind: o.Kind(), Value: o})
}

// containsEvery returns true if has returns true for every element of b.
func containsEvery(b Boxed, has func(any) (bool, error)) (bool, error) {
	result := true
	var err error

	if rerr := b.RangeAny(func(v any) bool {
		ok, e := has(v)
		if e != nil {
			err = e
			return false
		}
		if !ok {
			result = false
			return false
		}
		return true
	}); rerr != nil {
		return false, rerr
	}

	if err != nil {
		return false, err
	}

	return result, nil
}

// identical returns true if a and b are the same value, without panicking when
// the dynamic type is not comparable.
func identical(a, b any) bool {
	ta := reflect.TypeOf(a)
	if ta == nil || ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
