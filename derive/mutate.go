package derive

import "github.com/dogmatiq/primitivekit/collection"

// Add returns the result of a collection that does not support adding
// elements.
func Add[T collection.Element](T) (bool, error) {
	return false, collection.UnsupportedMutationError{Op: "Add"}
}

// Remove removes the first instance of v from s using its iterator.
func Remove[T collection.Element](s collection.Source[T], v T) (bool, error) {
	it := s.Iterator()

	for it.HasNext() {
		x, err := it.Next()
		if err != nil {
			return false, err
		}

		if collection.Same(x, v) {
			if err := it.Remove(); err != nil {
				return false, err
			}
			return true, nil
		}
	}

	return false, nil
}

// RemoveIf removes each element of s for which pred returns true.
func RemoveIf[T collection.Element](s collection.Source[T], pred func(T) bool) (bool, error) {
	if pred == nil {
		panic("predicate must not be nil")
	}

	return removeWhere(s, func(v T) (bool, error) {
		return pred(v), nil
	})
}

// RemoveAll removes each element of s that is an element of c.
func RemoveAll[T collection.Element](s collection.Source[T], c collection.Boxed) (bool, error) {
	has := membership[T](c)
	return removeWhere(s, has)
}

// RetainAll removes each element of s that is not an element of c.
func RetainAll[T collection.Element](s collection.Source[T], c collection.Boxed) (bool, error) {
	has := membership[T](c)
	return removeWhere(s, func(v T) (bool, error) {
		ok, err := has(v)
		return !ok, err
	})
}

// Clear removes every element of s using its iterator.
func Clear[T collection.Element](s collection.Source[T]) error {
	_, err := removeWhere(s, func(T) (bool, error) {
		return true, nil
	})
	return err
}

// AddAll adds each element of c to dst.
//
// If c is a [collection.Collection] of the same kind its elements are visited
// using its iterator, without boxing. Otherwise each boxed element must be a
// T, or a [collection.KindMismatchError] is returned.
func AddAll[T collection.Element](dst Adder[T], c collection.Boxed) (bool, error) {
	changed := false

	if p, ok := c.(collection.Collection[T]); ok {
		it := p.Iterator()
		for it.HasNext() {
			v, err := it.Next()
			if err != nil {
				return changed, err
			}

			ok, err := dst.Add(v)
			if err != nil {
				return changed, err
			}
			changed = changed || ok
		}
		return changed, nil
	}

	var err error
	if rerr := c.RangeAny(func(b any) bool {
		v, ok := collection.Unbox[T](b)
		if !ok {
			err = collection.KindMismatchError{Want: collection.KindOf[T](), Value: b}
			return false
		}

		ok, err = dst.Add(v)
		changed = changed || ok
		return err == nil
	}); rerr != nil {
		return changed, rerr
	}

	return changed, err
}

func removeWhere[T collection.Element](
	s collection.Source[T],
	pred func(T) (bool, error),
) (bool, error) {
	changed := false
	it := s.Iterator()

	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return changed, err
		}

		ok, err := pred(v)
		if err != nil {
			return changed, err
		}

		if ok {
			if err := it.Remove(); err != nil {
				return changed, err
			}
			changed = true
		}
	}

	return changed, nil
}

// membership returns a function that tests membership of c, preferring the
// unboxed form when c is a collection of the same kind.
func membership[T collection.Element](c collection.Boxed) func(T) (bool, error) {
	if p, ok := c.(collection.Collection[T]); ok {
		return p.Contains
	}

	return func(v T) (bool, error) {
		return c.ContainsAny(v)
	}
}

// every returns true if fn returns true for every element of c.
func every[T collection.Element](c collection.Boxed, fn func(T) (bool, error)) (bool, error) {
	if p, ok := c.(collection.Collection[T]); ok {
		it := p.Iterator()
		for it.HasNext() {
			v, err := it.Next()
			if err != nil {
				return false, err
			}

			ok, err := fn(v)
			if !ok || err != nil {
				return false, err
			}
		}
		return true, nil
	}

	result := true
	var err error

	if rerr := c.RangeAny(func(b any) bool {
		v, ok := collection.Unbox[T](b)
		if !ok {
			result = false
			return false
		}

		ok, err = fn(v)
		if !ok || err != nil {
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
