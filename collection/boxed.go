package collection

// Boxed is a collection of boxed elements.
//
// It is the contract used when a caller passes a collection that is not known
// to hold unboxed elements of the required kind. Every [Collection] is also a
// Boxed collection.
type Boxed interface {
	// Len returns the number of elements in the collection.
	Len() int

	// ContainsAny returns true if v is an element of the collection.
	ContainsAny(v any) (bool, error)

	// RangeAny invokes fn for each element of the collection. If fn returns
	// false, ranging stops.
	RangeAny(fn func(v any) bool) error
}

// BoxedSet is a set of boxed elements.
type BoxedSet interface {
	Boxed

	// Equal returns true if other is a set with the same elements.
	Equal(other any) (bool, error)

	// Hash returns the hash code of the set.
	Hash() (uint64, error)
}

// Unbox returns v as an element of type T. ok is false if v is not a T.
func Unbox[T Element](v any) (_ T, ok bool) {
	x, ok := v.(T)
	return x, ok
}

// ContainsAny is the boxed form of [Collection.Contains]. A value that is not
// of type T is never an element.
func ContainsAny[T Element](
	c interface{ Contains(T) (bool, error) },
	v any,
) (bool, error) {
	x, ok := Unbox[T](v)
	if !ok {
		return false, nil
	}
	return c.Contains(x)
}

// RangeAny is the boxed form of [Collection.Range].
func RangeAny[T Element](
	c interface{ Range(RangeFunc[T]) error },
	fn func(any) bool,
) error {
	if fn == nil {
		panic("range function must not be nil")
	}

	return c.Range(func(v T) bool {
		return fn(v)
	})
}
