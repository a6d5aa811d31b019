package collection

// A RangeFunc is a function used to range over the elements of a
// [Collection].
//
// If it returns false, ranging stops.
type RangeFunc[T Element] func(v T) bool

// Source is the minimal set of primitives from which every other read-only
// operation on a collection can be derived.
type Source[T Element] interface {
	// Len returns the number of elements in the collection.
	Len() int

	// Iterator returns an iterator over the elements in the collection.
	Iterator() Iterator[T]
}

// Iterator iterates over the elements of a collection.
type Iterator[T Element] interface {
	// HasNext returns true if a call to Next would yield an element.
	HasNext() bool

	// Next returns the next element.
	//
	// It returns [ErrExhausted] if there are no more elements.
	Next() (T, error)

	// Remove removes the element most recently returned by Next from the
	// underlying collection.
	//
	// It returns [ErrNoCurrentElement] if Next has not yet been called, or if
	// Remove has already been called since the last call to Next. Iterators
	// that can not modify their collection return an
	// [UnsupportedMutationError].
	Remove() error

	// ForEachRemaining calls fn for each remaining element, in order.
	ForEachRemaining(fn func(T)) error
}

// Collection is an unordered collection of unboxed numeric values.
//
// Every Collection is also a [Boxed] collection. The boxed operations behave
// as if each element were boxed and unboxed individually.
type Collection[T Element] interface {
	Boxed
	Source[T]

	// Kind returns the kind of elements stored in the collection.
	Kind() Kind

	// IsEmpty returns true if the collection has no elements.
	IsEmpty() bool

	// Contains returns true if v is an element of the collection.
	Contains(v T) (bool, error)

	// ContainsAll returns true if every element of c is an element of the
	// collection.
	//
	// If c is a [Collection] of the same kind its elements are compared in
	// unboxed form.
	ContainsAll(c Boxed) (bool, error)

	// Range invokes fn for each element of the collection.
	Range(fn RangeFunc[T]) error

	// ToSlice returns a new slice containing every element of the collection.
	ToSlice() ([]T, error)

	// Cursor returns a [Cursor] that traverses the collection.
	Cursor() Cursor[T]

	// ParallelRange invokes fn for each element of the collection using up to
	// the given number of concurrent workers.
	ParallelRange(workers int, fn func(T) error) error

	// Add adds v to the collection. It returns true if the collection changed.
	Add(v T) (bool, error)

	// Remove removes a single instance of v from the collection. It returns
	// true if the collection changed.
	Remove(v T) (bool, error)

	// AddAll adds every element of c to the collection.
	AddAll(c Boxed) (bool, error)

	// RemoveAll removes every element that is also an element of c.
	RemoveAll(c Boxed) (bool, error)

	// RetainAll removes every element that is not an element of c.
	RetainAll(c Boxed) (bool, error)

	// RemoveIf removes every element for which pred returns true.
	RemoveIf(pred func(T) bool) (bool, error)

	// Clear removes all elements from the collection.
	Clear() error
}

// Set is a [Collection] in which no two elements are the [Same].
//
// Equality and hashing must follow [Equal] and [Hash], so that sets of any
// implementation (and boxed sets) compare consistently.
type Set[T Element] interface {
	Collection[T]

	// Equal returns true if other is a set with the same elements.
	Equal(other any) (bool, error)

	// Hash returns the hash code of the set.
	Hash() (uint64, error)
}

// Kinded is implemented by every primitive collection. It is the marker used to
// recognize primitive sets of any element type.
type Kinded interface {
	Kind() Kind
}

// Cursor traverses the elements of a collection, and can be split into
// independent cursors for parallel consumption.
type Cursor[T Element] interface {
	// TryAdvance calls fn with the next element, if any. It returns false if
	// there are no remaining elements.
	TryAdvance(fn func(T)) (bool, error)

	// TryAdvanceAny is the boxed form of TryAdvance.
	TryAdvanceAny(fn func(any)) (bool, error)

	// ForEachRemaining calls fn for each remaining element, in order.
	ForEachRemaining(fn func(T)) error

	// ForEachRemainingAny is the boxed form of ForEachRemaining.
	ForEachRemainingAny(fn func(any)) error

	// TrySplit removes a prefix of the remaining elements and returns a new
	// cursor over that prefix. It returns nil if the cursor can not be split.
	TrySplit() (Cursor[T], error)

	// EstimateSize returns an estimate of the number of remaining elements.
	EstimateSize() int

	// Characteristics returns the characteristics of the cursor.
	Characteristics() Characteristics

	// Comparator returns the ordering of a [Sorted] cursor. A nil function
	// means natural ordering. It returns [ErrNotSorted] if the cursor is not
	// sorted.
	Comparator() (func(a, b T) int, error)
}
