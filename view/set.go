package view

import (
	"github.com/dogmatiq/primitivekit/collection"
)

// Set is a view of a [collection.Set].
//
// Equal and Hash are computed by [collection.Equal] and [collection.Hash]
// using the view's own operations, not forwarded to the delegate. A view is
// not its delegate, and the delegate's notion of equality may not be
// symmetric with respect to the view.
type Set[T collection.Element] struct {
	*Collection[T]
	eq equality[T]
}

var _ collection.Set[int32] = (*Set[int32])(nil)

// An Option configures a set view.
type Option func(*options)

type options struct {
	forwardEquality bool
}

// ForwardEquality makes a [Pure] set view forward Equal and Hash to its
// delegate. It has no effect under any other policy.
//
// The caller is responsible for ensuring the delegate's equality is
// compatible with the view's, otherwise Equal may not be symmetric.
func ForwardEquality() Option {
	return func(o *options) {
		o.forwardEquality = true
	}
}

// OfSet returns a view of s that realizes its operations according to p.
func OfSet[T collection.Element](s collection.Set[T], p Policy, opts ...Option) *Set[T] {
	return &Set[T]{
		Collection: Of[T](s, p),
		eq:         newEquality(s, p, opts),
	}
}

// Equal returns true if other is a set with the same elements as the view.
func (v *Set[T]) Equal(other any) (bool, error) {
	return v.eq.Equal(v, other)
}

// Hash returns the hash code of the view.
func (v *Set[T]) Hash() (uint64, error) {
	return v.eq.Hash(v)
}

// equality implements Equal and Hash for set views.
type equality[T collection.Element] struct {
	next    collection.Set[T]
	forward bool
}

func newEquality[T collection.Element](
	s collection.Set[T],
	p Policy,
	opts []Option,
) equality[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return equality[T]{
		next:    s,
		forward: o.forwardEquality && p == Pure,
	}
}

func (e equality[T]) Equal(self collection.Set[T], other any) (bool, error) {
	if e.forward {
		return e.next.Equal(other)
	}
	return collection.Equal(self, other)
}

func (e equality[T]) Hash(self collection.Set[T]) (uint64, error) {
	if e.forward {
		return e.next.Hash()
	}
	return collection.Hash[T](self)
}
