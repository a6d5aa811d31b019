package view

import "fmt"

// Policy determines how a view realizes its operations in terms of its
// delegate.
//
// Operations that do not expose elements (Len, IsEmpty, Kind) always forward
// to the delegate. The policy governs every other operation.
type Policy uint8

const (
	// Pure forwards each operation to the matching operation of the delegate.
	Pure Policy = iota

	// Shallow forwards only the primitive operations (Len, Iterator and Add).
	// Every other operation is derived from the view's own primitives, as if
	// the view were a new collection implementation. See package derive.
	Shallow

	// Minimal forwards only Len, IsEmpty and Kind. The view's Iterator draws
	// no elements, so every derived operation fails with a
	// [collection.ProtocolViolationError] as soon as it needs an element, and
	// Add fails with a [collection.UnsupportedMutationError].
	//
	// It is used to verify that derived operations depend on nothing but the
	// declared primitives.
	Minimal
)

func (p Policy) String() string {
	switch p {
	case Pure:
		return "pure"
	case Shallow:
		return "shallow"
	case Minimal:
		return "minimal"
	default:
		return fmt.Sprintf("policy(%d)", uint8(p))
	}
}

func (p Policy) validate() {
	if p > Minimal {
		panic(fmt.Sprintf("unknown forwarding policy: %s", p))
	}
}
