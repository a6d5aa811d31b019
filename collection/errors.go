package collection

import (
	"errors"
	"fmt"
)

var (
	// ErrExhausted is returned by [Iterator.Next] when there are no more
	// elements.
	ErrExhausted = ElementStateError{"iterator is exhausted"}

	// ErrNoCurrentElement is returned by [Iterator.Remove] when there is no
	// element to remove.
	ErrNoCurrentElement = ElementStateError{"no element to remove, Next() has not been called since the last removal"}

	// ErrNotSorted is returned by [Cursor.Comparator] when the cursor is not
	// [Sorted].
	ErrNotSorted = errors.New("cursor is not sorted")
)

// IsUnsupportedMutation returns true if err is caused by an
// [UnsupportedMutationError].
func IsUnsupportedMutation(err error) bool {
	return errors.As(err, &UnsupportedMutationError{})
}

// IsProtocolViolation returns true if err is caused by a
// [ProtocolViolationError].
func IsProtocolViolation(err error) bool {
	return errors.As(err, &ProtocolViolationError{})
}

// IsElementState returns true if err is caused by an [ElementStateError].
func IsElementState(err error) bool {
	return errors.As(err, &ElementStateError{})
}

// UnsupportedMutationError is returned by a mutating operation on a collection
// or iterator that can never be modified through that operation.
type UnsupportedMutationError struct {
	Op string
}

func (e UnsupportedMutationError) Error() string {
	return fmt.Sprintf("%s is not supported, the collection can not be modified", e.Op)
}

// ProtocolViolationError is returned when an operation is derived from a
// primitive that the collection has not implemented.
//
// Unlike [UnsupportedMutationError], it indicates an incomplete adaptor
// rather than a deliberate restriction.
type ProtocolViolationError struct {
	Op string
}

func (e ProtocolViolationError) Error() string {
	return fmt.Sprintf("%s depends on a primitive that is not implemented by this instance", e.Op)
}

// ElementStateError is returned by an iterator that is not in a valid state
// for the requested operation.
type ElementStateError struct {
	Reason string
}

func (e ElementStateError) Error() string {
	return e.Reason
}

// IsKindMismatch returns true if err is caused by a [KindMismatchError].
func IsKindMismatch(err error) bool {
	return errors.As(err, &KindMismatchError{})
}

// KindMismatchError is returned when a boxed value can not be stored in a
// collection because it is not of the collection's element type.
type KindMismatchError struct {
	Want  Kind
	Value any
}

func (e KindMismatchError) Error() string {
	return fmt.Sprintf("can not use %#v (%T) as an element of kind %s", e.Value, e.Value, e.Want)
}

// InvariantError is the panic value used when a primitive collection does not
// declare one of the known element kinds.
type InvariantError struct {
	Kind  Kind
	Value any
}

func (e InvariantError) Error() string {
	return fmt.Sprintf(
		"%T declares unknown element kind %s, every primitive collection must declare a known kind",
		e.Value,
		e.Kind,
	)
}
