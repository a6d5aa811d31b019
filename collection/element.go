package collection

import (
	"fmt"
	"hash/fnv"
	"math"
)

// Element is the set of unboxed numeric types that may be stored in a
// [Collection].
type Element interface {
	int32 | int64 | float64
}

// Kind identifies the element type of a primitive collection.
type Kind uint8

const (
	// KindInt32 is the kind of collections of int32 values.
	KindInt32 Kind = iota + 1

	// KindInt64 is the kind of collections of int64 values.
	KindInt64

	// KindFloat64 is the kind of collections of float64 values.
	KindFloat64
)

// KindOf returns the kind of collections with elements of type T.
func KindOf[T Element]() Kind {
	var zero T
	switch any(zero).(type) {
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	default:
		return KindFloat64
	}
}

// IsKnown returns true if k is one of the declared element kinds.
func (k Kind) IsKnown() bool {
	return k >= KindInt32 && k <= KindFloat64
}

func (k Kind) String() string {
	switch k {
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Same returns true if a and b are the same element.
//
// Integers are compared by value. Floats are compared by their bit pattern, so
// NaN is the same as NaN, and 0.0 is not the same as -0.0.
func Same[T Element](a, b T) bool {
	switch a := any(a).(type) {
	case float64:
		return math.Float64bits(a) == math.Float64bits(any(b).(float64))
	default:
		return any(a) == any(b)
	}
}

// HashElement returns the hash code of a single element.
//
// The hash of a set is the sum of the hashes of its elements, so this function
// is also used for boxed elements of the same kind; see [HashAny].
func HashElement[T Element](v T) uint64 {
	switch v := any(v).(type) {
	case int32:
		return uint64(uint32(v))
	case int64:
		return uint64(v) ^ (uint64(v) >> 32)
	case float64:
		b := math.Float64bits(v)
		return b ^ (b >> 32)
	default:
		panic("unknown element type")
	}
}

// HashAny returns the hash code of a boxed element. Values of a primitive
// element type hash exactly as they do in unboxed form.
func HashAny(v any) uint64 {
	switch v := v.(type) {
	case int32:
		return HashElement(v)
	case int64:
		return HashElement(v)
	case float64:
		return HashElement(v)
	default:
		h := fnv.New64a()
		fmt.Fprintf(h, "%T %#v", v, v)
		return h.Sum64()
	}
}
