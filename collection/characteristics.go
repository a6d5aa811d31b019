package collection

import "strings"

// Characteristics is a set of flags describing a [Cursor] and its elements.
type Characteristics uint16

const (
	// Ordered indicates that the elements have a defined encounter order.
	Ordered Characteristics = 1 << iota

	// Distinct indicates that no two elements are the [Same].
	Distinct

	// Sorted indicates that the encounter order follows a sort order.
	Sorted

	// Sized indicates that EstimateSize is exact.
	Sized

	// NonNull is always true of unboxed elements. It is reported for parity
	// with boxed cursors.
	NonNull

	// Immutable indicates that the source can not be modified.
	Immutable

	// Subsized indicates that every cursor produced by TrySplit is Sized.
	Subsized
)

var characteristicNames = []string{
	"ordered",
	"distinct",
	"sorted",
	"sized",
	"non-null",
	"immutable",
	"subsized",
}

// Has returns true if c includes every flag in f.
func (c Characteristics) Has(f Characteristics) bool {
	return c&f == f
}

func (c Characteristics) String() string {
	var names []string
	for i, n := range characteristicNames {
		if c&(1<<i) != 0 {
			names = append(names, n)
		}
	}
	return "{" + strings.Join(names, ", ") + "}"
}
