package clone

import (
	"github.com/dogmatiq/dyad"
)

// Clone returns a deep copy of v.
func Clone[T any](v T) T {
	return dyad.Clone(v)
}
