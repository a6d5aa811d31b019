package errorx

import (
	"fmt"
)

// Wrap adds additional context to an error.
//
// The original error remains available to [errors.Is] and [errors.As].
func Wrap(err *error, format string, args ...any) {
	if err == nil {
		panic("err must not be nil")
	}

	if *err == nil {
		return
	}

	*err = fmt.Errorf(format+": %w", append(args, *err)...)
}
