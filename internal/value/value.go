// Package value provides physically typed quantities with unit-safe arithmetic.
//
// Every quantity stores its magnitude in the base unit of its dimension
// (m, m², N, Pa). Operators are methods whose result type follows
// dimensional analysis, e.g. Length.Mul returns an Area and Force.DivArea
// returns a Stress.
package value

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidQuantity is returned when a magnitude violates the invariant of
// its quantity type (e.g. a negative Area).
var ErrInvalidQuantity = errors.New("invalid quantity")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuantity, fmt.Sprintf(format, args...))
}

// relTol absorbs the rounding left over from unit conversions, so 1000 mm
// and 1 m compare equal.
const relTol = 1e-12

func compare(a, b float64) int {
	if a == b || math.Abs(a-b) <= relTol*math.Max(math.Abs(a), math.Abs(b)) {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
