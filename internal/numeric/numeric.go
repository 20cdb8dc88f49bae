package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number constrains vector element types to the numeric kinds.
type Number interface {
	constraints.Integer | constraints.Float
}

// Abs returns the absolute value of v.
//
// The second result is false when the magnitude is not representable, which
// happens only for the minimum value of a signed integer kind. Floating-point
// values go through the sign-bit clearing path, so Abs(-0) is +0 and NaN is
// passed through unchanged.
func Abs[T Number](v T) (T, bool) {
	switch f := any(v).(type) {
	case float32:
		return any(float32(math.Abs(float64(f)))).(T), true
	case float64:
		return any(math.Abs(f)).(T), true
	}
	if v >= 0 {
		return v, true
	}
	n := -v
	if n < 0 {
		// Signed minimum: negation wrapped back to itself.
		return v, false
	}
	return n, true
}

// Neg returns -v.
//
// The second result is false when the negation is not representable: the
// minimum value of a signed integer kind, or any nonzero value of an unsigned
// kind. Floating-point negation always succeeds.
func Neg[T Number](v T) (T, bool) {
	switch f := any(v).(type) {
	case float32:
		return any(-f).(T), true
	case float64:
		return any(-f).(T), true
	}
	if v == 0 {
		return v, true
	}
	n := -v
	// An in-range integer negation always flips the sign. If it does not,
	// the result wrapped (signed minimum, or unsigned nonzero).
	if (v > 0) == (n > 0) {
		return v, false
	}
	return n, true
}
