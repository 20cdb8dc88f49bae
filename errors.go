package fixvec

import "fmt"

// ErrInvalidDimension indicates a non-positive requested dimension.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

// ErrDimensionMismatch indicates a dimensionality mismatch, either between a
// constructor's declared dimension and the supplied elements, or between the
// two operands of a binary transform.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrIndexOutOfRange indicates an element access outside [0, Dimension).
type ErrIndexOutOfRange struct {
	Index     int
	Dimension int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: %d with dimension %d", e.Index, e.Dimension)
}

// ErrOverflow indicates an element whose transform result is not representable
// in the element type, e.g. negating the minimum value of a signed integer kind.
type ErrOverflow struct {
	Index int
	Value any
}

func (e *ErrOverflow) Error() string {
	return fmt.Sprintf("overflow at index %d: %v has no representable result", e.Index, e.Value)
}
