package fixvec

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hupe1980/fixvec/internal/numeric"
)

// Number constrains the element types a Vector may hold: the integer and
// floating-point kinds. It is re-exported here so callers never need to
// import internal packages.
type Number = numeric.Number

// Vector is an owned, fixed-dimension, homogeneous numeric container.
//
// The dimension is established at construction and never changes. Every
// operation is pure: transforms return a new Vector and never mutate the
// receiver, so a Vector is safe to share across concurrent readers.
type Vector[T Number] struct {
	elems []T
}

// New creates a Vector of the given dimension from elems.
//
// It returns *ErrInvalidDimension if dim is not positive and
// *ErrDimensionMismatch if len(elems) != dim. The input slice is copied;
// the caller keeps ownership of elems.
func New[T Number](dim int, elems []T) (*Vector[T], error) {
	if dim < 1 {
		return nil, &ErrInvalidDimension{Dimension: dim}
	}
	if len(elems) != dim {
		return nil, &ErrDimensionMismatch{Expected: dim, Actual: len(elems)}
	}
	return &Vector[T]{elems: slices.Clone(elems)}, nil
}

// Of creates a Vector whose dimension is the number of arguments.
func Of[T Number](elems ...T) (*Vector[T], error) {
	return New(len(elems), elems)
}

// Dim returns the fixed dimension of the Vector.
func (v *Vector[T]) Dim() int {
	return len(v.elems)
}

// At returns the element at index i.
//
// It returns *ErrIndexOutOfRange for any i outside [0, Dim).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.elems) {
		var zero T
		return zero, &ErrIndexOutOfRange{Index: i, Dimension: len(v.elems)}
	}
	return v.elems[i], nil
}

// Values returns a copy of the elements in order. Mutating the returned slice
// does not affect the Vector.
func (v *Vector[T]) Values() []T {
	return slices.Clone(v.elems)
}

// Clone returns an independent copy of the Vector.
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{elems: slices.Clone(v.elems)}
}

// Equal reports whether v and other have the same dimension and equal
// elements at every position. NaN elements compare unequal, per Go's
// floating-point semantics.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	if other == nil {
		return false
	}
	return slices.Equal(v.elems, other.elems)
}

// String returns a compact representation, e.g. "Vec3(10, -10, 5)".
func (v *Vector[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Vec%d(", len(v.elems))
	for i, e := range v.elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", e)
	}
	sb.WriteString(")")
	return sb.String()
}

// Abs returns a new Vector whose element i is the absolute value of element i
// of the receiver, preserving order and position.
//
// For unsigned element types Abs is the identity. For floating-point types
// the sign bit is cleared, so Abs(-0) is +0 and NaN passes through. For
// signed integer types the minimum representable value cannot be negated;
// Abs reports it as *ErrOverflow instead of wrapping.
func (v *Vector[T]) Abs() (*Vector[T], error) {
	out := make([]T, len(v.elems))
	for i, e := range v.elems {
		a, ok := numeric.Abs(e)
		if !ok {
			return nil, &ErrOverflow{Index: i, Value: e}
		}
		out[i] = a
	}
	return &Vector[T]{elems: out}, nil
}
