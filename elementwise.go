package fixvec

import "github.com/hupe1980/fixvec/internal/numeric"

// Map returns a new Vector whose element i is fn applied to element i of the
// receiver. fn must be pure; it is called once per element in order.
func (v *Vector[T]) Map(fn func(T) T) *Vector[T] {
	out := make([]T, len(v.elems))
	for i, e := range v.elems {
		out[i] = fn(e)
	}
	return &Vector[T]{elems: out}
}

// Neg returns a new Vector with every element negated.
//
// Negating the minimum value of a signed integer kind, or any nonzero value
// of an unsigned kind, is reported as *ErrOverflow.
func (v *Vector[T]) Neg() (*Vector[T], error) {
	out := make([]T, len(v.elems))
	for i, e := range v.elems {
		n, ok := numeric.Neg(e)
		if !ok {
			return nil, &ErrOverflow{Index: i, Value: e}
		}
		out[i] = n
	}
	return &Vector[T]{elems: out}, nil
}

// Scale returns a new Vector with every element multiplied by s.
// Integer multiplication wraps per Go semantics.
func (v *Vector[T]) Scale(s T) *Vector[T] {
	return v.Map(func(e T) T { return e * s })
}

// Clamp returns a new Vector with every element limited to [lo, hi].
// Callers must ensure lo <= hi.
func (v *Vector[T]) Clamp(lo, hi T) *Vector[T] {
	return v.Map(func(e T) T {
		if e < lo {
			return lo
		}
		if e > hi {
			return hi
		}
		return e
	})
}

// Add returns the element-wise sum of v and other.
// It returns *ErrDimensionMismatch if the dimensions differ.
// Integer addition wraps per Go semantics.
func (v *Vector[T]) Add(other *Vector[T]) (*Vector[T], error) {
	if err := v.sameDim(other); err != nil {
		return nil, err
	}
	out := make([]T, len(v.elems))
	for i, e := range v.elems {
		out[i] = e + other.elems[i]
	}
	return &Vector[T]{elems: out}, nil
}

// Sub returns the element-wise difference of v and other.
// It returns *ErrDimensionMismatch if the dimensions differ.
func (v *Vector[T]) Sub(other *Vector[T]) (*Vector[T], error) {
	if err := v.sameDim(other); err != nil {
		return nil, err
	}
	out := make([]T, len(v.elems))
	for i, e := range v.elems {
		out[i] = e - other.elems[i]
	}
	return &Vector[T]{elems: out}, nil
}

// Mul returns the element-wise (Hadamard) product of v and other.
// It returns *ErrDimensionMismatch if the dimensions differ.
func (v *Vector[T]) Mul(other *Vector[T]) (*Vector[T], error) {
	if err := v.sameDim(other); err != nil {
		return nil, err
	}
	out := make([]T, len(v.elems))
	for i, e := range v.elems {
		out[i] = e * other.elems[i]
	}
	return &Vector[T]{elems: out}, nil
}

func (v *Vector[T]) sameDim(other *Vector[T]) error {
	if len(v.elems) != len(other.elems) {
		return &ErrDimensionMismatch{Expected: len(v.elems), Actual: len(other.elems)}
	}
	return nil
}
