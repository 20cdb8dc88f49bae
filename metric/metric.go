package metric

import (
	"golang.org/x/exp/constraints"

	"github.com/hupe1980/fixvec"
	"github.com/hupe1980/fixvec/internal/fmath"
)

// Magnitude calculates the magnitude (L2 norm) of v.
func Magnitude[F constraints.Float](v *fixvec.Vector[F]) F {
	e := v.Values()
	return fmath.Sqrt(fmath.Dot(e, e))
}

// Dot calculates the dot product of two vectors.
// It returns *fixvec.ErrDimensionMismatch if the dimensions differ.
func Dot[F constraints.Float](a, b *fixvec.Vector[F]) (F, error) {
	if a.Dim() != b.Dim() {
		return 0, &fixvec.ErrDimensionMismatch{Expected: a.Dim(), Actual: b.Dim()}
	}

	return fmath.Dot(a.Values(), b.Values()), nil
}

// CosineSimilarity calculates the cosine similarity between two vectors.
// It returns *fixvec.ErrDimensionMismatch if the dimensions differ.
// If either vector has zero magnitude, the similarity is 0.
func CosineSimilarity[F constraints.Float](a, b *fixvec.Vector[F]) (F, error) {
	if a.Dim() != b.Dim() {
		return 0, &fixvec.ErrDimensionMismatch{Expected: a.Dim(), Actual: b.Dim()}
	}

	av, bv := a.Values(), b.Values()

	dotProduct := fmath.Dot(av, bv)
	magnitudeA := fmath.Sqrt(fmath.Dot(av, av))
	magnitudeB := fmath.Sqrt(fmath.Dot(bv, bv))

	// Avoid division by zero
	if magnitudeA == 0 || magnitudeB == 0 {
		return 0, nil
	}

	return dotProduct / (magnitudeA * magnitudeB), nil
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
// It returns *fixvec.ErrDimensionMismatch if the dimensions differ.
func SquaredL2[F constraints.Float](a, b *fixvec.Vector[F]) (F, error) {
	if a.Dim() != b.Dim() {
		return 0, &fixvec.ErrDimensionMismatch{Expected: a.Dim(), Actual: b.Dim()}
	}

	return fmath.SquaredL2(a.Values(), b.Values()), nil
}

// Normalize returns an L2-normalized copy of v.
// The second result is false if v has zero magnitude.
func Normalize[F constraints.Float](v *fixvec.Vector[F]) (*fixvec.Vector[F], bool) {
	m := Magnitude(v)
	if m == 0 {
		return nil, false
	}

	return v.Scale(1 / m), true
}
