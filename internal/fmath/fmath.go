// Package fmath provides the scalar floating-point kernels behind the metric
// package. This is an internal package - external users should use metric.
package fmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Dot calculates the dot product of two slices.
// Assumes slices are the same length (caller's responsibility).
func Dot[F constraints.Float](a, b []F) F {
	var ret F
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

// SquaredL2 calculates the squared L2 distance between two slices.
// Assumes slices are the same length (caller's responsibility).
func SquaredL2[F constraints.Float](a, b []F) F {
	var distance F
	for i := range a {
		distance += (a[i] - b[i]) * (a[i] - b[i])
	}

	return distance
}

// Sqrt returns the square root of v in the same floating-point kind.
func Sqrt[F constraints.Float](v F) F {
	return F(math.Sqrt(float64(v)))
}
