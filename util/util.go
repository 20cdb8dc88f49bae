package util

import (
	"math/rand"

	"github.com/hupe1980/fixvec"
)

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// GenerateRandomVectors generates num random vectors of the given dimension
// with elements drawn uniformly from [0, 1).
func (r *RNG) GenerateRandomVectors(num int, dimensions int) ([]*fixvec.Vector[float32], error) {
	vectors := make([]*fixvec.Vector[float32], num)
	for i := range vectors {
		elems := make([]float32, dimensions)
		for j := range elems {
			elems[j] = r.rand.Float32()
		}

		v, err := fixvec.New(dimensions, elems)
		if err != nil {
			return nil, err
		}
		vectors[i] = v
	}

	return vectors, nil
}

// GenerateSignedVectors generates num random vectors of the given dimension
// with elements drawn uniformly from [-1, 1).
func (r *RNG) GenerateSignedVectors(num int, dimensions int) ([]*fixvec.Vector[float32], error) {
	vectors := make([]*fixvec.Vector[float32], num)
	for i := range vectors {
		elems := make([]float32, dimensions)
		for j := range elems {
			elems[j] = r.rand.Float32()*2 - 1
		}

		v, err := fixvec.New(dimensions, elems)
		if err != nil {
			return nil, err
		}
		vectors[i] = v
	}

	return vectors, nil
}
