package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbs(t *testing.T) {
	t.Run("SignedInt", func(t *testing.T) {
		got, ok := Abs(int32(-5))
		assert.True(t, ok)
		assert.Equal(t, int32(5), got)

		got, ok = Abs(int32(5))
		assert.True(t, ok)
		assert.Equal(t, int32(5), got)
	})

	t.Run("SignedMinimum", func(t *testing.T) {
		_, ok := Abs(int8(math.MinInt8))
		assert.False(t, ok)

		_, ok = Abs(int64(math.MinInt64))
		assert.False(t, ok)

		// One above the minimum is fine.
		got, ok := Abs(int8(math.MinInt8 + 1))
		assert.True(t, ok)
		assert.Equal(t, int8(math.MaxInt8), got)
	})

	t.Run("Unsigned", func(t *testing.T) {
		got, ok := Abs(uint16(65535))
		assert.True(t, ok)
		assert.Equal(t, uint16(65535), got)
	})

	t.Run("Float", func(t *testing.T) {
		got32, ok := Abs(float32(-1.5))
		assert.True(t, ok)
		assert.Equal(t, float32(1.5), got32)

		negZero, ok := Abs(math.Copysign(0, -1))
		assert.True(t, ok)
		assert.False(t, math.Signbit(negZero))

		nan, ok := Abs(math.NaN())
		assert.True(t, ok)
		assert.True(t, math.IsNaN(nan))

		inf, ok := Abs(math.Inf(-1))
		assert.True(t, ok)
		assert.Equal(t, math.Inf(1), inf)
	})
}

func TestNeg(t *testing.T) {
	t.Run("SignedInt", func(t *testing.T) {
		got, ok := Neg(int32(5))
		assert.True(t, ok)
		assert.Equal(t, int32(-5), got)

		got, ok = Neg(int32(-5))
		assert.True(t, ok)
		assert.Equal(t, int32(5), got)

		got, ok = Neg(int32(0))
		assert.True(t, ok)
		assert.Equal(t, int32(0), got)
	})

	t.Run("SignedMinimum", func(t *testing.T) {
		_, ok := Neg(int16(math.MinInt16))
		assert.False(t, ok)
	})

	t.Run("Unsigned", func(t *testing.T) {
		got, ok := Neg(uint32(0))
		assert.True(t, ok)
		assert.Equal(t, uint32(0), got)

		_, ok = Neg(uint32(1))
		assert.False(t, ok)
	})

	t.Run("Float", func(t *testing.T) {
		got, ok := Neg(float64(1.5))
		assert.True(t, ok)
		assert.Equal(t, -1.5, got)
	})
}
