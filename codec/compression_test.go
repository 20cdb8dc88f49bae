package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/fixvec"
)

// repetitive builds a highly compressible vector.
func repetitive(t *testing.T, dim int) *fixvec.Vector[float32] {
	t.Helper()

	elems := make([]float32, dim)
	for i := range elems {
		elems[i] = float32(i % 4)
	}
	v, err := fixvec.New(dim, elems)
	require.NoError(t, err)
	return v
}

func TestCompressionRoundTrip(t *testing.T) {
	v := repetitive(t, 1024)

	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZstd} {
		t.Run(c.String(), func(t *testing.T) {
			data, err := Encode(v, WithCompression(c))
			require.NoError(t, err)

			got, err := Decode[float32](data)
			require.NoError(t, err)
			assert.True(t, got.Equal(v))

			if c != CompressionNone {
				raw, err := Encode(v)
				require.NoError(t, err)
				assert.Less(t, len(data), len(raw))
			}
		})
	}
}

func TestCompressionFallbackToRaw(t *testing.T) {
	// A tiny payload does not compress; the frame must fall back to a raw
	// payload and still round-trip.
	v, err := fixvec.Of[float32](1.1, -2.2)
	require.NoError(t, err)

	data, err := Encode(v, WithCompression(CompressionLZ4))
	require.NoError(t, err)
	assert.Equal(t, byte(CompressionNone), data[5])

	got, err := Decode[float32](data)
	require.NoError(t, err)
	assert.True(t, got.Equal(v))
}

func TestUnknownCompression(t *testing.T) {
	v, err := fixvec.Of[float32](1, 2)
	require.NoError(t, err)

	_, err = Encode(v, WithCompression(Compression(99)))
	require.ErrorIs(t, err, ErrUnknownCompression)
}

func TestCompressionString(t *testing.T) {
	assert.Equal(t, "none", CompressionNone.String())
	assert.Equal(t, "lz4", CompressionLZ4.String())
	assert.Equal(t, "zstd", CompressionZstd.String())
	assert.Equal(t, "unknown(99)", Compression(99).String())
}
