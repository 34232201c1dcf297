package lexcode

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat64OrderPreservation(t *testing.T) {
	values := []float64{
		math.Inf(-1), -1e300, -1.5, -1, -0.0001, math.Copysign(0, -1), 0,
		0.0001, 1, 1.5, 1e300, math.Inf(1),
	}
	var encoded [][]byte
	for _, v := range values {
		encoded = append(encoded, EmitF64(nil, v))
	}
	for i := range values {
		for j := i + 1; j < len(values); j++ {
			require.Truef(t, Compare(encoded[i], encoded[j]) < 0,
				"%v should sort before %v", values[i], values[j])
		}
	}
}

func TestFloat64Roundtrip(t *testing.T) {
	for _, v := range []float64{0, -0.0, 1, -1, 3.14159, -3.14159, math.Inf(1), math.Inf(-1), math.MaxFloat64, -math.MaxFloat64} {
		buf := EmitF64(nil, v)
		require.Len(t, buf, 8)
		got, n, err := DecodeF64(buf)
		require.NoError(t, err)
		require.Equal(t, 8, n)
		require.Equal(t, math.Float64bits(v), math.Float64bits(got))
	}
}

func TestFloat32Roundtrip(t *testing.T) {
	for _, v := range []float32{0, -0.0, 1, -1, 3.14159, -3.14159} {
		buf := EmitF32(nil, v)
		require.Len(t, buf, 4)
		got, n, err := DecodeF32(buf)
		require.NoError(t, err)
		require.Equal(t, 4, n)
		require.Equal(t, math.Float32bits(v), math.Float32bits(got))
	}
}

func TestFloatUnexpectedEOF(t *testing.T) {
	_, _, err := DecodeF64([]byte{1, 2, 3})
	require.ErrorIs(t, err, ErrUnexpectedEOF)
	_, _, err = DecodeF32([]byte{1, 2})
	require.ErrorIs(t, err, ErrUnexpectedEOF)
}
