package lexcode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func encodeU(v uint64) []byte {
	return EmitUvarint(nil, Uint128FromUint64(v))
}

func TestUvarintCompactness(t *testing.T) {
	require.Equal(t, []byte{0x00}, encodeU(0))
	require.Equal(t, []byte{0x7F}, encodeU(127))
	require.Equal(t, []byte{0x80, 0x00}, encodeU(128))
}

func TestUvarintBoundaryBytes(t *testing.T) {
	require.Equal(t, []byte{0xBF, 0xFF}, encodeU(16511))
	require.Equal(t, []byte{0xC0, 0x00, 0x00}, encodeU(16512))
}

func TestUvarintRoundtripSmall(t *testing.T) {
	for v := uint64(0); v <= 300; v++ {
		buf := encodeU(v)
		got, n, err := DecodeUvarint(buf)
		require.NoError(t, err)
		require.Equal(t, len(buf), n)
		u64, ok := got.Uint64()
		require.True(t, ok)
		require.Equal(t, v, u64)
	}
}

func TestUvarintOrderPreservation(t *testing.T) {
	values := []uint64{
		0, 1, 63, 64, 126, 127, 128, 255, 256,
		16511, 16512, 65535, 65536,
		1 << 20, 1 << 28, 1 << 35, 1 << 42, 1 << 49,
		(1 << 56) - 1, 1 << 56,
		1 << 63,
	}
	var encoded [][]byte
	for _, v := range values {
		encoded = append(encoded, encodeU(v))
	}
	for i := range values {
		for j := i + 1; j < len(values); j++ {
			require.Truef(t, Compare(encoded[i], encoded[j]) < 0,
				"%d (enc % x) should be < %d (enc % x)", values[i], encoded[i], values[j], encoded[j])
		}
	}
}

func TestUvarintOrderPreservation128(t *testing.T) {
	values := []Uint128{
		{},
		Uint128FromUint64(1),
		Uint128FromUint64(^uint64(0)),
		{Hi: 1, Lo: 0},
		{Hi: 1, Lo: 1},
		{Hi: 1 << 62, Lo: 0},
		{Hi: ^uint64(0), Lo: ^uint64(0) - 1},
		{Hi: ^uint64(0), Lo: ^uint64(0)},
	}
	var encoded [][]byte
	for _, v := range values {
		encoded = append(encoded, EmitUvarint(nil, v))
	}
	for i := range values {
		for j := i + 1; j < len(values); j++ {
			require.Truef(t, Compare(encoded[i], encoded[j]) < 0,
				"index %d should sort before index %d", i, j)
		}
	}
}

func TestUvarintRoundtripBoundaries(t *testing.T) {
	for level := 0; level < 17; level++ {
		offset := unsignedOffsets[level]
		buf := EmitUvarint(nil, offset)
		got, n, err := DecodeUvarint(buf)
		require.NoError(t, err)
		require.Equal(t, len(buf), n)
		require.Equal(t, 0, got.Cmp(offset))

		if level < 16 {
			v := unsignedOffsets[level+1].Sub(Uint128FromUint64(1))
			buf := EmitUvarint(nil, v)
			got, n, err := DecodeUvarint(buf)
			require.NoError(t, err)
			require.Equal(t, len(buf), n)
			require.Equal(t, 0, got.Cmp(v))
		}
	}
}

func TestUvarintMax(t *testing.T) {
	max := Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}
	buf := EmitUvarint(nil, max)
	require.Len(t, buf, 18)
	got, n, err := DecodeUvarint(buf)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, 0, got.Cmp(max))
}

func TestUvarintUnexpectedEOF(t *testing.T) {
	_, _, err := DecodeUvarint(nil)
	require.ErrorIs(t, err, ErrUnexpectedEOF)

	buf := encodeU(128)
	_, _, err = DecodeUvarint(buf[:1])
	require.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestUint8NarrowingOverflow(t *testing.T) {
	buf := EmitUint32(nil, 256)
	_, _, err := DecodeUint8(buf)
	require.ErrorIs(t, err, ErrMalformed)

	buf = EmitUint32(nil, 255)
	v, _, err := DecodeUint8(buf)
	require.NoError(t, err)
	require.Equal(t, uint8(255), v)
}

func TestCrossWidthUnsignedEquality(t *testing.T) {
	require.Equal(t, EmitUint8(nil, 42), EmitUint64(nil, 42))
	require.Equal(t, EmitUint16(nil, 1000), EmitUint32(nil, 1000))
}
