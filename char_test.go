package lexcode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCharRoundtrip(t *testing.T) {
	for _, r := range []rune{0, 'a', 'Z', '0', 0x10FFFF, 0x4E2D} {
		buf := EmitChar(nil, r)
		got, n, err := DecodeChar(buf)
		require.NoError(t, err)
		require.Equal(t, len(buf), n)
		require.Equal(t, r, got)
	}
}

func TestCharOrderPreservation(t *testing.T) {
	values := []rune{0, 1, 'a', 'b', 0x10FFFF}
	var encoded [][]byte
	for _, r := range values {
		encoded = append(encoded, EmitChar(nil, r))
	}
	for i := range values {
		for j := i + 1; j < len(values); j++ {
			require.True(t, Compare(encoded[i], encoded[j]) < 0)
		}
	}
}

func TestCharRejectsSurrogates(t *testing.T) {
	buf := EmitUvarint(nil, Uint128FromUint64(0xD800))
	_, _, err := DecodeChar(buf)
	require.ErrorIs(t, err, ErrMalformed)
}

func TestCharRejectsOutOfRange(t *testing.T) {
	buf := EmitUvarint(nil, Uint128FromUint64(0x110000))
	_, _, err := DecodeChar(buf)
	require.ErrorIs(t, err, ErrMalformed)
}
