package lexcode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionLiterals(t *testing.T) {
	require.Equal(t, []byte{0x00}, EmitOptionNone(nil))

	buf := EmitOptionSomePrefix(nil)
	buf = EmitBool(buf, true)
	require.Equal(t, []byte{0x01, 0x01}, buf)
}

func TestOptionNoneSortsBeforeSome(t *testing.T) {
	none := EmitOptionNone(nil)
	some := EmitBool(EmitOptionSomePrefix(nil), false)
	require.True(t, Compare(none, some) < 0)
}

func TestOptionTagRoundtrip(t *testing.T) {
	present, n, err := DecodeOptionTag(EmitOptionNone(nil))
	require.NoError(t, err)
	require.False(t, present)
	require.Equal(t, 1, n)

	present, n, err = DecodeOptionTag(EmitOptionSomePrefix(nil))
	require.NoError(t, err)
	require.True(t, present)
	require.Equal(t, 1, n)
}

func TestOptionTagMalformed(t *testing.T) {
	_, _, err := DecodeOptionTag([]byte{0x02})
	require.ErrorIs(t, err, ErrMalformed)
}
