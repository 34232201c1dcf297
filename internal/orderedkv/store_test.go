package orderedkv

import (
	"testing"

	"github.com/cockroachdb/pebble/vfs"
	"github.com/stretchr/testify/require"

	"github.com/josefs/lexcode"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("", vfs.NewMem())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })
	return s
}

func key(category uint32, name string) []byte {
	e := lexcode.NewEncoder(nil)
	e.EmitUint32(category).EmitText(name)
	return e.Bytes()
}

func TestPutGet(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Put(key(1, "alice"), []byte("v1")))
	v, err := s.Get(key(1, "alice"))
	require.NoError(t, err)
	require.Equal(t, []byte("v1"), v)
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Get(key(1, "missing"))
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestScanOrderMatchesKeySemantics(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Put(key(2, "alice"), []byte("a")))
	require.NoError(t, s.Put(key(1, "bob"), []byte("b")))
	require.NoError(t, s.Put(key(1, "alice"), []byte("c")))

	entries, err := s.Scan(nil, nil)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, []byte("c"), entries[0].Value) // (1, alice)
	require.Equal(t, []byte("b"), entries[1].Value) // (1, bob)
	require.Equal(t, []byte("a"), entries[2].Value) // (2, alice)
}

func TestDeleteAndClose(t *testing.T) {
	s := openTestStore(t)
	k := key(5, "gone")
	require.NoError(t, s.Put(k, []byte("x")))
	require.NoError(t, s.Delete(k))
	_, err := s.Get(k)
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestClosedStoreRejectsOperations(t *testing.T) {
	s, err := Open("", vfs.NewMem())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	err = s.Put(key(1, "x"), []byte("v"))
	require.ErrorIs(t, err, ErrClosed)
}
