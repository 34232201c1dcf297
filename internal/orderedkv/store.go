// Package orderedkv is a small demonstration of the motivating use
// case for lexcode: a Pebble-backed ordered key-value store whose keys
// are composite values encoded with the lexcode codec, so that
// Pebble's own byte-wise iteration order matches the semantic order of
// the original typed keys.
//
// It is trimmed down to a single store, since a composite-key namespace
// needs no multi-store bookkeeping.
package orderedkv

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
)

// Sentinel errors returned by Store methods.
var (
	// ErrKeyNotFound is returned when the targeted key doesn't exist.
	ErrKeyNotFound = errors.New("orderedkv: key not found")

	// ErrClosed is returned when calling a method after Close.
	ErrClosed = errors.New("orderedkv: store is closed")
)

// Store wraps a Pebble database keyed by lexcode-encoded composite keys.
type Store struct {
	db     *pebble.DB
	closed bool
}

// Open opens (creating if necessary) a Pebble database at path on fs,
// or on Pebble's default filesystem when fs is nil. Pass "" with
// vfs.NewMem() to get an in-memory store, useful for tests.
func Open(path string, fs vfs.FS) (*Store, error) {
	opts := &pebble.Options{
		Logger: NoopLoggerAndTracer{},
	}
	if fs != nil {
		opts.FS = fs
	}
	db, err := pebble.Open(path, opts)
	if err != nil {
		return nil, errors.Wrap(err, "orderedkv: open")
	}
	return &Store{db: db}, nil
}

// Close closes the underlying Pebble database.
func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// Put stores value under the lexcode-encoded key, overwriting any
// existing value.
func (s *Store) Put(key, value []byte) error {
	if s.closed {
		return errors.WithStack(ErrClosed)
	}
	return s.db.Set(key, value, pebble.Sync)
}

// Get returns the value stored under key, or ErrKeyNotFound.
func (s *Store) Get(key []byte) ([]byte, error) {
	if s.closed {
		return nil, errors.WithStack(ErrClosed)
	}
	v, closer, err := s.db.Get(key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, errors.WithStack(ErrKeyNotFound)
		}
		return nil, err
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	if err := closer.Close(); err != nil {
		return nil, err
	}
	return cp, nil
}

// Delete removes key, if present.
func (s *Store) Delete(key []byte) error {
	if s.closed {
		return errors.WithStack(ErrClosed)
	}
	return s.db.Delete(key, pebble.Sync)
}

// Entry is one key/value pair yielded by Scan.
type Entry struct {
	Key   []byte
	Value []byte
}

// Scan iterates, in key order, over every entry whose key lies in
// [lower, upper). A nil upper bound scans to the end of the keyspace.
// Because keys are lexcode-encoded, this iteration order is exactly
// the semantic order of whatever composite value the keys represent.
func (s *Store) Scan(lower, upper []byte) ([]Entry, error) {
	if s.closed {
		return nil, errors.WithStack(ErrClosed)
	}
	it := s.db.NewIter(&pebble.IterOptions{
		LowerBound: lower,
		UpperBound: upper,
	})
	defer it.Close()

	var entries []Entry
	for it.First(); it.Valid(); it.Next() {
		k := make([]byte, len(it.Key()))
		copy(k, it.Key())
		v := make([]byte, len(it.Value()))
		copy(v, it.Value())
		entries = append(entries, Entry{Key: k, Value: v})
	}
	return entries, it.Error()
}
