package lexcode

import "bytes"

// Compare returns the result of comparing two encoded byte strings as
// unsigned byte sequences: -1, 0, or 1. Equivalent to bytes.Compare,
// exposed here because it is exactly the comparison this package's
// encodings are designed to support.
func Compare(a, b []byte) int {
	return bytes.Compare(a, b)
}

// Equal reports whether two encoded byte strings are identical.
func Equal(a, b []byte) bool {
	return bytes.Equal(a, b)
}
