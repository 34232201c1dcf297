// Package lexcode encodes typed values into byte strings such that
// byte-wise lexicographic comparison of the encoded form matches the
// semantic comparison of the original values.
//
// The encoding is intended for keys in ordered key-value stores:
// LSM-trees and B-trees sort by raw bytes, and this package lets a
// caller build composite keys out of integers, floats, strings, byte
// strings, options, sequences, maps, and fixed-arity tuples while
// keeping that byte order meaningful.
//
// The format is not self-describing. A decoder must know the shape it
// expects ahead of time; there is no embedded type tag. Callers drive
// the Encoder and Decoder types directly, or are driven through them
// by an integration shim (a serialization framework adapter) that is
// outside the scope of this package.
package lexcode
