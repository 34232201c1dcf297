package lexcode

import "golang.org/x/exp/constraints"

// EmitUnsigned widens any unsigned integer type into the varint path
// in one call, so a driver iterating over a struct's reflected fields
// does not need a type switch over every unsigned width.
func EmitUnsigned[T constraints.Unsigned](dst []byte, v T) []byte {
	return EmitUvarint(dst, Uint128FromUint64(uint64(v)))
}

// EmitSigned is the signed counterpart of EmitUnsigned.
func EmitSigned[T constraints.Signed](dst []byte, v T) []byte {
	return EmitIvarint(dst, Int128FromInt64(int64(v)))
}
