package lexcode

import "unicode/utf8"

// EmitChar appends r's encoding as an unsigned varint over its scalar
// value.
func EmitChar(dst []byte, r rune) []byte {
	return EmitUvarint(dst, Uint128FromUint64(uint64(r)))
}

// DecodeChar reads a varint-encoded Unicode scalar value and rejects
// code points that are not valid scalar values (surrogates, or values
// above U+10FFFF) with ErrMalformed.
func DecodeChar(src []byte) (rune, int, error) {
	v, n, err := DecodeUvarint(src)
	if err != nil {
		return 0, 0, err
	}
	u64, ok := v.Uint64()
	if !ok || u64 > utf8.MaxRune || !utf8.ValidRune(rune(u64)) {
		return 0, 0, malformedf("0x%x is not a valid Unicode scalar value", u64)
	}
	return rune(u64), n, nil
}
