package lexcode

// EmitVariant appends the discriminant of an enum variant as an
// unsigned varint. The caller follows it with the variant's payload
// (nothing for a unit variant, field encodings concatenated for a
// tuple or struct variant). Ordering between variants compares the
// discriminant first, then the payload.
func EmitVariant(dst []byte, discriminant uint64) []byte {
	return EmitUvarint(dst, Uint128FromUint64(discriminant))
}

// DecodeVariant reads a varint-encoded discriminant.
func DecodeVariant(src []byte) (discriminant uint64, n int, err error) {
	v, n, err := DecodeUvarint(src)
	if err != nil {
		return 0, 0, err
	}
	u64, ok := v.Uint64()
	if !ok {
		return 0, 0, malformedf("variant discriminant overflows uint64")
	}
	return u64, n, nil
}
