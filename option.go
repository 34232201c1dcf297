package lexcode

// EmitOptionNone appends the encoding of an absent optional value.
// Because 0x00 < 0x01, None always sorts before any Some value.
func EmitOptionNone(dst []byte) []byte {
	return append(dst, 0x00)
}

// EmitOptionSomePrefix appends the presence marker for a Some value.
// The caller follows this with the inner value's own Emit call.
func EmitOptionSomePrefix(dst []byte) []byte {
	return append(dst, 0x01)
}

// DecodeOptionTag reads the one-byte option marker and reports
// whether a value follows, and how many bytes were consumed (always 1).
func DecodeOptionTag(src []byte) (present bool, n int, err error) {
	if len(src) == 0 {
		return false, 0, ErrUnexpectedEOF
	}
	switch src[0] {
	case 0x00:
		return false, 1, nil
	case 0x01:
		return true, 1, nil
	default:
		return false, 0, malformedf("invalid option tag 0x%02x", src[0])
	}
}
