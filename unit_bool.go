package lexcode

// EmitUnit appends the (empty) encoding of the unit value.
func EmitUnit(dst []byte) []byte {
	return dst
}

// EmitBool appends a single byte, 0x00 for false and 0x01 for true.
func EmitBool(dst []byte, v bool) []byte {
	if v {
		return append(dst, 0x01)
	}
	return append(dst, 0x00)
}

// DecodeBool reads a single boolean byte.
func DecodeBool(src []byte) (bool, int, error) {
	if len(src) == 0 {
		return false, 0, ErrUnexpectedEOF
	}
	switch src[0] {
	case 0x00:
		return false, 1, nil
	case 0x01:
		return true, 1, nil
	default:
		return false, 0, malformedf("invalid boolean byte 0x%02x", src[0])
	}
}
