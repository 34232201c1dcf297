package lexcode

// BeginElement appends the 0x01 marker that precedes every sequence or
// map element. The caller follows it with the element's own encoding
// (key-then-value, for a map entry).
func BeginElement(dst []byte) []byte {
	return append(dst, 0x01)
}

// EndSeq appends the 0x00 terminator that closes a sequence or map.
// Because 0x00 < 0x01, a sequence that ends here sorts before any
// sequence sharing this prefix that continues with another element.
func EndSeq(dst []byte) []byte {
	return append(dst, 0x00)
}

// EndMap is EndSeq under another name; maps and sequences share framing.
func EndMap(dst []byte) []byte {
	return EndSeq(dst)
}

// More reads the next framing byte of a sequence or map (0x01 or the
// 0x00 terminator) and reports whether another element follows. It
// always consumes exactly one byte; callers loop until it reports false.
func More(src []byte) (more bool, n int, err error) {
	if len(src) == 0 {
		return false, 0, ErrUnexpectedEOF
	}
	switch src[0] {
	case 0x00:
		return false, 1, nil
	case 0x01:
		return true, 1, nil
	default:
		return false, 0, malformedf("invalid sequence framing byte 0x%02x", src[0])
	}
}
