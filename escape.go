package lexcode

const (
	textSentinel  = byte(0x00)
	bytesSentinel = byte(0x7F)
)

// EmitText appends v's order-preserving encoding using the text
// sentinel (0x00). Valid UTF-8 contains 0x00 only as itself, but the
// doubling escape is applied uniformly regardless.
func EmitText(dst []byte, v string) []byte {
	return emitWithSentinel(dst, []byte(v), textSentinel)
}

// EmitBytes appends v's encoding using the byte string sentinel (0x7F).
// Because the terminator 0x7F 0x00 is not the smallest byte pair, a
// byte string sorts after a longer one that extends it with a byte
// below 0x7F (for example, {} encodes after {0x00}).
func EmitBytes(dst []byte, v []byte) []byte {
	return emitWithSentinel(dst, v, bytesSentinel)
}

func emitWithSentinel(dst, data []byte, sentinel byte) []byte {
	for _, b := range data {
		dst = append(dst, b)
		if b == sentinel {
			dst = append(dst, 0x01)
		}
	}
	return append(dst, sentinel, 0x00)
}

// DecodeText reads a sentinel-escaped text field and returns the
// decoded string and the number of bytes consumed.
func DecodeText(src []byte) (string, int, error) {
	data, n, err := decodeWithSentinel(src, textSentinel)
	if err != nil {
		return "", 0, err
	}
	return string(data), n, nil
}

// DecodeBytes reads a sentinel-escaped byte string field and returns
// the decoded bytes and the number of bytes consumed.
func DecodeBytes(src []byte) ([]byte, int, error) {
	return decodeWithSentinel(src, bytesSentinel)
}

func decodeWithSentinel(src []byte, sentinel byte) ([]byte, int, error) {
	var out []byte
	i := 0
	for {
		if i >= len(src) {
			return nil, 0, ErrUnexpectedEOF
		}
		b := src[i]
		if b != sentinel {
			out = append(out, b)
			i++
			continue
		}
		if i+1 >= len(src) {
			return nil, 0, ErrUnexpectedEOF
		}
		switch src[i+1] {
		case 0x00:
			return out, i + 2, nil
		case 0x01:
			out = append(out, sentinel)
			i += 2
		default:
			return nil, 0, malformedf("invalid escape continuation byte 0x%02x", src[i+1])
		}
	}
}
