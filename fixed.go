package lexcode

// EmitFixedBytes appends v's bytes verbatim, with no escaping or
// framing. The caller knows the length N ahead of time; order
// preservation is trivial since the stored bytes are already
// compared directly.
//
// Go cannot parameterize a type by an array length the way the
// original format's FixedBytes<const N: usize> does, so this is
// exposed as a plain slice-in/slice-out pair rather than a generic
// FixedBytes[N] type; callers that want a Go array copy the slice
// into one themselves.
func EmitFixedBytes(dst []byte, v []byte) []byte {
	return append(dst, v...)
}

// DecodeFixedBytes reads exactly n bytes from src.
func DecodeFixedBytes(src []byte, n int) ([]byte, int, error) {
	if len(src) < n {
		return nil, 0, ErrUnexpectedEOF
	}
	out := make([]byte, n)
	copy(out, src[:n])
	return out, n, nil
}
