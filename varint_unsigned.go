package lexcode

// Unsigned varint level tables: levels 0..7 fit a single header byte (n leading 1-bits,
// a 0-bit terminator, 7-n header data bits); levels 8..15 spend the
// first header byte as 0xFF and put the unary prefix in a second byte;
// level 16 is both header bytes 0xFF with no header data bits at all,
// covering the full 128-bit range in 16 trailing bytes.
var unsignedDataBits = [17]int{
	7, 14, 21, 28, 35, 42, 49, 56,
	71, 78, 85, 92, 99, 106, 113, 120, 128,
}

var unsignedOffsets = computeUnsignedOffsets()

func computeUnsignedOffsets() [17]Uint128 {
	var offsets [17]Uint128
	for i := 1; i < 17; i++ {
		bitsAtPrev := unsignedDataBits[i-1]
		if bitsAtPrev >= 128 {
			offsets[i] = Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}
			continue
		}
		offsets[i] = offsets[i-1].Add(oneShiftedBy(bitsAtPrev))
	}
	return offsets
}

// oneShiftedBy returns 1<<n as a Uint128.
func oneShiftedBy(n int) Uint128 {
	return Uint128{Lo: 1}.Lsh(uint(n))
}

func findLevelUnsigned(v Uint128) int {
	last := len(unsignedOffsets) - 1
	for level := 0; level < last; level++ {
		if v.Cmp(unsignedOffsets[level+1]) < 0 {
			return level
		}
	}
	return last
}

func leadingOnes8(b byte) int {
	n := 0
	for n < 8 && b&0x80 != 0 {
		n++
		b <<= 1
	}
	return n
}

func leadingOnesByte(n int) byte {
	switch {
	case n <= 0:
		return 0
	case n >= 8:
		return 0xFF
	default:
		return byte(0xFF << uint(8-n))
	}
}

func lowMaskU8(n int) byte {
	switch {
	case n <= 0:
		return 0
	case n >= 8:
		return 0xFF
	default:
		return byte(1<<uint(n)) - 1
	}
}

// EmitUvarint appends v's order-preserving unsigned varint encoding to dst.
func EmitUvarint(dst []byte, v Uint128) []byte {
	level := findLevelUnsigned(v)
	data := v.Sub(unsignedOffsets[level])

	switch {
	case level <= 7:
		hdrDataBits := 7 - level
		prefix := leadingOnesByte(level)
		hdrData := extractTopBits(data, level, hdrDataBits)
		dst = append(dst, prefix|byte(hdrData.Lo))
	case level <= 15:
		dst = append(dst, 0xFF)
		m := level - 8
		hdrDataBits := 7 - m
		prefix := leadingOnesByte(m)
		hdrData := extractTopBits(data, level, hdrDataBits)
		dst = append(dst, prefix|byte(hdrData.Lo))
	default:
		dst = append(dst, 0xFF, 0xFF)
	}
	return writeBETail(dst, data, level)
}

// extractTopBits extracts the top `want` bits of data, given that
// `extraBytes` trailing bytes still need to be written after the header.
func extractTopBits(data Uint128, extraBytes, want int) Uint128 {
	if want == 0 {
		return Uint128{}
	}
	shift := extraBytes * 8
	if shift >= 128 {
		return Uint128{}
	}
	return data.Rsh(uint(shift)).And(lowMask128(want))
}

// writeBETail appends the bottom n bytes of data, big-endian.
func writeBETail(dst []byte, data Uint128, n int) []byte {
	for i := n - 1; i >= 0; i-- {
		dst = append(dst, data.byteAt(uint(i*8)))
	}
	return dst
}

// assembleBE combines header bits with subsequent big-endian payload bytes.
func assembleBE(prefix Uint128, payload []byte) Uint128 {
	v := prefix
	for _, b := range payload {
		v = v.Lsh(8).Or(Uint128FromUint64(uint64(b)))
	}
	return v
}

// DecodeUvarint reads an order-preserving unsigned varint from the
// front of src, returning the value and the number of bytes consumed.
func DecodeUvarint(src []byte) (Uint128, int, error) {
	if len(src) == 0 {
		return Uint128{}, 0, ErrUnexpectedEOF
	}

	first := src[0]
	var level, headerLen int
	var headerData Uint128

	if first != 0xFF {
		n := leadingOnes8(first)
		hdrDataBits := 7 - n
		headerData = Uint128FromUint64(uint64(first & lowMaskU8(hdrDataBits)))
		level, headerLen = n, 1
	} else {
		if len(src) < 2 {
			return Uint128{}, 0, ErrUnexpectedEOF
		}
		second := src[1]
		if second != 0xFF {
			m := leadingOnes8(second)
			hdrDataBits := 7 - m
			headerData = Uint128FromUint64(uint64(second & lowMaskU8(hdrDataBits)))
			level, headerLen = 8+m, 2
		} else {
			level, headerLen = 16, 2
		}
	}

	total := headerLen + level
	if len(src) < total {
		return Uint128{}, 0, ErrUnexpectedEOF
	}

	data := assembleBE(headerData, src[headerLen:total])
	return data.Add(unsignedOffsets[level]), total, nil
}

// EmitUint8/16/32/64 widen fixed-width unsigned integers into the
// varint path; the same value always yields the same bytes regardless
// of which of these was used to produce it.
func EmitUint8(dst []byte, v uint8) []byte   { return EmitUvarint(dst, Uint128FromUint64(uint64(v))) }
func EmitUint16(dst []byte, v uint16) []byte { return EmitUvarint(dst, Uint128FromUint64(uint64(v))) }
func EmitUint32(dst []byte, v uint32) []byte { return EmitUvarint(dst, Uint128FromUint64(uint64(v))) }
func EmitUint64(dst []byte, v uint64) []byte { return EmitUvarint(dst, Uint128FromUint64(v)) }

func decodeUintN(src []byte, bitSize int) (uint64, int, error) {
	v, n, err := DecodeUvarint(src)
	if err != nil {
		return 0, 0, err
	}
	u64, ok := v.Uint64()
	if !ok {
		return 0, 0, malformedf("uvarint value does not fit in %d bits", bitSize)
	}
	if bitSize < 64 && u64 >= uint64(1)<<uint(bitSize) {
		return 0, 0, malformedf("uvarint value does not fit in %d bits", bitSize)
	}
	return u64, n, nil
}

// DecodeUint8/16/32/64 are the decode-side counterparts of
// EmitUint8/16/32/64; they fail with ErrMalformed if the encoded value
// does not fit the requested width.
func DecodeUint8(src []byte) (uint8, int, error) {
	v, n, err := decodeUintN(src, 8)
	return uint8(v), n, err
}
func DecodeUint16(src []byte) (uint16, int, error) {
	v, n, err := decodeUintN(src, 16)
	return uint16(v), n, err
}
func DecodeUint32(src []byte) (uint32, int, error) {
	v, n, err := decodeUintN(src, 32)
	return uint32(v), n, err
}
func DecodeUint64(src []byte) (uint64, int, error) {
	return decodeUintN(src, 64)
}
