package lexcode

// Signed varint magnitude level tables. Bit 7 of the first byte is the
// sign flag (1 = non-negative, 0 = negative); the remaining 7 bits of
// the first byte begin the same unary-prefix scheme as the unsigned
// codec, but with one fewer usable bit, so the level boundaries differ.
var signedDataBits = [16]int{
	6, 13, 20, 27, 34, 41, 48,
	63, 70, 77, 84, 91, 98, 105, 112,
	127,
}

var signedOffsets = computeSignedOffsets()

func computeSignedOffsets() [16]Uint128 {
	var offsets [16]Uint128
	for i := 1; i < 16; i++ {
		bitsAtPrev := signedDataBits[i-1]
		if bitsAtPrev >= 128 {
			offsets[i] = Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}
			continue
		}
		offsets[i] = offsets[i-1].Add(oneShiftedBy(bitsAtPrev))
	}
	return offsets
}

func findLevelSigned(v Uint128) int {
	last := len(signedOffsets) - 1
	for level := 0; level < last; level++ {
		if v.Cmp(signedOffsets[level+1]) < 0 {
			return level
		}
	}
	return last
}

// leadingOnesIn7Bits counts leading 1-bits in bits 6..0 of v (bit 7 ignored).
func leadingOnesIn7Bits(v byte) int {
	return leadingOnes8(v << 1)
}

// leadingOnes7Bit is a header byte with bit 7 clear and n leading
// 1-bits in bits 6..0.
func leadingOnes7Bit(n int) byte {
	if n == 0 {
		return 0
	}
	return leadingOnesByte(n) >> 1
}

// EmitIvarint appends v's order-preserving signed varint encoding to dst.
func EmitIvarint(dst []byte, v Int128) []byte {
	start := len(dst)
	if !v.Negative() {
		dst = encodeSignedMagnitude(dst, v.bits())
		dst[start] |= 0x80
		return dst
	}

	// magnitude = -(v+1), which for two's-complement v is exactly the
	// bitwise complement of v's raw bit pattern.
	magnitude := v.bits().Not()
	dst = encodeSignedMagnitude(dst, magnitude)
	dst[start] |= 0x80 // temporarily set so the full complement below clears it
	for i := start; i < len(dst); i++ {
		dst[i] = ^dst[i]
	}
	return dst
}

// encodeSignedMagnitude writes the unary-prefix magnitude encoding,
// leaving bit 7 of the first byte clear for the caller to set.
func encodeSignedMagnitude(dst []byte, v Uint128) []byte {
	level := findLevelSigned(v)
	data := v.Sub(signedOffsets[level])

	switch {
	case level <= 6:
		hdrDataBits := 6 - level
		prefix := leadingOnes7Bit(level)
		hdrData := extractTopBits(data, level, hdrDataBits)
		dst = append(dst, prefix|byte(hdrData.Lo))
	case level <= 14:
		dst = append(dst, 0x7F)
		m := level - 7
		hdrDataBits := 7 - m
		prefix := leadingOnesByte(m)
		hdrData := extractTopBits(data, level, hdrDataBits)
		dst = append(dst, prefix|byte(hdrData.Lo))
	default:
		dst = append(dst, 0x7F, 0xFF)
		hdrData := extractTopBits(data, 15, 7)
		dst = append(dst, byte(hdrData.Lo))
	}
	return writeBETail(dst, data, level)
}

// DecodeIvarint reads an order-preserving signed varint from the front
// of src, returning the value and the number of bytes consumed.
func DecodeIvarint(src []byte) (Int128, int, error) {
	if len(src) == 0 {
		return Int128{}, 0, ErrUnexpectedEOF
	}

	if src[0]&0x80 != 0 {
		firstSub := src[0] & 0x7F
		mag, consumed, err := decodeSignedMagnitude(firstSub, src[1:])
		if err != nil {
			return Int128{}, 0, err
		}
		return int128FromBits(mag), consumed, nil
	}

	firstComplemented := ^src[0]
	firstSub := firstComplemented & 0x7F
	total, err := signedTotalLen(firstSub, src[1:])
	if err != nil {
		return Int128{}, 0, err
	}
	if len(src) < total {
		return Int128{}, 0, ErrUnexpectedEOF
	}
	buf := make([]byte, total)
	for i := 0; i < total; i++ {
		buf[i] = ^src[i]
	}
	sub := buf[0] & 0x7F
	mag, consumed, err := decodeSignedMagnitude(sub, buf[1:])
	if err != nil {
		return Int128{}, 0, err
	}
	if consumed != total {
		return Int128{}, 0, malformedf("ivarint: inconsistent magnitude length")
	}
	return int128FromBits(mag.Not()), total, nil
}

// decodeSignedMagnitude decodes the unary-prefix magnitude starting
// from the 7-bit sub-header sub, with rest holding the bytes after the
// first byte. consumed counts the first byte plus everything read from rest.
func decodeSignedMagnitude(sub byte, rest []byte) (mag Uint128, consumed int, err error) {
	var level, extraHeaderBytes int
	var headerData Uint128

	if sub != 0x7F {
		n := leadingOnesIn7Bits(sub)
		hdrDataBits := 6 - n
		headerData = Uint128FromUint64(uint64(sub & lowMaskU8(hdrDataBits)))
		level, extraHeaderBytes = n, 0
	} else {
		if len(rest) == 0 {
			return Uint128{}, 0, ErrUnexpectedEOF
		}
		second := rest[0]
		if second != 0xFF {
			m := leadingOnes8(second)
			hdrDataBits := 7 - m
			headerData = Uint128FromUint64(uint64(second & lowMaskU8(hdrDataBits)))
			level, extraHeaderBytes = 7+m, 1
		} else {
			if len(rest) < 2 {
				return Uint128{}, 0, ErrUnexpectedEOF
			}
			third := rest[1]
			headerData = Uint128FromUint64(uint64(third & 0x7F))
			level, extraHeaderBytes = 15, 2
		}
	}

	dataStart := extraHeaderBytes
	dataEnd := dataStart + level
	if len(rest) < dataEnd {
		return Uint128{}, 0, ErrUnexpectedEOF
	}

	data := assembleBE(headerData, rest[dataStart:dataEnd])
	return data.Add(signedOffsets[level]), 1 + dataEnd, nil
}

// signedTotalLen determines how many bytes a (complemented) signed
// magnitude occupies, without fully decoding it, so the caller can
// complement exactly that many bytes before decoding for real.
func signedTotalLen(sub byte, rest []byte) (int, error) {
	if sub != 0x7F {
		n := leadingOnesIn7Bits(sub)
		return 1 + n, nil
	}
	if len(rest) == 0 {
		return 0, ErrUnexpectedEOF
	}
	second := ^rest[0]
	if second != 0xFF {
		m := leadingOnes8(second)
		level := 7 + m
		return 2 + level, nil
	}
	return 3 + 15, nil
}

// EmitInt8/16/32/64 widen fixed-width signed integers into the varint
// path; the same value always yields the same bytes regardless of
// which of these was used to produce it.
func EmitInt8(dst []byte, v int8) []byte   { return EmitIvarint(dst, Int128FromInt64(int64(v))) }
func EmitInt16(dst []byte, v int16) []byte { return EmitIvarint(dst, Int128FromInt64(int64(v))) }
func EmitInt32(dst []byte, v int32) []byte { return EmitIvarint(dst, Int128FromInt64(int64(v))) }
func EmitInt64(dst []byte, v int64) []byte { return EmitIvarint(dst, Int128FromInt64(v)) }

func decodeIntN(src []byte, bitSize int) (int64, int, error) {
	v, n, err := DecodeIvarint(src)
	if err != nil {
		return 0, 0, err
	}
	i64, ok := v.Int64()
	if !ok {
		return 0, 0, malformedf("ivarint value does not fit in %d bits", bitSize)
	}
	if bitSize < 64 {
		lo := int64(-1) << uint(bitSize-1)
		hi := -lo - 1
		if i64 < lo || i64 > hi {
			return 0, 0, malformedf("ivarint value does not fit in %d bits", bitSize)
		}
	}
	return i64, n, nil
}

// DecodeInt8/16/32/64 are the decode-side counterparts of
// EmitInt8/16/32/64; they fail with ErrMalformed if the encoded value
// does not fit the requested width.
func DecodeInt8(src []byte) (int8, int, error) {
	v, n, err := decodeIntN(src, 8)
	return int8(v), n, err
}
func DecodeInt16(src []byte) (int16, int, error) {
	v, n, err := decodeIntN(src, 16)
	return int16(v), n, err
}
func DecodeInt32(src []byte) (int32, int, error) {
	v, n, err := decodeIntN(src, 32)
	return int32(v), n, err
}
func DecodeInt64(src []byte) (int64, int, error) {
	return decodeIntN(src, 64)
}
