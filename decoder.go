package lexcode

// Decoder reads successive values off an immutable byte slice using a
// mutable cursor. Like Encoder, it holds no other state, so many
// Decoders can run concurrently over disjoint input slices.
type Decoder struct {
	src []byte
	pos int
}

// NewDecoder returns a Decoder positioned at the start of src.
func NewDecoder(src []byte) *Decoder {
	return &Decoder{src: src}
}

// Remaining returns the unconsumed tail of the input.
func (d *Decoder) Remaining() []byte {
	return d.src[d.pos:]
}

// Done reports whether the cursor has reached the end of the input.
func (d *Decoder) Done() bool {
	return d.pos >= len(d.src)
}

func (d *Decoder) advance(n int) {
	d.pos += n
}

func (d *Decoder) DecodeBool() (bool, error) {
	v, n, err := DecodeBool(d.Remaining())
	if err != nil {
		return false, err
	}
	d.advance(n)
	return v, nil
}

func (d *Decoder) DecodeUint8() (uint8, error) {
	v, n, err := DecodeUint8(d.Remaining())
	if err != nil {
		return 0, err
	}
	d.advance(n)
	return v, nil
}

func (d *Decoder) DecodeUint16() (uint16, error) {
	v, n, err := DecodeUint16(d.Remaining())
	if err != nil {
		return 0, err
	}
	d.advance(n)
	return v, nil
}

func (d *Decoder) DecodeUint32() (uint32, error) {
	v, n, err := DecodeUint32(d.Remaining())
	if err != nil {
		return 0, err
	}
	d.advance(n)
	return v, nil
}

func (d *Decoder) DecodeUint64() (uint64, error) {
	v, n, err := DecodeUint64(d.Remaining())
	if err != nil {
		return 0, err
	}
	d.advance(n)
	return v, nil
}

func (d *Decoder) DecodeUvarint() (Uint128, error) {
	v, n, err := DecodeUvarint(d.Remaining())
	if err != nil {
		return Uint128{}, err
	}
	d.advance(n)
	return v, nil
}

func (d *Decoder) DecodeInt8() (int8, error) {
	v, n, err := DecodeInt8(d.Remaining())
	if err != nil {
		return 0, err
	}
	d.advance(n)
	return v, nil
}

func (d *Decoder) DecodeInt16() (int16, error) {
	v, n, err := DecodeInt16(d.Remaining())
	if err != nil {
		return 0, err
	}
	d.advance(n)
	return v, nil
}

func (d *Decoder) DecodeInt32() (int32, error) {
	v, n, err := DecodeInt32(d.Remaining())
	if err != nil {
		return 0, err
	}
	d.advance(n)
	return v, nil
}

func (d *Decoder) DecodeInt64() (int64, error) {
	v, n, err := DecodeInt64(d.Remaining())
	if err != nil {
		return 0, err
	}
	d.advance(n)
	return v, nil
}

func (d *Decoder) DecodeIvarint() (Int128, error) {
	v, n, err := DecodeIvarint(d.Remaining())
	if err != nil {
		return Int128{}, err
	}
	d.advance(n)
	return v, nil
}

func (d *Decoder) DecodeF32() (float32, error) {
	v, n, err := DecodeF32(d.Remaining())
	if err != nil {
		return 0, err
	}
	d.advance(n)
	return v, nil
}

func (d *Decoder) DecodeF64() (float64, error) {
	v, n, err := DecodeF64(d.Remaining())
	if err != nil {
		return 0, err
	}
	d.advance(n)
	return v, nil
}

func (d *Decoder) DecodeChar() (rune, error) {
	v, n, err := DecodeChar(d.Remaining())
	if err != nil {
		return 0, err
	}
	d.advance(n)
	return v, nil
}

func (d *Decoder) DecodeText() (string, error) {
	v, n, err := DecodeText(d.Remaining())
	if err != nil {
		return "", err
	}
	d.advance(n)
	return v, nil
}

func (d *Decoder) DecodeBytes() ([]byte, error) {
	v, n, err := DecodeBytes(d.Remaining())
	if err != nil {
		return nil, err
	}
	d.advance(n)
	return v, nil
}

func (d *Decoder) DecodeFixedBytes(n int) ([]byte, error) {
	v, consumed, err := DecodeFixedBytes(d.Remaining(), n)
	if err != nil {
		return nil, err
	}
	d.advance(consumed)
	return v, nil
}

func (d *Decoder) DecodeVariant() (uint64, error) {
	v, n, err := DecodeVariant(d.Remaining())
	if err != nil {
		return 0, err
	}
	d.advance(n)
	return v, nil
}

// DecodeOptionTag reads the option presence byte.
func (d *Decoder) DecodeOptionTag() (present bool, err error) {
	present, n, err := DecodeOptionTag(d.Remaining())
	if err != nil {
		return false, err
	}
	d.advance(n)
	return present, nil
}

// More reads the next sequence/map framing byte and reports whether
// another element follows.
func (d *Decoder) More() (bool, error) {
	more, n, err := More(d.Remaining())
	if err != nil {
		return false, err
	}
	d.advance(n)
	return more, nil
}

// DecodeFull runs fn against a fresh Decoder over src and requires
// that fn consume the entire input; any leftover bytes produce
// ErrTrailingInput.
func DecodeFull(src []byte, fn func(d *Decoder) error) error {
	d := NewDecoder(src)
	if err := fn(d); err != nil {
		return err
	}
	if !d.Done() {
		return ErrTrailingInput
	}
	return nil
}
