package lexcode

// Encoder accumulates an order-preserving byte encoding over a series
// of Emit calls. It holds no state beyond its output buffer, so a
// goroutine pool can each build its own Encoder without synchronization.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an Encoder with dst as its initial buffer
// (typically nil, or a slice with spare capacity reused across calls).
func NewEncoder(dst []byte) *Encoder {
	return &Encoder{buf: dst}
}

// Bytes returns the accumulated encoding.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Reset clears the encoder's buffer, keeping the underlying array's
// capacity for reuse.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
}

func (e *Encoder) EmitBool(v bool) *Encoder          { e.buf = EmitBool(e.buf, v); return e }
func (e *Encoder) EmitUint8(v uint8) *Encoder        { e.buf = EmitUint8(e.buf, v); return e }
func (e *Encoder) EmitUint16(v uint16) *Encoder      { e.buf = EmitUint16(e.buf, v); return e }
func (e *Encoder) EmitUint32(v uint32) *Encoder      { e.buf = EmitUint32(e.buf, v); return e }
func (e *Encoder) EmitUint64(v uint64) *Encoder      { e.buf = EmitUint64(e.buf, v); return e }
func (e *Encoder) EmitUvarint(v Uint128) *Encoder    { e.buf = EmitUvarint(e.buf, v); return e }
func (e *Encoder) EmitInt8(v int8) *Encoder          { e.buf = EmitInt8(e.buf, v); return e }
func (e *Encoder) EmitInt16(v int16) *Encoder        { e.buf = EmitInt16(e.buf, v); return e }
func (e *Encoder) EmitInt32(v int32) *Encoder        { e.buf = EmitInt32(e.buf, v); return e }
func (e *Encoder) EmitInt64(v int64) *Encoder        { e.buf = EmitInt64(e.buf, v); return e }
func (e *Encoder) EmitIvarint(v Int128) *Encoder     { e.buf = EmitIvarint(e.buf, v); return e }
func (e *Encoder) EmitF32(v float32) *Encoder        { e.buf = EmitF32(e.buf, v); return e }
func (e *Encoder) EmitF64(v float64) *Encoder        { e.buf = EmitF64(e.buf, v); return e }
func (e *Encoder) EmitChar(v rune) *Encoder          { e.buf = EmitChar(e.buf, v); return e }
func (e *Encoder) EmitText(v string) *Encoder        { e.buf = EmitText(e.buf, v); return e }
func (e *Encoder) EmitBytes(v []byte) *Encoder       { e.buf = EmitBytes(e.buf, v); return e }
func (e *Encoder) EmitFixedBytes(v []byte) *Encoder  { e.buf = EmitFixedBytes(e.buf, v); return e }
func (e *Encoder) EmitUnit() *Encoder                { e.buf = EmitUnit(e.buf); return e }
func (e *Encoder) EmitVariant(d uint64) *Encoder     { e.buf = EmitVariant(e.buf, d); return e }
func (e *Encoder) EmitOptionNone() *Encoder          { e.buf = EmitOptionNone(e.buf); return e }
func (e *Encoder) EmitOptionSomePrefix() *Encoder    { e.buf = EmitOptionSomePrefix(e.buf); return e }

// BeginSeq starts a variable-length sequence or map; no bytes are
// emitted, it exists only to pair visually with EndSeq/EndMap at call
// sites that drive this encoder from a shape visitor.
func (e *Encoder) BeginSeq() *Encoder { return e }

// SeqElement emits the per-element marker before the caller encodes
// the element itself.
func (e *Encoder) SeqElement() *Encoder { e.buf = BeginElement(e.buf); return e }

// EndSeq closes a sequence.
func (e *Encoder) EndSeq() *Encoder { e.buf = EndSeq(e.buf); return e }

// BeginMap starts a map; see BeginSeq.
func (e *Encoder) BeginMap() *Encoder { return e }

// MapEntry emits the per-entry marker before the caller encodes the
// entry's key and then its value.
func (e *Encoder) MapEntry() *Encoder { e.buf = BeginElement(e.buf); return e }

// EndMap closes a map.
func (e *Encoder) EndMap() *Encoder { e.buf = EndMap(e.buf); return e }

// EmitAny always fails: the format is not self-describing, so there is
// deliberately no value-agnostic emit path. A driver that needs to
// serialize a dynamically-typed value must dispatch to a concrete
// EmitX call itself.
func (e *Encoder) EmitAny() error {
	return NewMessageError("EmitAny: lexcode is not self-describing, no value-agnostic emit path exists")
}
