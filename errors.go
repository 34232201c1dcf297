package lexcode

import (
	"github.com/cockroachdb/errors"
)

// Sentinel errors returned by Decode* functions. Callers compare with
// errors.Is; both the stdlib and cockroachdb/errors implementations of
// Is are interchangeable here.
var (
	// ErrUnexpectedEOF means the decoder needed more bytes than the
	// input slice provided.
	ErrUnexpectedEOF = errors.New("lexcode: unexpected end of input")

	// ErrTrailingInput means a top-level decode left unconsumed bytes.
	ErrTrailingInput = errors.New("lexcode: trailing input after decode")

	// ErrMalformed means the input bytes violate a codec invariant:
	// a varint whose payload belongs to a shorter level, an escape
	// byte not followed by a valid continuation, an invalid Unicode
	// scalar value, or a boolean byte outside {0x00, 0x01}.
	ErrMalformed = errors.New("lexcode: malformed encoding")
)

// NewMessageError wraps an opaque shape-mismatch error reported by a
// driver above this package (for example, "expected struct field
// count 3, got 2"). It does not compare equal to any sentinel above.
func NewMessageError(format string, args ...interface{}) error {
	return errors.Newf("lexcode: "+format, args...)
}

func malformedf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformed, format, args...)
}
