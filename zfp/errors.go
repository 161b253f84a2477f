package zfp

import "errors"

// ErrorCode classifies codec API failures.
type ErrorCode uint32

const (
	// Success reports no error.
	Success ErrorCode = 0

	// ErrBadParam reports an invalid argument (nil field, bad dimensionality, ...).
	ErrBadParam ErrorCode = 1

	// ErrBadType reports a scalar type the codec does not implement.
	ErrBadType ErrorCode = 2

	// ErrBadField reports a field descriptor whose shape or backing buffer is invalid.
	ErrBadField ErrorCode = 3

	// ErrBadStream reports a stream that is not configured for the requested
	// operation (no rate set, no bitstream bound, budget too small for the type).
	ErrBadStream ErrorCode = 4

	// ErrBufferTooSmall reports a bound output buffer that cannot hold the
	// serialized stream.
	ErrBufferTooSmall ErrorCode = 5
)

// Error is a typed codec error carrying an ErrorCode.
type Error struct {
	Code ErrorCode
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg != "" {
		return e.Msg
	}
	return "zfp: error"
}

// ErrorCodeOf returns the codec error code for err, or Success for nil.
//
// For non-*Error errors it returns ErrBadParam as a conservative fallback.
func ErrorCodeOf(err error) ErrorCode {
	if err == nil {
		return Success
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrBadParam
}

func newError(code ErrorCode, msg string) error {
	return &Error{Code: code, Msg: msg}
}
