package server

import "fmt"

type ErrorCode uint

const (
	ErrUnknown ErrorCode = iota
	ErrInternalServerError
	ErrNotFound
	ErrBadParamInput
	ErrConflict
)

// Error carries the cause of a failed service call together with the code the
// rest layer translates into an http status.
type Error struct {
	orig error
	msg  string
	code ErrorCode
}

// WrapErrorf wraps orig with a code and a formatted message.
func WrapErrorf(orig error, code ErrorCode, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

// NewErrorf builds an Error without an underlying cause.
func NewErrorf(code ErrorCode, format string, a ...interface{}) error {
	return WrapErrorf(nil, code, format, a...)
}

func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

func (e *Error) Code() ErrorCode {
	return e.code
}
