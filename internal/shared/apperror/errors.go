package apperror

import "errors"

// ========================================
// ERROR KINDS
// ========================================
// Domain errors wrap one of these kinds, response.HandleError maps
// the kind to an HTTP status with errors.Is.

var (
	ErrNotFound             = errors.New("not found")
	ErrBadRequest           = errors.New("bad request")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrAccessDenied         = errors.New("access denied")
	ErrConflict             = errors.New("conflict")
	ErrDuplicate            = errors.New("duplicate")
	ErrPreconditionFailed   = errors.New("precondition failed")
)

// Error is a domain error with its own message that still matches its kind.
type Error struct {
	kind error
	msg  string
}

// New creates a domain error of the given kind.
func New(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.kind
}

// Kind returns the error kind.
func (e *Error) Kind() error {
	return e.kind
}
