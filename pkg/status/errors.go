package status

import (
	"context"
	"errors"
	"syscall"
)

// Coder is implemented by errors that carry a shared-space status code.
type Coder interface {
	StatusCode() Code
}

// Error is a status code carried as a Go error.
type Error struct {
	Code Code
	// Op names the operation that failed. Optional.
	Op string
}

// Err returns an *Error for c, or nil if c is OK.
func Err(c Code) error {
	if c == OK {
		return nil
	}
	return &Error{Code: c}
}

// Error implements error.
func (e *Error) Error() string {
	desc := Default().SafeDesc(e.Code)
	if e.Op == "" {
		return desc
	}
	return e.Op + ": " + desc
}

// StatusCode implements Coder.
func (e *Error) StatusCode() Code {
	return e.Code
}

// Is reports whether target is an *Error with the same code, so that
// errors.Is(err, status.Err(c)) matches regardless of Op.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// FromError maps an error to a status code against the default registry.
func FromError(err error) Code {
	return Default().FromError(err)
}

// FromError maps an error to a status code. Coders report their own code,
// syscall.Errno values are modulated into the errno domain, and context
// errors become ETIMEDOUT or ECANCELED. Anything else is DDCOther.
func (r *Registry) FromError(err error) Code {
	if err == nil {
		return OK
	}

	var c Coder
	if errors.As(err, &c) {
		return c.StatusCode()
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		return r.Errno(errno)
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return r.Errno(syscall.ETIMEDOUT)
	case errors.Is(err, context.Canceled):
		return r.Errno(syscall.ECANCELED)
	}
	return DDCOther
}
