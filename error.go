package sitefetch

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	ECANCELED = "canceled"
	EFETCH    = "fetch"
	EINTERNAL = "internal"
	EINVALID  = "invalid"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("sitefetch error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// FetchError reports a transport failure for a single URL.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ErrCanceled matches every CanceledError via errors.Is.
var ErrCanceled = errors.New("download canceled")

// CanceledError reports that a run was stopped by its Canceler.
// It is not a failure: Completed results were fetched and reported
// before the cancellation checkpoint observed the signal.
type CanceledError struct {
	Completed int
	Total     int
}

func (e *CanceledError) Error() string {
	return fmt.Sprintf("download canceled after %d of %d resources", e.Completed, e.Total)
}

// Is reports whether target is ErrCanceled.
func (e *CanceledError) Is(target error) bool {
	return target == ErrCanceled
}

// IsCanceled reports whether err is the result of a cancellation.
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var ce *CanceledError
	if errors.As(err, &ce) {
		return ECANCELED
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return EFETCH
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	var ce *CanceledError
	if errors.As(err, &ce) {
		return ce.Error()
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Error()
	}
	return "Internal error"
}
