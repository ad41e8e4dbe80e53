package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an HTTP-aware failure raised where it is detected and rendered once
// by the response layer. Fields is set only for validation failures.
type Error struct {
	Status  int
	Code    string
	Message string
	Fields  map[string][]string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func WithMessage(status int, code, message string, err error) *Error {
	return &Error{Status: status, Code: code, Message: message, Err: err}
}

func Unauthorized(code, message string) *Error {
	return WithMessage(http.StatusUnauthorized, code, message, nil)
}

func NotFound(code, message string) *Error {
	return WithMessage(http.StatusNotFound, code, message, nil)
}

func Internal(code, message string, err error) *Error {
	return WithMessage(http.StatusInternalServerError, code, message, err)
}

func Validation(fields map[string][]string) *Error {
	return &Error{Status: http.StatusUnprocessableEntity, Code: "validation_error", Fields: fields}
}

// As unwraps err into an *Error when one is present in the chain.
func As(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) && ae != nil {
		return ae, true
	}
	return nil, false
}
