// Package errs defines the structured error type returned by the platform
// business layer and its mapping onto HTTP status codes.
package errs

import (
	"errors"
	"net/http"
)

type ErrCode int

const (
	OK ErrCode = iota
	InvalidArgument
	NotFound
	AlreadyExists
	FailedPrecondition
	ResourceExhausted
	Aborted
	Unavailable
	Internal
	Unauthenticated
)

var codeNames = map[ErrCode]string{
	OK:                 "ok",
	InvalidArgument:    "invalid_argument",
	NotFound:           "not_found",
	AlreadyExists:      "already_exists",
	FailedPrecondition: "failed_precondition",
	ResourceExhausted:  "resource_exhausted",
	Aborted:            "aborted",
	Unavailable:        "unavailable",
	Internal:           "internal",
	Unauthenticated:    "unauthenticated",
}

func (c ErrCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the code by name so JSON bodies carry "not_found"
// rather than an ordinal.
func (c ErrCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ErrCode) UnmarshalText(text []byte) error {
	for code, name := range codeNames {
		if name == string(text) {
			*c = code
			return nil
		}
	}
	*c = Internal
	return nil
}

// HTTPStatus returns the status code written for errors carrying c.
func (c ErrCode) HTTPStatus() int {
	switch c {
	case OK:
		return http.StatusOK
	case InvalidArgument:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case AlreadyExists, Aborted:
		return http.StatusConflict
	case FailedPrecondition:
		return http.StatusPreconditionFailed
	case ResourceExhausted:
		return http.StatusTooManyRequests
	case Unavailable:
		return http.StatusBadGateway
	case Unauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Details carries structured context serialized next to the message.
type Details map[string]any

type Error struct {
	Code    ErrCode `json:"code"`
	Message string  `json:"message"`
	Details Details `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return e.Code.String() + ": " + e.Message
}

// Code reports the ErrCode of err, Internal for foreign errors and OK for nil.
func Code(err error) ErrCode {
	if err == nil {
		return OK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return Internal
}

// Is reports whether err carries the given code.
func Is(err error, code ErrCode) bool {
	return err != nil && Code(err) == code
}
