package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Common error sentinel values
var (
	ErrBadRequest   = errors.New("malformed request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("resource conflict")
	ErrInternal     = errors.New("internal server error")
)

// ApiErr carries an HTTP status code alongside the error so handlers can map
// failures to responses without inspecting error strings.
type ApiErr struct {
	StatusCode int
	err        error
	Details    string              // Additional details about the error
	Fields     map[string][]string // Field-keyed detail for validation errors
	Cause      error               // The underlying cause of the error
}

func NewApiErr(statusCode int, message string) *ApiErr {
	return &ApiErr{
		StatusCode: statusCode,
		err:        errors.New(message),
	}
}

// implements error interface. this allows us to pass an instance of ApiErr as an argument of type `error`
func (e *ApiErr) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.err.Error(), e.Details)
	}
	return e.err.Error()
}

// this function allows us to do the following:
// err := &ApiErr{StatusCode: ..., err: someSentinelError}
// errors.Is(err, someSentinelError) ==> evaluates to true
func (e *ApiErr) Unwrap() error {
	return e.err
}

// Common error constructors with appropriate HTTP status codes

func NewNotFoundError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusNotFound, err: ErrNotFound, Details: message}
}

func NewBadRequestError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusBadRequest, err: ErrBadRequest, Details: message}
}

func NewUnauthorizedError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, err: ErrUnauthorized, Details: message}
}

func NewConflictError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusConflict, err: ErrConflict, Details: message}
}

func NewInternalError(message string, cause error) *ApiErr {
	return &ApiErr{StatusCode: http.StatusInternalServerError, err: ErrInternal, Details: message, Cause: cause}
}

// NewValidationError reports a 400 with per-field constraint violations.
func NewValidationError(message string, fields map[string][]string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusBadRequest, err: errors.New(message), Fields: fields}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
