package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrPersistenceFailure = errors.New("persistence failure")
	ErrMethodNotAllowed   = errors.New("method not allowed")
)

const (
	CodeInvalidInput       = "INVALID_INPUT"
	CodeNotFound           = "NOT_FOUND"
	CodePersistenceFailure = "PERSISTENCE_FAILURE"
	CodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	CodeInternalError      = "INTERNAL_ERROR"
)

// AppError represents application error with HTTP status
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Status)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation builds the ValidationError kind: bad input shape, raised before
// any side effect.
func Validation(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeInvalidInput, message, ErrInvalidInput)
}

func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, message, ErrNotFound)
}

// PersistenceFailure wraps an unsuccessful gateway call.
func PersistenceFailure(message string, err error) *AppError {
	if err == nil {
		err = ErrPersistenceFailure
	} else if !errors.Is(err, ErrPersistenceFailure) {
		err = errors.Join(ErrPersistenceFailure, err)
	}
	return NewAppError(http.StatusInternalServerError, CodePersistenceFailure, message, err)
}

func MethodNotAllowed() *AppError {
	return NewAppError(http.StatusMethodNotAllowed, CodeMethodNotAllowed, "Method not allowed", ErrMethodNotAllowed)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternalError, "internal server error", err)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsPersistence reports whether err came from an unsuccessful gateway call.
func IsPersistence(err error) bool {
	return errors.Is(err, ErrPersistenceFailure)
}
