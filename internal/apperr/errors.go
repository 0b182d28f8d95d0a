package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure so the error middleware can map it to a status
// code and error_code without inspecting message text.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindCredentialMissing
	KindCredentialInvalid
	KindForbidden
	KindNotFound
	KindConflict
	KindUploadRejected
)

// Error is the domain failure carried from services and middleware to the
// error normalizer. Details holds per-field validation messages.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Details []string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status code for the error kind.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindConflict, KindUploadRejected:
		return http.StatusBadRequest
	case KindCredentialMissing:
		return http.StatusUnauthorized
	case KindCredentialInvalid, KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// As extracts an *Error from an error chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func Validation(message string, details ...string) *Error {
	return &Error{Kind: KindValidation, Code: "VALIDATION_ERROR", Message: message, Details: details}
}

// InvalidCredentials is the login failure: a 400, distinct from the 403 a
// bad token produces.
func InvalidCredentials() *Error {
	return &Error{Kind: KindValidation, Code: "INVALID_CREDENTIALS", Message: "invalid email or password"}
}

func CredentialMissing() *Error {
	return &Error{Kind: KindCredentialMissing, Code: "AUTH_REQUIRED", Message: "authorization header is required"}
}

func CredentialInvalid(message string) *Error {
	return &Error{Kind: KindCredentialInvalid, Code: "INVALID_TOKEN", Message: message}
}

func Forbidden() *Error {
	return &Error{Kind: KindForbidden, Code: "FORBIDDEN", Message: "you do not own this resource"}
}

func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Code: "NOT_FOUND", Message: resource + " not found"}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Code: "CONFLICT", Message: message}
}

func UploadRejected(message string) *Error {
	return &Error{Kind: KindUploadRejected, Code: "UPLOAD_REJECTED", Message: message}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Code: "INTERNAL_ERROR", Message: "internal server error", Err: err}
}
