package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func NotFound(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound}
}

func Authorization(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusForbidden}
}

func Authentication(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusUnauthorized}
}

func TooManyRequests(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusTooManyRequests}
}

func Invariant(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest}
}

// StatusCode returns the http status carried by err, or 0 if err is not user-facing.
func StatusCode(err error) int {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

func IsAuthorization(err error) bool {
	return StatusCode(err) == http.StatusForbidden
}

// Validation error codes raised by entity constructors.
const (
	NotContainNeededProperty            = "NOT_CONTAIN_NEEDED_PROPERTY"
	NotMeetDataTypeSpecification        = "NOT_MEET_DATA_TYPE_SPECIFICATION"
	UsernameLimitChar                   = "USERNAME_LIMIT_CHAR"
	UsernameContainRestrictedCharacter  = "USERNAME_CONTAIN_RESTRICTED_CHARACTER"
	NotContainRefreshToken              = "NOT_CONTAIN_REFRESH_TOKEN"
	PayloadNotMeetDataTypeSpecification = "PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION"
)

// ValidationError is returned when a payload can't be turned into an entity.
// Entity is the upper snake case entity name, e.g. NEW_THREAD.
type ValidationError struct {
	Entity string
	Code   string
}

func (e *ValidationError) Error() string {
	return e.Entity + "." + e.Code
}

func Validation(entity, code string) error {
	return &ValidationError{Entity: entity, Code: code}
}

// IsValidation reports whether err is a ValidationError with the given code.
// Empty code matches any validation error.
func IsValidation(err error, code string) bool {
	var e *ValidationError
	if !errors.As(err, &e) {
		return false
	}
	return code == "" || e.Code == code
}

// ErrNotImplemented is returned by repository methods that have no concrete backend.
var ErrNotImplemented = errors.New("method not implemented")

func NotImplemented(repository string) error {
	return fmt.Errorf("%s.METHOD_NOT_IMPLEMENTED: %w", repository, ErrNotImplemented)
}
