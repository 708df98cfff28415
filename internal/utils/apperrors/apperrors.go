package apperrors

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error is an application failure meant for direct client display.
// It renders as {"message": Message, ...Payload} with status Code.
type Error struct {
	Code    int
	Message string
	Payload map[string]any
}

func New(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error carrying the same code, so a customised
// ErrNotAuthorized still satisfies errors.Is(err, ErrNotAuthorized).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithMessage returns a copy of e carrying message.
func (e *Error) WithMessage(format string, args ...any) *Error {
	return &Error{Code: e.Code, Message: fmt.Sprintf(format, args...), Payload: e.Payload}
}

// WithPayload returns a copy of e whose body also carries payload.
func (e *Error) WithPayload(payload map[string]any) *Error {
	return &Error{Code: e.Code, Message: e.Message, Payload: payload}
}

// ToMap builds the response body. The message wins over a payload key of the same name.
func (e *Error) ToMap() map[string]any {
	body := make(map[string]any, len(e.Payload)+1)
	for k, v := range e.Payload {
		body[k] = v
	}
	body["message"] = e.Message
	return body
}

var (
	ErrNotAuthorized  = New(fiber.StatusUnauthorized, "Not authorized")
	ErrPermissions    = New(fiber.StatusForbidden, "Access denied")
	ErrNotFound       = New(fiber.StatusNotFound, "Resource not found")
	ErrBadRequest     = New(fiber.StatusBadRequest, "Missing required fields or parameters")
	ErrConflict       = New(fiber.StatusConflict, "Resource already exists")
	ErrInternal       = New(fiber.StatusInternalServerError, "Internal Server Error")
	ErrNotImplemented = errors.New("feature not implemented")

	// Authentication
	ErrUserAlreadyExists = ErrConflict.WithMessage("User already exists")
	ErrCsrfTokenMismatch = ErrNotAuthorized.WithMessage("CSRF token missing or invalid")
	ErrInvalidToken      = ErrNotAuthorized.WithMessage("Invalid token")
	ErrInvalidTokenType  = ErrNotAuthorized.WithMessage("Invalid token type")
	ErrUnexpectedSigning = ErrNotAuthorized.WithMessage("Unexpected signing method")
)

// GetHTTPStatus retrieves the HTTP status code for a given error.
func GetHTTPStatus(err error) (int, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return 0, false
}
