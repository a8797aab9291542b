package errors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// HttpError is the error shape returned by usecases and repositories.
// The helpers package maps it onto the response status code.
type HttpError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *HttpError) Error() string {
	return e.Message
}

func New(code int, message string) error {
	return &HttpError{Code: code, Message: message}
}

func BadRequest(message string) error {
	return New(fiber.StatusBadRequest, message)
}

func UnauthorizedError(message string) error {
	return New(fiber.StatusUnauthorized, message)
}

func ForbiddenError(message string) error {
	return New(fiber.StatusForbidden, message)
}

func NotFound(message string) error {
	return New(fiber.StatusNotFound, message)
}

func Conflict(message string) error {
	return New(fiber.StatusConflict, message)
}

func InternalServerError(message string) error {
	return New(fiber.StatusInternalServerError, message)
}

// StatusCode reports the HTTP status carried by err, defaulting to 500.
func StatusCode(err error) int {
	var httpErr *HttpError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	return fiber.StatusInternalServerError
}
