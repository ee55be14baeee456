// Package response defines the API error envelope shared by handlers and middleware.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the envelope for every failed request.
type ErrorResponse struct {
	Error ErrorInfo `json:"error"`
}

// ErrorInfo carries the business error code and a user-facing message.
// Internal details never leave the server through this structure.
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "NOTE_NOT_FOUND"
	Message string `json:"message"` // User-friendly message
}

// Error writes an error response with the given status and business code.
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: ErrorInfo{
			Code:    errorCode,
			Message: message,
		},
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message)
}

// NotFound 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message)
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message)
}
