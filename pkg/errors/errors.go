package errors

import "net/http"

// AppError is a custom error type that includes an HTTP status code
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// NewAppError creates a new AppError
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Common errors
var (
	ErrInvalidRequest     = NewAppError(http.StatusBadRequest, "Invalid request parameters")
	ErrForbidden          = NewAppError(http.StatusForbidden, "Access denied")
	ErrNotFound           = NewAppError(http.StatusNotFound, "Resource not found")
	ErrPayloadTooLarge    = NewAppError(http.StatusRequestEntityTooLarge, "Payload too large")
	ErrUnsupportedMedia   = NewAppError(http.StatusUnsupportedMediaType, "Unsupported media type")
	ErrRateLimit          = NewAppError(http.StatusTooManyRequests, "Rate limit exceeded")
	ErrInternalServer     = NewAppError(http.StatusInternalServerError, "Internal server error")
	ErrStorageUnavailable = NewAppError(http.StatusServiceUnavailable, "Storage unavailable")
)

// Helper functions to create specific errors
func BadRequest(msg string) *AppError {
	return NewAppError(http.StatusBadRequest, msg)
}

func NotFound(msg string) *AppError {
	return NewAppError(http.StatusNotFound, msg)
}

func Forbidden(msg string) *AppError {
	return NewAppError(http.StatusForbidden, msg)
}

func PayloadTooLarge(msg string) *AppError {
	return NewAppError(http.StatusRequestEntityTooLarge, msg)
}

func UnsupportedMedia(msg string) *AppError {
	return NewAppError(http.StatusUnsupportedMediaType, msg)
}

func Internal(msg string) *AppError {
	return NewAppError(http.StatusInternalServerError, msg)
}

func StorageUnavailable(msg string) *AppError {
	return NewAppError(http.StatusServiceUnavailable, msg)
}
