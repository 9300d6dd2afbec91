package errs

import (
	"fmt"
	"net/http"
)

type HttpError struct {
	Code    int
	Message string
	Data    any
}

func (e *HttpError) Error() string {
	return fmt.Sprintf("code %d: %s, data: %v", e.Code, e.Message, e.Data)
}

var (
	ErrInvalidRequest = &HttpError{Code: http.StatusBadRequest, Message: "Invalid request"}
	ErrUnauthorized   = &HttpError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrBookingMissing = &HttpError{Code: http.StatusNotFound, Message: "Booking not found"}
)

func NotFound(message string) *HttpError {
	return &HttpError{Code: http.StatusNotFound, Message: message}
}

func Conflict(message string) *HttpError {
	return &HttpError{Code: http.StatusConflict, Message: message}
}
