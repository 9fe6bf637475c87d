package booking

import "fmt"

type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &BookingError{Code: "validationError", Message: msg}
}

func NewNotFoundError(id string) error {
	return &BookingError{Code: "notFound", Message: fmt.Sprintf("booking %s not found", id)}
}
