package booking

import (
	"fmt"
	"strings"
)

// Error codes surfaced to the HTTP layer.
const (
	CodeInvalidRequest  = "invalidRequest"
	CodeNotFound        = "notFound"
	CodeForbidden       = "forbidden"
	CodeConflict        = "conflict"
	CodeSeatUnavailable = "seatUnavailable"
)

// ServiceError is a typed failure from the booking service. Seats carries the
// unavailable labels when Code is seatUnavailable.
type ServiceError struct {
	Code    string
	Message string
	Seats   []string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newInvalidRequest(msg string) error {
	return &ServiceError{Code: CodeInvalidRequest, Message: msg}
}

func newNotFound(what string) error {
	return &ServiceError{Code: CodeNotFound, Message: what + " not found"}
}

func newForbidden(msg string) error {
	return &ServiceError{Code: CodeForbidden, Message: msg}
}

func newConflict(msg string) error {
	return &ServiceError{Code: CodeConflict, Message: msg}
}

func newSeatUnavailable(seats []string) error {
	return &ServiceError{
		Code:    CodeSeatUnavailable,
		Message: fmt.Sprintf("Seats %s are not available", strings.Join(seats, ", ")),
		Seats:   seats,
	}
}
