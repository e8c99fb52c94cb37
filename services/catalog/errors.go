package catalog

import "fmt"

// Error codes surfaced to the HTTP layer.
const (
	CodeInvalidRequest = "invalidRequest"
	CodeNotFound       = "notFound"
	CodeConflict       = "conflict"
)

// ServiceError is a typed failure from the catalog service.
type ServiceError struct {
	Code    string
	Message string
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

func newConflict(msg string) error {
	return &ServiceError{Code: CodeConflict, Message: msg}
}
