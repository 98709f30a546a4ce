package certificates

import (
	"errors"
	"fmt"
)

// ErrNotFound matches any non-success HTTP response from the endpoint.
var ErrNotFound = errors.New("certificates: endpoint returned a non-success status")

// StatusError carries the HTTP status of a rejected request.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("certificates: unexpected status %d", e.StatusCode)
}

func (e *StatusError) Is(target error) bool { return target == ErrNotFound }

// APIError is returned when the endpoint answers successfully but reports
// todoOk=false. Message is the server's mensaje, unmodified.
type APIError struct {
	Message string
}

func (e *APIError) Error() string { return e.Message }
