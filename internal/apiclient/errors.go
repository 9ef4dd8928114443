package apiclient

import (
	"errors"
	"fmt"
)

// ErrRequestFailed is the only failure class callers distinguish: the
// catalog request did not produce a usable response.
var ErrRequestFailed = errors.New("catalog request failed")

// RequestError records what failed, for logging. Status is 0 when no
// response was received.
type RequestError struct {
	Method string
	Path   string
	Status int
	Err    error
}

func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Status)
	}
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

// Unwrap lets errors.Is match both ErrRequestFailed and the transport cause.
func (e *RequestError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrRequestFailed}
	}
	return []error{ErrRequestFailed, e.Err}
}
