package hssctl

import (
	"errors"
	"fmt"
)

// Common errors returned by the hssctl client.
var (
	// ErrSubscriberNotFound is returned when the API has no subscriber for an IMSI.
	ErrSubscriberNotFound = errors.New("subscriber not found")

	// ErrAPNNotFound is returned when the API has no APN with the given name.
	ErrAPNNotFound = errors.New("apn not found")

	// ErrIMSSubscriberNotFound is returned when the API has no IMS subscriber record.
	ErrIMSSubscriberNotFound = errors.New("ims subscriber not found")
)

// ValidationError is returned when local validation of configuration or
// request parameters fails. No network call has been made.
// Extractable via errors.As().
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// RemoteError is returned when the API host answered with a non-2xx status.
// Body carries the response body verbatim, truncated for display.
// Extractable via errors.As().
type RemoteError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: API responded with HTTP %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("%s: API responded with HTTP %d: %s", e.Operation, e.StatusCode, e.Body)
}

// TransportError is returned when the API host could not be reached at all:
// DNS failure, connection refused, or timeout. Supports Unwrap().
type TransportError struct {
	Operation string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: cannot reach API: %v", e.Operation, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
