package domain

import (
	"fmt"
	"strings"
)

// ValidationError is a local failure: the form never reaches the transport.
// Field-keyed messages render next to their inputs; bare messages render as a
// banner.
type ValidationError struct {
	Fields   map[string]string
	Messages []string
}

func (e *ValidationError) Error() string {
	if len(e.Messages) > 0 {
		return strings.Join(e.Messages, "; ")
	}
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(parts, "; ")
}

// NewValidationError builds a banner-style validation failure.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// AtLeastOneFieldMessage is the single user-facing lookup message when every
// filter field is empty after normalization.
const AtLeastOneFieldMessage = "At least one field needs to be selected"

// TransportError is a remote failure thrown by the submit/fetch abstraction:
// a non-2xx status or a failed round trip.
type TransportError struct {
	Endpoint string
	Status   int
	Reason   string
	Err      error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("%s: unexpected status code: %d", e.Endpoint, e.Status)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ErrorDetail is one entry of a 400-style rejection body.
type ErrorDetail struct {
	ErrorCode []string `json:"errorCode"`
}

// BusinessRejection is a successful transport call whose body encodes
// failure: a 400-style payload with errorDetails.
type BusinessRejection struct {
	Endpoint     string
	Status       int           `json:"status"`
	Reason       string        `json:"reason"`
	ErrorDetails []ErrorDetail `json:"errorDetails"`
}

func (e *BusinessRejection) Error() string {
	return fmt.Sprintf("%s: rejected with status %d", e.Endpoint, e.Status)
}

// Codes flattens the rejection into raw message codes, falling back to the
// reason and then the status when no details are present.
func (e *BusinessRejection) Codes() []string {
	var codes []string
	for _, detail := range e.ErrorDetails {
		codes = append(codes, detail.ErrorCode...)
	}
	if len(codes) == 0 && e.Reason != "" {
		codes = append(codes, e.Reason)
	}
	if len(codes) == 0 {
		codes = append(codes, fmt.Sprintf("%d", e.Status))
	}
	return codes
}
