// internal/domain/homework/errors.go
package homework

import (
	"errors"
	"fmt"
)

// Kind classifies every failure the poll loop can observe.
type Kind int

const (
	KindInternal Kind = iota // Anything outside the documented taxonomy
	KindTransport
	KindUnexpectedStatus
	KindMalformedResponse
	KindMissingField
	KindUnknownStatus
	KindDelivery
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindUnexpectedStatus:
		return "unexpected_status"
	case KindMalformedResponse:
		return "malformed_response"
	case KindMissingField:
		return "missing_field"
	case KindUnknownStatus:
		return "unknown_status"
	case KindDelivery:
		return "delivery"
	default:
		return "internal"
	}
}

// Sentinels for errors.Is checks. An *Error matches the sentinel of its Kind.
var (
	ErrInternal          = &Error{Kind: KindInternal}
	ErrTransport         = &Error{Kind: KindTransport}
	ErrUnexpectedStatus  = &Error{Kind: KindUnexpectedStatus}
	ErrMalformedResponse = &Error{Kind: KindMalformedResponse}
	ErrMissingField      = &Error{Kind: KindMissingField}
	ErrUnknownStatus     = &Error{Kind: KindUnknownStatus}
	ErrDelivery          = &Error{Kind: KindDelivery}
)

// Error is the single error type produced by the homework pipeline.
type Error struct {
	Kind       Kind
	Field      string // MissingField / MalformedResponse: offending key
	StatusCode int    // UnexpectedStatus: HTTP status returned by the API
	Value      string // UnknownStatus: the status that was not recognised
	Msg        string
	Err        error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindUnexpectedStatus:
		msg = fmt.Sprintf("API returned status %d", e.StatusCode)
	case KindMissingField:
		msg = fmt.Sprintf("key %q is missing in API response", e.Field)
	case KindUnknownStatus:
		msg = fmt.Sprintf("undocumented homework status %q", e.Value)
	default:
		msg = e.Msg
	}
	if msg == "" {
		msg = e.Kind.String() + " error"
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel (or any *Error) of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind of err. Errors outside the taxonomy are KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func malformed(field, msg string) *Error {
	return &Error{Kind: KindMalformedResponse, Field: field, Msg: msg}
}

func missing(field string) *Error {
	return &Error{Kind: KindMissingField, Field: field}
}
