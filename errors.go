package bankconsole

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	// EBadRequest represents a form submission that cannot be sent upstream.
	EBadRequest ErrCode = "bad_request"
	// EUpstream represents a non-2xx response from the banking API.
	EUpstream ErrCode = "upstream"
	// ENetwork represents a call that produced no response at all.
	ENetwork ErrCode = "network"
	// EThrottle represents a console request rejected by rate limiting.
	EThrottle ErrCode = "throttle"
	// EInternal represents an internal error outside of our domain.
	EInternal ErrCode = "internal"
)

// DefaultErrorMessage is used when an upstream failure carries neither
// a message nor a reason phrase.
const DefaultErrorMessage = "request failed"

// Error represents an error within the console domain.
type Error interface {
	Error() string
	Code() ErrCode
	Message() string
}

// ErrCode is a machine readable code representing
// an error within the console domain.
type ErrCode string

// ErrBadRequest represents an invalid form submission.
type ErrBadRequest string

func (e ErrBadRequest) Code() ErrCode   { return EBadRequest }
func (e ErrBadRequest) Error() string   { return fmt.Sprintf("[%s] %s", e.Code(), string(e)) }
func (e ErrBadRequest) Message() string { return string(e) }

// ErrThrottle represents a rate limited console request.
type ErrThrottle string

func (e ErrThrottle) Code() ErrCode   { return EThrottle }
func (e ErrThrottle) Error() string   { return fmt.Sprintf("[%s] %s", e.Code(), string(e)) }
func (e ErrThrottle) Message() string { return string(e) }

// StatusError is returned when the banking API answers with a
// non-success status code. Msg is the human readable reason.
type StatusError struct {
	StatusCode int
	Msg        string
	Payload    Payload
}

func (e *StatusError) Code() ErrCode   { return EUpstream }
func (e *StatusError) Message() string { return e.Msg }
func (e *StatusError) Error() string {
	return fmt.Sprintf("[%s] %d: %s", e.Code(), e.StatusCode, e.Msg)
}

// NetworkError is returned when a call never produced a response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Code() ErrCode { return ENetwork }
func (e *NetworkError) Unwrap() error { return e.Err }
func (e *NetworkError) Message() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}
func (e *NetworkError) Error() string { return fmt.Sprintf("[%s] %s", e.Code(), e.Message()) }

// Failure wraps a domain error so that its message falls back to
// a default when the original message is empty.
type Failure struct {
	Err      Error
	Fallback string
}

func (e *Failure) Code() ErrCode { return e.Err.Code() }
func (e *Failure) Unwrap() error { return e.Err }
func (e *Failure) Error() string { return fmt.Sprintf("[%s] %s", e.Code(), e.Message()) }
func (e *Failure) Message() string {
	if msg := e.Err.Message(); msg != "" {
		return msg
	}
	return e.Fallback
}

// WithFallback attaches a fallback message to a domain error. Errors outside
// of the domain are returned unchanged.
func WithFallback(err error, fallback string) error {
	domainErr := DomainError(err)
	if domainErr == nil {
		return err
	}
	return &Failure{Err: domainErr, Fallback: fallback}
}

// DomainError returns a domain error if available.
func DomainError(err error) Error {
	if err == nil {
		return nil
	}

	if e, ok := err.(Error); ok {
		return e
	}

	var e Error
	if errors.As(err, &e) {
		return e
	}

	if e, ok := errors.Cause(err).(Error); ok {
		return e
	}

	return nil
}

// ErrorCode returns the code associated with a domain error.
// If an error is not part of the console domain, it
// returns Internal.
func ErrorCode(err error) ErrCode {
	if err == nil {
		return ErrCode("")
	}

	e := DomainError(err)
	if e == nil {
		return EInternal
	}

	return e.Code()
}
