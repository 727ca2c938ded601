package client

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"syscall"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeNetwork indicates a network-level error
	ErrTypeNetwork ErrorType = iota
	// ErrTypeTimeout indicates a request timeout or deadline
	ErrTypeTimeout
	// ErrTypeConnectionRefused indicates the server refused the connection
	ErrTypeConnectionRefused
	// ErrTypeDNS indicates a DNS resolution failure
	ErrTypeDNS
	// ErrTypeHTTP indicates a non-2xx status code
	ErrTypeHTTP
	// ErrTypeParse indicates a malformed response body
	ErrTypeParse
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeConnectionRefused:
		return "Connection Refused"
	case ErrTypeDNS:
		return "DNS Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeParse:
		return "Parse Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// CalcError represents a failed calculation request
type CalcError struct {
	Type       ErrorType // Category of error
	Message    string    // Human-readable error message
	StatusCode int       // HTTP status code (ErrTypeHTTP only)
	Detail     string    // Server-supplied error text, if any
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *CalcError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s: %s", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *CalcError) Unwrap() error {
	return e.Err
}

// ClassifyNetworkError analyzes a transport error and returns a typed error
func ClassifyNetworkError(message string, err error) *CalcError {
	if err == nil {
		return nil
	}

	typ := ErrTypeNetwork

	var dnsErr *net.DNSError
	var opErr *net.OpError
	switch {
	case os.IsTimeout(err) || errors.Is(err, os.ErrDeadlineExceeded):
		typ = ErrTypeTimeout
	case errors.As(err, &dnsErr):
		typ = ErrTypeDNS
	case errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED):
		typ = ErrTypeConnectionRefused
	case isContextDeadline(err):
		typ = ErrTypeTimeout
	}

	return &CalcError{Type: typ, Message: message, Err: err}
}

func isContextDeadline(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Timeout()
	}
	return false
}

// NewHTTPError creates an HTTP-level error
func NewHTTPError(statusCode int, detail string) *CalcError {
	return &CalcError{
		Type:       ErrTypeHTTP,
		Message:    fmt.Sprintf("unexpected status code: %d", statusCode),
		StatusCode: statusCode,
		Detail:     detail,
	}
}

// NewParseError creates a parsing error
func NewParseError(message string, err error) *CalcError {
	return &CalcError{Type: ErrTypeParse, Message: message, Err: err}
}

func typeOf(err error) (ErrorType, bool) {
	var cErr *CalcError
	if errors.As(err, &cErr) {
		return cErr.Type, true
	}
	return 0, false
}

// IsNetworkError checks if an error is a transport-level failure
func IsNetworkError(err error) bool {
	t, ok := typeOf(err)
	return ok && (t == ErrTypeNetwork || t == ErrTypeTimeout || t == ErrTypeConnectionRefused || t == ErrTypeDNS)
}

// IsHTTPError checks if an error is a non-2xx response
func IsHTTPError(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrTypeHTTP
}

// IsParseError checks if an error is a malformed response
func IsParseError(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrTypeParse
}

// ShortMessage returns a concise, user-facing description of err
func ShortMessage(err error) string {
	var cErr *CalcError
	if !errors.As(err, &cErr) {
		return err.Error()
	}

	switch cErr.Type {
	case ErrTypeTimeout:
		return "Calculation server not responding (timeout)"
	case ErrTypeConnectionRefused:
		return "Calculation server refused connection - is it running?"
	case ErrTypeDNS:
		return "Cannot resolve calculation server hostname"
	case ErrTypeNetwork:
		return "Network error - check connection"
	case ErrTypeHTTP:
		if cErr.Detail != "" {
			return fmt.Sprintf("Server error (HTTP %d): %s", cErr.StatusCode, cErr.Detail)
		}
		return fmt.Sprintf("Server error (HTTP %d)", cErr.StatusCode)
	case ErrTypeParse:
		return "Failed to parse calculation response"
	default:
		return cErr.Message
	}
}
