package types

import "fmt"

// ErrorKind represents different categories of client errors
type ErrorKind string

const (
	ErrorKindAuthentication ErrorKind = "authentication"
	ErrorKindValidation     ErrorKind = "validation"
	ErrorKindConnectivity   ErrorKind = "connectivity"
	ErrorKindSerialization  ErrorKind = "serialization"
	ErrorKindUploadIO       ErrorKind = "upload_io"
	ErrorKindNotFound       ErrorKind = "not_found"
	ErrorKindInternal       ErrorKind = "internal"
)

// ClientError represents a structured error in the APR-CV client
type ClientError struct {
	Kind       ErrorKind `json:"kind"`
	StatusCode int       `json:"status_code,omitempty"`
	Message    string    `json:"message"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *ClientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause error
func (e *ClientError) Unwrap() error {
	return e.Cause
}

// NewAuthenticationError creates an error for rejected/unauthenticated requests
func NewAuthenticationError(statusCode int, message string) *ClientError {
	return &ClientError{
		Kind:       ErrorKindAuthentication,
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewValidationError creates an error for a request the server (or the
// client-side validator) rejected for domain reasons
func NewValidationError(statusCode int, message string) *ClientError {
	return &ClientError{
		Kind:       ErrorKindValidation,
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewAPIError maps a non-2xx response to a structured error. The message is
// the server-provided detail when one was parseable, otherwise a generic
// "request failed" string built by the caller.
func NewAPIError(statusCode int, message string) *ClientError {
	kind := ErrorKindValidation
	switch {
	case statusCode == 401 || statusCode == 403:
		kind = ErrorKindAuthentication
	case statusCode == 404:
		kind = ErrorKindNotFound
	case statusCode >= 500:
		kind = ErrorKindInternal
	}
	return &ClientError{
		Kind:       kind,
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewConnectivityError creates an error for transport-level failures
func NewConnectivityError(message string, cause error) *ClientError {
	return &ClientError{
		Kind:    ErrorKindConnectivity,
		Message: message,
		Cause:   cause,
	}
}

// NewSerializationError creates an error for response bodies that do not
// match the expected shape
func NewSerializationError(message string, cause error) *ClientError {
	return &ClientError{
		Kind:    ErrorKindSerialization,
		Message: message,
		Cause:   cause,
	}
}

// NewUploadIOError creates an error for local read / stream write failures
// during an upload, surfaced distinctly from server-side errors
func NewUploadIOError(message string, cause error) *ClientError {
	return &ClientError{
		Kind:    ErrorKindUploadIO,
		Message: message,
		Cause:   cause,
	}
}

// IsAuthenticationError reports whether err is an authentication failure
func IsAuthenticationError(err error) bool {
	return errKind(err) == ErrorKindAuthentication
}

// IsConnectivityError reports whether err is a transport-level failure
func IsConnectivityError(err error) bool {
	return errKind(err) == ErrorKindConnectivity
}

// IsUploadIOError reports whether err is a local upload I/O failure
func IsUploadIOError(err error) bool {
	return errKind(err) == ErrorKindUploadIO
}

func errKind(err error) ErrorKind {
	for err != nil {
		if ce, ok := err.(*ClientError); ok {
			return ce.Kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}
