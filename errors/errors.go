package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Detail keys used by service errors.
const (
	DetailServiceCode = "service_code"
	DetailRequestID   = "request_id"
	DetailType        = "type"
	DetailDetail      = "detail"
	DetailField       = "field"
	DetailHeader      = "header"
)

// AppError is the unified pipeline error type.
type AppError struct {
	// Code is the machine-readable error kind.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the call can be resent.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the status code the service answered with, if any.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// detailString returns a string detail or "".
func (e *AppError) detailString(key string) string {
	if e.Details == nil {
		return ""
	}
	s, _ := e.Details[key].(string)
	return s
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Retryable:  IsRetryableCode(code),
	}
}

// --- Pipeline error constructors ---

// Configuration creates an error for a missing or invalid configuration field.
func Configuration(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details[DetailField] = field
	}
	return &AppError{
		Code: ErrCodeConfiguration, Message: fmt.Sprintf("invalid configuration: %s", reason),
		Retryable: false, Details: details,
	}
}

// MissingCredential creates a configuration error for an empty credential field.
func MissingCredential(field string) *AppError {
	return Configuration(field, fmt.Sprintf("missing required credential %s", field))
}

// Encoding creates an error for a parameter that cannot be canonicalized.
func Encoding(key, reason string) *AppError {
	return &AppError{
		Code: ErrCodeEncoding, Message: fmt.Sprintf("cannot encode parameter %q: %s", key, reason),
		Retryable: false, Details: map[string]any{DetailField: key},
	}
}

// Transport creates an error for a connection-level failure.
func Transport(operation string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeTransport, Message: fmt.Sprintf("%s: request could not be delivered", operation),
		Retryable: true, Cause: cause,
	}
}

// Timeout creates an error for a round-trip that exceeded its deadline.
func Timeout(operation string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeTimeout, Message: fmt.Sprintf("%s: request timed out", operation),
		HTTPStatus: http.StatusGatewayTimeout, Retryable: true, Cause: cause,
	}
}

// Service creates an error from a decoded service error envelope.
// Retryable is derived from the HTTP status and the service code.
func Service(httpStatus int, serviceCode, message, requestID string) *AppError {
	retryable := IsThrottlingCode(serviceCode) ||
		httpStatus == http.StatusInternalServerError ||
		httpStatus == http.StatusServiceUnavailable
	if message == "" {
		message = fmt.Sprintf("HTTP %d", httpStatus)
	}
	details := map[string]any{DetailServiceCode: serviceCode}
	if requestID != "" {
		details[DetailRequestID] = requestID
	}
	return &AppError{
		Code: ErrCodeService, Message: message,
		HTTPStatus: httpStatus, Retryable: retryable, Details: details,
	}
}

// Protocol creates an error for a response that violates the operation contract.
func Protocol(reason string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeProtocol, Message: reason,
		Retryable: false, Cause: cause,
	}
}

// MissingHeader creates a protocol error for an absent required response header.
func MissingHeader(header string) *AppError {
	return Protocol(fmt.Sprintf("required response header %s is missing", header), nil).
		WithDetail(DetailHeader, header)
}

// --- Inspection helpers ---

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	_, ok := AsAppError(err)
	return ok
}

// HasCode checks if err is an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	e, ok := AsAppError(err)
	return ok && e.Code == code
}

// IsConfiguration checks if err is a configuration error.
func IsConfiguration(err error) bool { return HasCode(err, ErrCodeConfiguration) }

// IsEncoding checks if err is an encoding error.
func IsEncoding(err error) bool { return HasCode(err, ErrCodeEncoding) }

// IsTransport checks if err is a transport or timeout error.
func IsTransport(err error) bool {
	return HasCode(err, ErrCodeTransport) || HasCode(err, ErrCodeTimeout)
}

// IsService checks if err is a service error.
func IsService(err error) bool { return HasCode(err, ErrCodeService) }

// IsProtocol checks if err is a protocol error.
func IsProtocol(err error) bool { return HasCode(err, ErrCodeProtocol) }

// IsRetryable checks if err is an AppError marked retryable.
func IsRetryable(err error) bool {
	e, ok := AsAppError(err)
	return ok && e.Retryable
}

// ServiceCode returns the service error code carried by err, or "".
func ServiceCode(err error) string {
	if e, ok := AsAppError(err); ok {
		return e.detailString(DetailServiceCode)
	}
	return ""
}

// RequestID returns the service request id carried by err, or "".
func RequestID(err error) string {
	if e, ok := AsAppError(err); ok {
		return e.detailString(DetailRequestID)
	}
	return ""
}
