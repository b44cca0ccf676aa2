package errors

// ErrorCode represents a machine-readable error kind.
type ErrorCode string

// Pipeline error kinds.
const (
	// ErrCodeConfiguration indicates missing or invalid credentials, region or endpoint.
	ErrCodeConfiguration ErrorCode = "CONFIGURATION_ERROR"
	// ErrCodeEncoding indicates a parameter could not be canonicalized.
	ErrCodeEncoding ErrorCode = "ENCODING_ERROR"
	// ErrCodeTransport indicates a connection, DNS or TLS failure.
	ErrCodeTransport ErrorCode = "TRANSPORT_ERROR"
	// ErrCodeTimeout indicates the round-trip exceeded its deadline.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeService indicates the service answered with an error envelope.
	ErrCodeService ErrorCode = "SERVICE_ERROR"
	// ErrCodeProtocol indicates a response that breaks the operation contract.
	ErrCodeProtocol ErrorCode = "PROTOCOL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeTransport: true,
	ErrCodeTimeout:   true,
}

// IsRetryableCode returns true if the error kind is retryable regardless of
// the service code it carries. Service errors are classified per code.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}

// Service error codes answered when the caller is being throttled or the
// service is temporarily unable to handle the call.
var throttlingServiceCodes = map[string]bool{
	"RequestThrottled":   true,
	"QuotaExceeded":      true,
	"Throttled":          true,
	"ServiceUnavailable": true,
	"InternalError":      true,
	"RequestTimeout":     true,
}

// IsThrottlingCode reports whether a service error code marks a transient
// condition that may succeed when the identical call is resent later.
func IsThrottlingCode(serviceCode string) bool {
	return throttlingServiceCodes[serviceCode]
}
