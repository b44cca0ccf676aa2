package logger

import (
	"time"
)

// Standard field key constants for structured logging.
const (
	FieldComponent   = "component"
	FieldCallID      = "call_id"
	FieldAction      = "action"
	FieldVersion     = "version"
	FieldHost        = "host"
	FieldStatus      = "status"
	FieldRequestID   = "request_id"
	FieldServiceCode = "service_code"
	FieldErrorKind   = "error_kind"
	FieldAttempt     = "attempt"
	FieldBackoff     = "backoff_ms"
	FieldBytes       = "bytes"
	FieldError       = "error"
	FieldDuration    = "duration_ms"
)

// Fields builds a map[string]any from alternating key-value pairs.
//
//	log.Info("done", logger.Fields(logger.FieldAction, "GetReport", logger.FieldBytes, 42))
func Fields(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// DurationFields creates fields for a timed call.
func DurationFields(action string, d time.Duration) map[string]any {
	return map[string]any{
		FieldAction:   action,
		FieldDuration: d.Milliseconds(),
	}
}

// MergeWithError adds an error field to an existing map.
func MergeWithError(fields map[string]any, err error) map[string]any {
	if fields == nil {
		fields = make(map[string]any)
	}
	fields[FieldError] = err.Error()
	return fields
}
