// Package observability wires OpenTelemetry tracing and metrics into
// service calls.
//
// InitTracer and InitMeter install OTLP/HTTP exporting providers for
// applications that do not configure OpenTelemetry themselves. The client
// records one span and one set of measurements per call through
// Instrumentation, which uses the global providers unless others are given.
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("inventory-sync"), log)
//	defer tp.Shutdown(ctx)
package observability
