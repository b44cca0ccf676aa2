// Package errors provides the single error type returned by every stage of the
// request pipeline. Each AppError carries one of five kinds (configuration,
// encoding, transport, service, protocol) and a retryable flag set by the
// dispatcher's classifier.
package errors
