// Package client dispatches signed calls to the service and turns each
// response into a decoded result or a classified error.
//
// A call encodes its parameters once, then for every attempt signs them
// with a fresh timestamp, POSTs the form body and inspects the status:
// 2xx bodies are unwrapped by the envelope package, anything else is
// decoded as an error envelope and returned as a service error.
//
//	c, err := client.New(cfg)
//	resp, err := client.Invoke(ctx, c, op, params, decoder)
//
// Retries are off unless Config.Retry is set. Raw downloads are never
// retried.
package client
