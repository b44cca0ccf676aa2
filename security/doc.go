// Package security builds the TLS client configuration used by the service
// transport: a custom CA bundle for proxies and sandboxes, an optional
// client certificate, and a minimum protocol version.
//
//	cfg := security.TLSConfig{CAFile: "/etc/ssl/corp-proxy.pem"}
//	tlsConfig, err := cfg.Build()
package security
