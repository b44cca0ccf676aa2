package httpclient

import (
	"time"

	"github.com/kbukum/mws/errors"
	"github.com/kbukum/mws/security"
)

const (
	defaultTimeout = 30 * time.Second
)

// Config configures the transport.
type Config struct {
	// Timeout bounds Do round-trips including the body read. Streams are
	// bounded by the caller's context instead. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// TLS configures the transport's TLS settings.
	TLS *security.TLSConfig `yaml:"tls" mapstructure:"tls"`

	// UserAgent is sent on every request when set.
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return errors.Configuration("timeout", "timeout must be positive")
	}
	return c.TLS.Validate()
}
