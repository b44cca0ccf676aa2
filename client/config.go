package client

import (
	"net/url"
	"strings"
	"time"

	"github.com/kbukum/mws/config"
	"github.com/kbukum/mws/errors"
	"github.com/kbukum/mws/logger"
	"github.com/kbukum/mws/region"
	"github.com/kbukum/mws/resilience"
	"github.com/kbukum/mws/security"
	"github.com/kbukum/mws/signer"
	"github.com/kbukum/mws/validation"
)

const defaultTimeout = 60 * time.Second

// Config configures a Client.
type Config struct {
	// Region selects the endpoint host (na, eu, in, cn, jp, au).
	Region string `yaml:"region" mapstructure:"region"`
	// Endpoint overrides the region host with an absolute URL, for
	// sandboxes and test servers.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint" validate:"omitempty,url"`

	signer.Credentials `yaml:",inline" mapstructure:",squash"`

	// Timeout bounds one round-trip. Downloads are bounded only until the
	// response headers arrive. Defaults to 60s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	TLS *security.TLSConfig `yaml:"tls" mapstructure:"tls"`

	// UserAgent identifies the application; it is prepended to the
	// library's own product token.
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`

	// VerifyContentMD5 checks downloaded bodies against their Content-MD5.
	VerifyContentMD5 bool `yaml:"verify_content_md5" mapstructure:"verify_content_md5"`

	// Retry resends calls that failed with a retryable error. Nil disables it.
	Retry *resilience.RetryConfig `yaml:"retry" mapstructure:"retry"`

	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	c.Region = strings.ToLower(strings.TrimSpace(c.Region))
}

// Validate checks credentials, the endpoint and nested settings.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if c.Endpoint == "" {
		if c.Region == "" {
			return errors.Configuration("region", "region or endpoint is required")
		}
		if _, ok := region.Get(c.Region); !ok {
			return errors.Configuration("region", "unknown region "+c.Region+", expected one of "+strings.Join(region.IDs(), ", "))
		}
	}
	if c.Timeout <= 0 {
		return errors.Configuration("timeout", "timeout must be positive")
	}
	if c.Logging.Level != "" {
		if err := c.Logging.Validate(); err != nil {
			return err
		}
	}
	return c.TLS.Validate()
}

// target returns the scheme and host requests are sent to.
func (c *Config) target() (scheme, host string, err error) {
	if c.Endpoint == "" {
		host, err := region.Endpoint(c.Region)
		return "https", host, err
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil || u.Host == "" || (u.Scheme != "https" && u.Scheme != "http") {
		return "", "", errors.Configuration("endpoint", "endpoint must be an absolute http(s) URL")
	}
	return u.Scheme, u.Host, nil
}

// LoadConfig reads a Config from mws.yml, .env and MWS_ environment
// variables, then applies defaults and validates it.
func LoadConfig(opts ...config.LoaderOption) (Config, error) {
	var cfg Config
	err := config.Load(&cfg, opts...)
	return cfg, err
}
