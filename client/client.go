package client

import (
	"context"
	"net/http"

	"github.com/kbukum/mws/httpclient"
	"github.com/kbukum/mws/logger"
	"github.com/kbukum/mws/observability"
	"github.com/kbukum/mws/signer"
	"github.com/kbukum/mws/version"
)

// RequestIDHeader carries the service request id on every response.
const RequestIDHeader = "x-mws-request-id"

// Client dispatches signed calls and classifies their outcome. It is safe
// for concurrent use.
type Client struct {
	cfg       Config
	scheme    string
	host      string
	signer    *signer.Signer
	transport *httpclient.Adapter
	log       *logger.Logger
	inst      *observability.Instrumentation
}

// Option configures a Client.
type Option func(*options)

type options struct {
	log           *logger.Logger
	inst          *observability.Instrumentation
	signerOpts    []signer.Option
	transportOpts []httpclient.Option
}

// WithLogger replaces the logger built from Config.Logging.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithInstrumentation enables call spans and metrics.
func WithInstrumentation(i *observability.Instrumentation) Option {
	return func(o *options) { o.inst = i }
}

// WithSignerOptions passes options to the request signer.
func WithSignerOptions(opts ...signer.Option) Option {
	return func(o *options) { o.signerOpts = append(o.signerOpts, opts...) }
}

// WithTransportOptions passes options to the HTTP transport.
func WithTransportOptions(opts ...httpclient.Option) Option {
	return func(o *options) { o.transportOpts = append(o.transportOpts, opts...) }
}

// WithHTTPTransport replaces the HTTP round tripper.
func WithHTTPTransport(rt http.RoundTripper) Option {
	return WithTransportOptions(httpclient.WithRoundTripper(rt))
}

// New validates cfg and builds a Client.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	scheme, host, err := cfg.target()
	if err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	s, err := signer.New(cfg.Credentials, o.signerOpts...)
	if err != nil {
		return nil, err
	}

	transport, err := httpclient.New(httpclient.Config{
		Timeout:   cfg.Timeout,
		TLS:       cfg.TLS,
		UserAgent: version.UserAgent(cfg.UserAgent),
	}, o.transportOpts...)
	if err != nil {
		return nil, err
	}

	log := o.log
	if log == nil {
		if cfg.Logging.Level == "" {
			log = logger.Nop()
		} else {
			log = logger.New(cfg.Logging, "mws")
		}
	}

	return &Client{
		cfg:       cfg,
		scheme:    scheme,
		host:      host,
		signer:    s,
		transport: transport,
		log:       log.WithComponent("client"),
		inst:      o.inst,
	}, nil
}

// Host returns the endpoint host requests are signed for.
func (c *Client) Host() string { return c.host }

// SellerID returns the merchant the client acts for.
func (c *Client) SellerID() string { return c.cfg.SellerID }

// Close releases idle connections.
func (c *Client) Close(ctx context.Context) error {
	return c.transport.Close(ctx)
}
