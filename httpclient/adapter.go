package httpclient

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/kbukum/mws/errors"
)

// Adapter sends requests over a pooled *http.Client. It is safe for
// concurrent use.
type Adapter struct {
	httpClient *http.Client
	config     Config
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithRoundTripper replaces the underlying transport, mainly for tests.
func WithRoundTripper(rt http.RoundTripper) Option {
	return func(a *Adapter) { a.httpClient.Transport = rt }
}

// New creates a new adapter with the given configuration.
func New(cfg Config, opts ...Option) (*Adapter, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.TLS != nil {
		tlsCfg, err := cfg.TLS.Build()
		if err != nil {
			return nil, err
		}
		if tlsCfg != nil {
			transport.TLSClientConfig = tlsCfg
		}
	}

	c := &Adapter{
		httpClient: &http.Client{Transport: transport},
		config:     cfg,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Do executes a request and reads the whole body. The configured timeout
// bounds the round-trip and the read. Any status code is returned as a
// Response; only failures to complete the exchange are errors.
func (c *Adapter) Do(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	resp, err := c.DoStream(ctx, req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ClassifyError(ctx, "read response body", err)
	}
	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       body,
	}, nil
}

// DoStream executes a request and returns the unread response. The caller
// must close it. ctx governs the whole exchange including body reads.
func (c *Adapter) DoStream(ctx context.Context, req Request) (*StreamResponse, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, ClassifyError(ctx, httpReq.Method+" "+httpReq.URL.Host, err)
	}

	return &StreamResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       resp.Body,
	}, nil
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (c *Adapter) Unwrap() *http.Client {
	return c.httpClient
}

// Close releases idle connections.
func (c *Adapter) Close(_ context.Context) error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// buildRequest constructs an *http.Request from the adapter config and request.
func (c *Adapter) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	if !strings.HasPrefix(req.URL, "https://") && !strings.HasPrefix(req.URL, "http://") {
		return nil, errors.Configuration("endpoint", "request URL must be absolute: "+req.URL)
	}

	method := req.Method
	if method == "" {
		method = http.MethodPost
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, strings.NewReader(req.Body))
	if err != nil {
		return nil, errors.Configuration("endpoint", "cannot create request").WithCause(err)
	}

	httpReq.Header.Set("Content-Type", FormContentType)
	if c.config.UserAgent != "" {
		httpReq.Header.Set("User-Agent", c.config.UserAgent)
	}

	// Apply default headers
	for k, v := range c.config.Headers {
		httpReq.Header.Set(k, v)
	}

	// Apply request-specific headers (override defaults)
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	return httpReq, nil
}
