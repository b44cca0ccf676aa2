package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/mws/envelope"
	"github.com/kbukum/mws/errors"
	"github.com/kbukum/mws/httpclient"
	"github.com/kbukum/mws/logger"
	"github.com/kbukum/mws/observability"
	"github.com/kbukum/mws/params"
	"github.com/kbukum/mws/resilience"
	"github.com/kbukum/mws/signer"
	"github.com/kbukum/mws/xmldecode"
)

// maxErrorBody caps how much of a failed response is buffered.
const maxErrorBody = 1 << 20

// Operation identifies one service action.
type Operation struct {
	// Path is the section path, "/" for the root section.
	Path    string
	Version string
	Action  string
}

// Invoke sends op with the given parameters and decodes the single result
// element of the response with payload. p may be nil.
func Invoke[T any](ctx context.Context, c *Client, op Operation, p params.Value, payload xmldecode.Decoder[T]) (*envelope.Response[T], error) {
	return dispatch(ctx, c, op, p, func(r io.Reader) (*envelope.Response[T], error) {
		return envelope.Decode(r, op.Action, payload)
	})
}

// InvokeBatch is Invoke for actions whose result element repeats once per
// requested item.
func InvokeBatch[T any](ctx context.Context, c *Client, op Operation, p params.Value, item xmldecode.Decoder[T]) (*envelope.Response[[]T], error) {
	return dispatch(ctx, c, op, p, func(r io.Reader) (*envelope.Response[[]T], error) {
		return envelope.DecodeBatch(r, op.Action, item)
	})
}

func encode(p params.Value) (params.Pairs, error) {
	if p == nil {
		return nil, nil
	}
	return params.Encode(p)
}

// callScope carries the per-call logger, span and call id.
type callScope struct {
	ctx  context.Context
	log  *logger.Logger
	call *observability.Call
}

func (c *Client) begin(ctx context.Context, op Operation) callScope {
	callID := uuid.NewString()
	ctx = logger.ContextWithCallID(ctx, callID)
	ctx, call := c.inst.StartCall(ctx, op.Action, op.Version, c.host, callID)
	log := c.log.WithContext(ctx).WithFields(logger.Fields(
		logger.FieldAction, op.Action,
		logger.FieldVersion, op.Version,
	))
	return callScope{ctx: ctx, log: log, call: call}
}

func (s callScope) end(err error, requestID string, extra map[string]any) {
	s.call.End(s.ctx, err)
	fields := logger.Fields(logger.FieldDuration, s.call.Duration().Milliseconds())
	for k, v := range extra {
		fields[k] = v
	}
	if err == nil {
		if requestID != "" {
			fields[logger.FieldRequestID] = requestID
		}
		s.log.Debug("call completed", fields)
		return
	}
	if appErr, ok := errors.AsAppError(err); ok {
		fields[logger.FieldErrorKind] = string(appErr.Code)
	}
	if code := errors.ServiceCode(err); code != "" {
		fields[logger.FieldServiceCode] = code
	}
	if id := errors.RequestID(err); id != "" {
		fields[logger.FieldRequestID] = id
	}
	s.log.WithError(err).Warn("call failed", fields)
}

func dispatch[T any](ctx context.Context, c *Client, op Operation, p params.Value, decode func(io.Reader) (*envelope.Response[T], error)) (*envelope.Response[T], error) {
	pairs, err := encode(p)
	if err != nil {
		return nil, err
	}

	scope := c.begin(ctx, op)
	attempt := func(int) (*envelope.Response[T], error) {
		return exchange(scope, c, op, pairs, decode)
	}

	var resp *envelope.Response[T]
	if c.cfg.Retry == nil {
		resp, err = attempt(1)
	} else {
		resp, err = resilience.Retry(scope.ctx, c.retryConfig(scope), attempt)
	}

	var requestID string
	if resp != nil {
		requestID = resp.RequestID
	}
	scope.end(err, requestID, nil)
	return resp, err
}

// retryConfig copies the configured policy and hooks retries into the
// call's log and span.
func (c *Client) retryConfig(s callScope) resilience.RetryConfig {
	rc := *c.cfg.Retry
	userHook := rc.OnRetry
	rc.OnRetry = func(attempt int, err error, backoff time.Duration) {
		s.call.Retry(s.ctx, attempt, err)
		fields := logger.Fields(
			logger.FieldAttempt, attempt,
			logger.FieldBackoff, backoff.Milliseconds(),
		)
		if code := errors.ServiceCode(err); code != "" {
			fields[logger.FieldServiceCode] = code
		}
		s.log.WithError(err).Warn("retrying call", fields)
		if userHook != nil {
			userHook(attempt, err, backoff)
		}
	}
	return rc
}

// send signs pairs with a fresh timestamp and opens the response stream.
func (c *Client) send(ctx context.Context, op Operation, pairs params.Pairs) (*httpclient.StreamResponse, error) {
	signed, err := c.signer.Sign(signer.Request{
		Scheme:  c.scheme,
		Host:    c.host,
		Path:    op.Path,
		Version: op.Version,
		Action:  op.Action,
		Params:  pairs,
	})
	if err != nil {
		return nil, err
	}
	return c.transport.DoStream(ctx, httpclient.Request{
		Method: http.MethodPost,
		URL:    signed.URL,
		Body:   signed.Body,
	})
}

// exchange performs one signed round-trip bounded by the configured timeout
// and decodes the body.
func exchange[T any](s callScope, c *Client, op Operation, pairs params.Pairs, decode func(io.Reader) (*envelope.Response[T], error)) (*envelope.Response[T], error) {
	ctx, cancel := context.WithTimeout(s.ctx, c.cfg.Timeout)
	defer cancel()

	resp, err := c.send(ctx, op, pairs)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Close() }()

	body := httpclient.NewBodyReader(ctx, resp.Body)
	headerID := resp.Header(RequestIDHeader)

	if !resp.IsSuccess() {
		err := serviceError(resp.StatusCode, headerID, body)
		s.call.SetResponse(resp.StatusCode, errors.RequestID(err))
		return nil, err
	}

	result, err := decode(body)
	if body.Err() != nil {
		return nil, body.Err()
	}
	s.call.SetResponse(resp.StatusCode, headerID)
	if err != nil {
		return nil, err
	}
	if result.RequestID == "" {
		result.RequestID = headerID
	}
	return result, nil
}

// serviceError builds the error for a non-2xx response. Bodies that are not
// an error envelope still yield a service error carrying the HTTP status.
func serviceError(status int, headerID string, body *httpclient.BodyReader) error {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil {
		if body.Err() != nil {
			return body.Err()
		}
		return errors.Transport("read error response", err)
	}

	env, decodeErr := envelope.DecodeError(bytes.NewReader(raw))
	if decodeErr != nil {
		return errors.Service(status, "", http.StatusText(status), headerID).
			WithDetail(errors.DetailDetail, snippet(raw))
	}

	requestID := env.RequestID
	if requestID == "" {
		requestID = headerID
	}
	appErr := errors.Service(status, env.Code, env.Message, requestID)
	if env.Type != "" {
		appErr.WithDetail(errors.DetailType, env.Type)
	}
	if env.Detail != "" {
		appErr.WithDetail(errors.DetailDetail, env.Detail)
	}
	return appErr
}

func snippet(raw []byte) string {
	const limit = 512
	s := strings.TrimSpace(string(raw))
	if len(s) > limit {
		s = s[:limit] + "..."
	}
	return s
}
