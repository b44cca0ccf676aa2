package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/mws/errors"
)

// Attribute keys.
const (
	AttrAction      = attribute.Key("mws.action")
	AttrVersion     = attribute.Key("mws.version")
	AttrCallID      = attribute.Key("mws.call_id")
	AttrRequestID   = attribute.Key("mws.request_id")
	AttrServiceCode = attribute.Key("mws.service_code")
	AttrAttempt     = attribute.Key("mws.attempt")
	AttrOutcome     = attribute.Key("mws.outcome")
	AttrHost        = attribute.Key("server.address")
	AttrStatusCode  = attribute.Key("http.response.status_code")
	AttrErrorType   = attribute.Key("error.type")
)

// Outcomes recorded on the calls counter.
const (
	OutcomeSuccess   = "success"
	OutcomeThrottled = "throttled"
	OutcomeError     = "error"
)

// Instrumentation creates call spans and records call metrics.
// A nil *Instrumentation is valid and records nothing.
type Instrumentation struct {
	tracer  trace.Tracer
	metrics *Metrics
}

// Option configures Instrumentation.
type Option func(*instrumentationOptions)

type instrumentationOptions struct {
	tp trace.TracerProvider
	mp metric.MeterProvider
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *instrumentationOptions) { o.tp = tp }
}

// WithMeterProvider overrides the global meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *instrumentationOptions) { o.mp = mp }
}

// NewInstrumentation builds instruments from the given or global providers.
func NewInstrumentation(opts ...Option) (*Instrumentation, error) {
	o := instrumentationOptions{tp: otel.GetTracerProvider(), mp: otel.GetMeterProvider()}
	for _, opt := range opts {
		opt(&o)
	}
	m, err := NewMetrics(o.mp.Meter(InstrumentationName))
	if err != nil {
		return nil, err
	}
	return &Instrumentation{tracer: o.tp.Tracer(InstrumentationName), metrics: m}, nil
}

// Call tracks one service call from dispatch to decoded result.
type Call struct {
	span    trace.Span
	metrics *Metrics
	action  string
	start   time.Time
}

// StartCall opens a client span named after the action.
func (i *Instrumentation) StartCall(ctx context.Context, action, apiVersion, host, callID string) (context.Context, *Call) {
	if i == nil {
		// non-recording span; never ends the caller's span
		return ctx, &Call{span: trace.SpanFromContext(context.Background()), action: action, start: time.Now()}
	}
	ctx, span := i.tracer.Start(ctx, action,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			AttrAction.String(action),
			AttrVersion.String(apiVersion),
			AttrHost.String(host),
			AttrCallID.String(callID),
		),
	)
	return ctx, &Call{span: span, metrics: i.metrics, action: action, start: time.Now()}
}

// SetResponse records the HTTP status and service request id.
func (c *Call) SetResponse(status int, requestID string) {
	if !c.recording() {
		return
	}
	c.span.SetAttributes(AttrStatusCode.Int(status))
	if requestID != "" {
		c.span.SetAttributes(AttrRequestID.String(requestID))
	}
}

// Retry records that the call is about to be resent.
func (c *Call) Retry(ctx context.Context, attempt int, err error) {
	if c.recording() {
		c.span.AddEvent("retry", trace.WithAttributes(
			AttrAttempt.Int(attempt),
			AttrErrorType.String(errorType(err)),
		))
	}
	if c.metrics != nil {
		c.metrics.retries.Add(ctx, 1, metric.WithAttributes(AttrAction.String(c.action)))
	}
}

// Downloaded records bytes written to a download sink.
func (c *Call) Downloaded(ctx context.Context, n int64) {
	if c.metrics != nil && n > 0 {
		c.metrics.downloadBytes.Add(ctx, n, metric.WithAttributes(AttrAction.String(c.action)))
	}
}

// End closes the span and records the outcome.
func (c *Call) End(ctx context.Context, err error) {
	outcome := Outcome(err)
	if c.recording() {
		if err != nil {
			c.span.RecordError(err)
			c.span.SetStatus(codes.Error, err.Error())
			c.span.SetAttributes(AttrErrorType.String(errorType(err)))
			if code := errors.ServiceCode(err); code != "" {
				c.span.SetAttributes(AttrServiceCode.String(code))
			}
		}
		c.span.SetAttributes(AttrOutcome.String(outcome))
		c.span.End()
	}
	if c.metrics != nil {
		attrs := metric.WithAttributes(AttrAction.String(c.action), AttrOutcome.String(outcome))
		c.metrics.calls.Add(ctx, 1, attrs)
		c.metrics.callDuration.Record(ctx, time.Since(c.start).Seconds(),
			metric.WithAttributes(AttrAction.String(c.action)))
	}
}

// Duration returns the elapsed time since the call started.
func (c *Call) Duration() time.Duration {
	return time.Since(c.start)
}

func (c *Call) recording() bool {
	return c.span != nil && c.span.IsRecording()
}

// Outcome classifies err for the calls counter.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.IsService(err) && errors.IsRetryable(err):
		return OutcomeThrottled
	default:
		return OutcomeError
	}
}

func errorType(err error) string {
	if appErr, ok := errors.AsAppError(err); ok {
		return string(appErr.Code)
	}
	return "_OTHER"
}
