package observability

import (
	"context"
	"net/http"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/kbukum/mws/errors"
)

type harness struct {
	inst     *Instrumentation
	spans    *tracetest.SpanRecorder
	reader   *sdkmetric.ManualReader
	provider *sdktrace.TracerProvider
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	inst, err := NewInstrumentation(WithTracerProvider(tp), WithMeterProvider(mp))
	if err != nil {
		t.Fatalf("NewInstrumentation: %v", err)
	}
	return &harness{inst: inst, spans: spans, reader: reader, provider: tp}
}

func (h *harness) collect(t *testing.T) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := h.reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect: %v", err)
	}
	out := make(map[string]metricdata.Metrics)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func attrValue(attrs []attribute.KeyValue, key attribute.Key) (attribute.Value, bool) {
	for _, kv := range attrs {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestCall_Success(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	ctx, call := h.inst.StartCall(ctx, "GetReportList", "2009-01-01", "mws.amazonservices.com", "call-1")
	call.SetResponse(http.StatusOK, "req-1")
	call.End(ctx, nil)

	ended := h.spans.Ended()
	if len(ended) != 1 {
		t.Fatalf("expected 1 span, got %d", len(ended))
	}
	span := ended[0]
	if span.Name() != "GetReportList" {
		t.Errorf("span name = %s", span.Name())
	}
	if v, _ := attrValue(span.Attributes(), AttrRequestID); v.AsString() != "req-1" {
		t.Errorf("request id attribute = %v", v)
	}
	if v, _ := attrValue(span.Attributes(), AttrStatusCode); v.AsInt64() != 200 {
		t.Errorf("status attribute = %v", v)
	}
	if v, _ := attrValue(span.Attributes(), AttrOutcome); v.AsString() != OutcomeSuccess {
		t.Errorf("outcome attribute = %v", v)
	}

	metrics := h.collect(t)
	sum, ok := metrics[MetricCalls].Data.(metricdata.Sum[int64])
	if !ok || len(sum.DataPoints) != 1 || sum.DataPoints[0].Value != 1 {
		t.Fatalf("unexpected calls metric: %+v", metrics[MetricCalls])
	}
	if _, ok := metrics[MetricCallDuration]; !ok {
		t.Error("expected duration histogram")
	}
}

func TestCall_ThrottledWithRetry(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	throttled := errors.Service(http.StatusServiceUnavailable, "RequestThrottled", "slow down", "req-2")

	ctx, call := h.inst.StartCall(ctx, "RequestReport", "2009-01-01", "mws.amazonservices.com", "call-2")
	call.Retry(ctx, 1, throttled)
	call.End(ctx, throttled)

	span := h.spans.Ended()[0]
	if span.Status().Code != codes.Error {
		t.Errorf("span status = %v", span.Status())
	}
	if v, _ := attrValue(span.Attributes(), AttrServiceCode); v.AsString() != "RequestThrottled" {
		t.Errorf("service code attribute = %v", v)
	}
	if v, _ := attrValue(span.Attributes(), AttrOutcome); v.AsString() != OutcomeThrottled {
		t.Errorf("outcome attribute = %v", v)
	}
	retryEvents := 0
	for _, ev := range span.Events() {
		if ev.Name == "retry" {
			retryEvents++
		}
	}
	if retryEvents != 1 {
		t.Errorf("expected one retry event, got %v", span.Events())
	}

	retries, ok := h.collect(t)[MetricRetries].Data.(metricdata.Sum[int64])
	if !ok || retries.DataPoints[0].Value != 1 {
		t.Errorf("unexpected retries metric: %+v", retries)
	}
}

func TestCall_Downloaded(t *testing.T) {
	h := newHarness(t)
	ctx, call := h.inst.StartCall(context.Background(), "GetReport", "2009-01-01", "mws.amazonservices.com", "call-3")
	call.Downloaded(ctx, 2048)
	call.End(ctx, nil)

	bytes, ok := h.collect(t)[MetricDownloadBytes].Data.(metricdata.Sum[int64])
	if !ok || bytes.DataPoints[0].Value != 2048 {
		t.Errorf("unexpected download metric: %+v", bytes)
	}
}

func TestNilInstrumentation(t *testing.T) {
	var inst *Instrumentation
	parent := newHarness(t)
	ctx, parentSpan := parent.provider.Tracer("test").Start(context.Background(), "parent")

	ctx, call := inst.StartCall(ctx, "GetReport", "2009-01-01", "host", "id")
	call.SetResponse(200, "r")
	call.Retry(ctx, 1, errors.Transport("x", nil))
	call.Downloaded(ctx, 10)
	call.End(ctx, nil)

	if !parentSpan.IsRecording() {
		t.Error("a nil instrumentation must not end the caller's span")
	}
	parentSpan.End()
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, OutcomeSuccess},
		{"throttled", errors.Service(503, "RequestThrottled", "", ""), OutcomeThrottled},
		{"denied", errors.Service(401, "AccessDenied", "", ""), OutcomeError},
		{"transport", errors.Transport("post", nil), OutcomeError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Outcome(tc.err); got != tc.want {
				t.Errorf("Outcome = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestDefaultConfigs(t *testing.T) {
	tc := DefaultTracerConfig("inventory-sync")
	if tc.ServiceName != "inventory-sync" || tc.Endpoint != "localhost:4318" || tc.SampleRate != 1.0 {
		t.Errorf("unexpected tracer defaults: %+v", tc)
	}
	mc := DefaultMeterConfig("inventory-sync")
	if mc.ServiceName != "inventory-sync" || mc.Interval == 0 {
		t.Errorf("unexpected meter defaults: %+v", mc)
	}
}

func TestSampler(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{1.0, "AlwaysOnSampler"},
		{0, "AlwaysOffSampler"},
	}
	for _, tc := range tests {
		if got := sampler(tc.rate).Description(); got != tc.want {
			t.Errorf("sampler(%v) = %s, want %s", tc.rate, got, tc.want)
		}
	}
}

func TestInitTracerAndMeter(t *testing.T) {
	// exporters connect lazily, so no collector is needed
	tp, err := InitTracer(context.Background(), DefaultTracerConfig("test"), nil)
	if err != nil {
		t.Fatalf("InitTracer: %v", err)
	}
	defer func() { _ = tp.Shutdown(context.Background()) }()

	mp, err := InitMeter(context.Background(), DefaultMeterConfig("test"), nil)
	if err != nil {
		t.Fatalf("InitMeter: %v", err)
	}
	defer func() { _ = mp.Shutdown(context.Background()) }()
}
