package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/mws/errors"
	"github.com/kbukum/mws/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
	Environment string `yaml:"environment" mapstructure:"environment"`
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
	Insecure bool   `yaml:"insecure" mapstructure:"insecure"`
	// Interval is the metric export interval.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName: serviceName,
		Environment: "development",
		Endpoint:    "localhost:4318",
		Insecure:    true,
		Interval:    15 * time.Second,
	}
}

// InitMeter installs a global meter provider exporting over OTLP/HTTP.
// The returned provider should be shut down on application exit.
func InitMeter(ctx context.Context, config MeterConfig, log *logger.Logger) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, errors.Configuration("metrics.endpoint", "cannot create metric exporter").WithCause(err)
	}

	res, err := newResource(config.ServiceName, config.Environment)
	if err != nil {
		return nil, err
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	if log != nil {
		log.Info("meter initialized", logger.Fields(
			"service", config.ServiceName,
			"endpoint", config.Endpoint,
			"interval", config.Interval.String(),
		))
	}
	return mp, nil
}

// Metric names.
const (
	MetricCalls         = "mws.client.calls"
	MetricCallDuration  = "mws.client.call.duration"
	MetricRetries       = "mws.client.retries"
	MetricDownloadBytes = "mws.client.download.bytes"
)

// Metrics holds the call instruments.
type Metrics struct {
	calls         metric.Int64Counter
	callDuration  metric.Float64Histogram
	retries       metric.Int64Counter
	downloadBytes metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	calls, err := meter.Int64Counter(MetricCalls,
		metric.WithDescription("Service calls by action and outcome"),
	)
	if err != nil {
		return nil, errors.Configuration("metrics", "creating "+MetricCalls).WithCause(err)
	}

	callDuration, err := meter.Float64Histogram(MetricCallDuration,
		metric.WithDescription("Duration of service calls including decoding"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, errors.Configuration("metrics", "creating "+MetricCallDuration).WithCause(err)
	}

	retries, err := meter.Int64Counter(MetricRetries,
		metric.WithDescription("Calls resent after a retryable failure"),
	)
	if err != nil {
		return nil, errors.Configuration("metrics", "creating "+MetricRetries).WithCause(err)
	}

	downloadBytes, err := meter.Int64Counter(MetricDownloadBytes,
		metric.WithDescription("Raw bytes written to download sinks"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, errors.Configuration("metrics", "creating "+MetricDownloadBytes).WithCause(err)
	}

	return &Metrics{
		calls:         calls,
		callDuration:  callDuration,
		retries:       retries,
		downloadBytes: downloadBytes,
	}, nil
}
