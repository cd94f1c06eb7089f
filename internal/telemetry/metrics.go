package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

const (
	Namespace = "modelgen"
)

// Outcome attribute values
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

type Metrics struct {
	// Generations counts generator runs by generator and outcome
	Generations metric.Int64Counter

	// GenerationDuration tracks how long each generator run takes
	GenerationDuration metric.Float64Histogram

	// Errors counts failed generator runs
	Errors metric.Int64Counter

	registry *promclient.Registry
}

// ShutdownFunc is a delegate that shuts down the OpenTelemetry components.
type ShutdownFunc func(ctx context.Context) error

func NewMetrics(meter metric.Meter) (*Metrics, error) {
	generations, err := meter.Int64Counter(
		Namespace+".generations",
		metric.WithDescription("Total number of generator runs"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation counter: %w", err)
	}

	duration, err := meter.Float64Histogram(
		Namespace+".generation.duration",
		metric.WithDescription("Duration of generator runs in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation duration histogram: %w", err)
	}

	errCount, err := meter.Int64Counter(
		Namespace+".generation.errors",
		metric.WithDescription("Total number of failed generator runs"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create error counter: %w", err)
	}

	return &Metrics{
		Generations:        generations,
		GenerationDuration: duration,
		Errors:             errCount,
	}, nil
}

// Record adds one generator run. A nil receiver records nothing.
func (m *Metrics) Record(ctx context.Context, generator string, elapsed time.Duration, runErr error) {
	if m == nil {
		return
	}

	outcome := OutcomeSuccess
	if runErr != nil {
		outcome = OutcomeFailure
	}
	attrs := metric.WithAttributes(
		attribute.String("generator", generator),
		attribute.String("outcome", outcome),
	)

	m.Generations.Add(ctx, 1, attrs)
	m.GenerationDuration.Record(ctx, elapsed.Seconds(), attrs)
	if runErr != nil {
		m.Errors.Add(ctx, 1, metric.WithAttributes(attribute.String("generator", generator)))
	}
}

// WriteText writes every metric gathered so far in the Prometheus text exposition format
func (m *Metrics) WriteText(w io.Writer) error {
	if m == nil || m.registry == nil {
		return errors.New("metrics are not backed by a Prometheus registry")
	}

	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return fmt.Errorf("failed to write metric family %s: %w", family.GetName(), err)
		}
	}
	return nil
}

func NewPrometheusMeterProvider(res *resource.Resource, exp *prometheus.Exporter) (*sdkmetric.MeterProvider, error) {
	if exp == nil {
		return nil, errors.New("exporter cannot be nil")
	}
	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exp),
	)

	return meterProvider, nil
}

// InitMetrics wires an OpenTelemetry meter provider to a private Prometheus
// registry and starts runtime instrumentation on it.
func InitMetrics(version string) (ShutdownFunc, *Metrics, error) {
	// Initialized the returned shutdownFunc to no-op.
	shutdown := func(_ context.Context) error { return nil }

	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			semconv.ServiceName(Namespace),
			semconv.ServiceVersion(version),
		),
		resource.WithProcessRuntimeDescription(),
	)
	if err != nil {
		return shutdown, nil, fmt.Errorf("failed to create resource: %w", err)
	}

	res, err = resource.Merge(resource.Default(), res)
	if err != nil {
		return shutdown, nil, fmt.Errorf("failed to merge resources: %w", err)
	}

	registry := promclient.NewRegistry()
	exporter, err := prometheus.New(prometheus.WithRegisterer(registry))
	if err != nil {
		return shutdown, nil, fmt.Errorf("failed to create Prometheus exporter: %w", err)
	}

	mp, err := NewPrometheusMeterProvider(res, exporter)
	if err != nil {
		return shutdown, nil, fmt.Errorf("failed to create Prometheus meter provider: %w", err)
	}
	otel.SetMeterProvider(mp)

	if err := runtime.Start(runtime.WithMeterProvider(mp)); err != nil {
		return shutdown, nil, fmt.Errorf("failed to start runtime instrumentation: %w", err)
	}

	shutdown = func(ctx context.Context) error {
		return mp.Shutdown(ctx)
	}

	meter := mp.Meter(Namespace, metric.WithSchemaURL(semconv.SchemaURL), metric.WithInstrumentationVersion(runtime.Version()))
	metrics, err := NewMetrics(meter)
	if err != nil {
		return shutdown, nil, err
	}
	metrics.registry = registry
	return shutdown, metrics, nil
}
