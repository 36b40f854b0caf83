package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records catalogue metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when
// disabled.
type MetricsRecorder interface {
	// RecordDemo records one demo execution with its duration and
	// error status.
	RecordDemo(ctx context.Context, name, family string, duration time.Duration, err error)

	// RecordCatalogRun records a catalogue run completion.
	RecordCatalogRun(ctx context.Context, success bool, duration time.Duration)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	demoRuns       metric.Int64Counter
	demoLatency    metric.Float64Histogram
	demoErrors     metric.Int64Counter
	catalogRuns    metric.Int64Counter
	catalogLatency metric.Float64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics lazily initializes the default OTel metrics
// instance on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("patterns")

	demoRuns, err := meter.Int64Counter("patterns.demo.runs",
		metric.WithDescription("Number of demo executions"),
	)
	if err != nil {
		return nil, err
	}

	demoLatency, err := meter.Float64Histogram("patterns.demo.latency_ms",
		metric.WithDescription("Demo execution latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	demoErrors, err := meter.Int64Counter("patterns.demo.errors",
		metric.WithDescription("Number of demo execution errors"),
	)
	if err != nil {
		return nil, err
	}

	catalogRuns, err := meter.Int64Counter("patterns.catalog.runs",
		metric.WithDescription("Number of catalogue runs"),
	)
	if err != nil {
		return nil, err
	}

	catalogLatency, err := meter.Float64Histogram("patterns.catalog.latency_ms",
		metric.WithDescription("Catalogue run latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		demoRuns:       demoRuns,
		demoLatency:    demoLatency,
		demoErrors:     demoErrors,
		catalogRuns:    catalogRuns,
		catalogLatency: catalogLatency,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the
// provider before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordDemo records one demo execution.
func (m *otelMetrics) RecordDemo(ctx context.Context, name, family string, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("demo", name),
		attribute.String("family", family),
	}

	m.demoRuns.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.demoLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))

	if err != nil {
		m.demoErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordCatalogRun records a catalogue run.
func (m *otelMetrics) RecordCatalogRun(ctx context.Context, success bool, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.Bool("success", success),
	}
	m.catalogRuns.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.catalogLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
}
