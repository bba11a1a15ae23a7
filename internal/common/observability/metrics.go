package observability

import (
	"context"
	"strconv"
	"time"

	"cogni-recommender/internal/common/logger"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Observability records OpenTelemetry meters and exposes them through a
// Prometheus registerer. A zero value records nothing.
type Observability struct {
	meterProvider      *metric.MeterProvider
	meter              otelmetric.Meter
	requestCounter     otelmetric.Int64Counter
	requestDuration    otelmetric.Float64Histogram
	recommendationTime otelmetric.Float64Histogram
}

// New sets up the meters for serviceName. If the exporter cannot be created
// the error is logged and a no-op Observability is returned.
func New(serviceName string, reg prometheus.Registerer, log logger.Logger) *Observability {
	exporter, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		log.Error("failed to create prometheus exporter", map[string]interface{}{"error": err.Error()})
		return &Observability{}
	}

	res := resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(serviceName))
	provider := metric.NewMeterProvider(
		metric.WithReader(exporter),
		metric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	requestCounter, _ := meter.Int64Counter(
		"http_server_requests",
		otelmetric.WithDescription("Number of HTTP requests handled"),
	)

	requestDuration, _ := meter.Float64Histogram(
		"http_server_duration",
		otelmetric.WithDescription("HTTP request duration"),
		otelmetric.WithUnit("ms"),
	)

	recommendationTime, _ := meter.Float64Histogram(
		"recommendation_duration",
		otelmetric.WithDescription("Time spent computing a recommendation"),
		otelmetric.WithUnit("ms"),
	)

	return &Observability{
		meterProvider:      provider,
		meter:              meter,
		requestCounter:     requestCounter,
		requestDuration:    requestDuration,
		recommendationTime: recommendationTime,
	}
}

func (o *Observability) RecordRequest(ctx context.Context, method, route string, status int, duration time.Duration) {
	attrs := otelmetric.WithAttributes(
		attribute.String("method", method),
		attribute.String("route", route),
		attribute.String("status", strconv.Itoa(status)),
	)
	if o.requestCounter != nil {
		o.requestCounter.Add(ctx, 1, attrs)
	}
	if o.requestDuration != nil {
		o.requestDuration.Record(ctx, float64(duration.Microseconds())/1000, attrs)
	}
}

func (o *Observability) RecordRecommendation(ctx context.Context, pkg string, duration time.Duration) {
	if o.recommendationTime != nil {
		o.recommendationTime.Record(ctx, float64(duration.Microseconds())/1000, otelmetric.WithAttributes(
			attribute.String("package", pkg),
		))
	}
}

func (o *Observability) Shutdown(ctx context.Context) error {
	if o.meterProvider == nil {
		return nil
	}
	return o.meterProvider.Shutdown(ctx)
}
