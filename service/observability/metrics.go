package observability

import (
	"context"
	"time"

	"github.com/pitabwire/frame/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const pkgName = "service_locations"

// Metrics holds pre-allocated OTel instruments for the locations service.
// Instruments are created once at startup and reused for every measurement.
type Metrics struct {
	tracer telemetry.Tracer

	// Proximity metrics.
	containmentQueryLatency metric.Float64Histogram
	containmentHits         metric.Int64Counter
	containmentMisses       metric.Int64Counter
	nearbyQueryLatency      metric.Float64Histogram

	// Coordinate mutation metrics.
	coordinateUpdates metric.Int64Counter
}

// NewMetrics creates and registers all OTel instruments for the locations service.
func NewMetrics() *Metrics {
	t := telemetry.NewTracer(pkgName)

	return &Metrics{
		tracer:                  t,
		containmentQueryLatency: telemetry.LatencyMeasure(pkgName + "/containment"),
		containmentHits: telemetry.DimensionlessMeasure(
			pkgName,
			"/containment/hits",
			"Number of containment queries resolved to a covering geofence",
		),
		containmentMisses: telemetry.DimensionlessMeasure(
			pkgName,
			"/containment/misses",
			"Number of containment queries with no covering geofence",
		),
		nearbyQueryLatency: telemetry.LatencyMeasure(pkgName + "/nearby"),
		coordinateUpdates: telemetry.DimensionlessMeasure(
			pkgName,
			"/coordinates/updates",
			"Number of coordinate tuple mutations",
		),
	}
}

// StartSpan starts a new traced span and returns the enriched context and span.
func (m *Metrics) StartSpan(
	ctx context.Context,
	name string,
	opts ...trace.SpanStartOption,
) (context.Context, trace.Span) {
	return m.tracer.Start(ctx, name, opts...)
}

// EndSpan ends a span and records latency.
func (m *Metrics) EndSpan(ctx context.Context, span trace.Span, err error) {
	m.tracer.End(ctx, span, err)
}

// RecordContainmentQuery records metrics for a geofence containment query.
func (m *Metrics) RecordContainmentQuery(ctx context.Context, elapsed time.Duration, found bool) {
	m.containmentQueryLatency.Record(ctx, float64(elapsed.Milliseconds()))
	if found {
		m.containmentHits.Add(ctx, 1)
	} else {
		m.containmentMisses.Add(ctx, 1)
	}
}

// RecordNearbyQuery records metrics for a radius search.
func (m *Metrics) RecordNearbyQuery(ctx context.Context, elapsed time.Duration, resultCount int) {
	m.nearbyQueryLatency.Record(ctx, float64(elapsed.Milliseconds()),
		metric.WithAttributes(attribute.Int("result_count", resultCount)),
	)
}

// RecordCoordinateUpdate records a coordinate tuple mutation.
func (m *Metrics) RecordCoordinateUpdate(ctx context.Context, action string) {
	m.coordinateUpdates.Add(ctx, 1,
		metric.WithAttributes(attribute.String("action", action)),
	)
}
