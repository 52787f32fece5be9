package instrumentation

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys.
const (
	attrResult = "result"
)

// Result values for fetch metrics.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Metrics provides methods for recording observability metrics.
// The zero value is a no-op recorder, so callers never need nil checks.
type Metrics struct {
	sourceFetchesTotal  metric.Int64Counter
	sourceFetchDuration metric.Float64Histogram
	slotsComputed       metric.Int64Counter
	computeDuration     metric.Float64Histogram
}

// NewMetrics creates a new Metrics instance with all instruments initialized.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.sourceFetchesTotal, err = meter.Int64Counter(
		"calendar_source_fetches_total",
		metric.WithDescription("Total number of calendar source fetches"),
		metric.WithUnit("{fetch}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar_source_fetches_total counter: %w", err)
	}

	m.sourceFetchDuration, err = meter.Float64Histogram(
		"calendar_source_fetch_duration_seconds",
		metric.WithDescription("Calendar source fetch duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar_source_fetch_duration_seconds histogram: %w", err)
	}

	m.slotsComputed, err = meter.Int64Counter(
		"slots_computed_total",
		metric.WithDescription("Total number of slots produced by the engine"),
		metric.WithUnit("{slot}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create slots_computed_total counter: %w", err)
	}

	m.computeDuration, err = meter.Float64Histogram(
		"slot_computation_duration_seconds",
		metric.WithDescription("Slot computation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.0001, 0.001, 0.01, 0.1, 1.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create slot_computation_duration_seconds histogram: %w", err)
	}

	return m, nil
}

// RecordSourceFetch records one calendar source fetch with its outcome.
func (m *Metrics) RecordSourceFetch(ctx context.Context, result string, seconds float64) {
	if m == nil || m.sourceFetchesTotal == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String(attrResult, result))
	m.sourceFetchesTotal.Add(ctx, 1, attrs)
	m.sourceFetchDuration.Record(ctx, seconds, attrs)
}

// RecordComputation records one engine run: slots produced and time spent.
func (m *Metrics) RecordComputation(ctx context.Context, slots int, seconds float64) {
	if m == nil || m.slotsComputed == nil {
		return
	}
	m.slotsComputed.Add(ctx, int64(slots))
	m.computeDuration.Record(ctx, seconds)
}
