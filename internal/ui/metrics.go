package ui

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Metric instruments. They are no-ops until InitMetrics runs so the App works
// without an exporter.
var (
	keyCounter        metric.Int64Counter     = noop.Int64Counter{}
	opsHistogram      metric.Float64Histogram = noop.Float64Histogram{}
	errorCounter      metric.Int64Counter     = noop.Int64Counter{}
	resultGauge       metric.Float64Gauge     = noop.Float64Gauge{}
	historyCounter    metric.Int64Counter     = noop.Int64Counter{}
	conversionCounter metric.Int64Counter     = noop.Int64Counter{}
)

// InitMetrics registers the calculator and converter instruments on the
// global meter provider. Call it after observability.InitMetrics.
func InitMetrics() error {
	meter := otel.Meter("calculator")

	var err error

	keyCounter, err = meter.Int64Counter("calculator.keys.total",
		metric.WithDescription("Total number of key presses handled"),
		metric.WithUnit("{press}"),
	)
	if err != nil {
		return fmt.Errorf("creating key counter: %w", err)
	}

	opsHistogram, err = meter.Float64Histogram("calculator.operation.duration",
		metric.WithDescription("Duration of key handling in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating ops histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("calculator.errors.total",
		metric.WithDescription("Total number of failed calculator and converter operations"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	resultGauge, err = meter.Float64Gauge("calculator.last_result",
		metric.WithDescription("The result of the last successful evaluation"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating result gauge: %w", err)
	}

	historyCounter, err = meter.Int64Counter("calculator.history.entries",
		metric.WithDescription("Total number of entries appended to the history log"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return fmt.Errorf("creating history counter: %w", err)
	}

	conversionCounter, err = otel.Meter("converter").Int64Counter("converter.conversions.total",
		metric.WithDescription("Total number of unit conversions submitted"),
		metric.WithUnit("{conversion}"),
	)
	if err != nil {
		return fmt.Errorf("creating conversion counter: %w", err)
	}

	return nil
}
