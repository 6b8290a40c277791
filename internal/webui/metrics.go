package webui

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Metric instruments, no-ops until InitMetrics runs.
var (
	requestCounter metric.Int64Counter = noop.Int64Counter{}
	errorCounter   metric.Int64Counter = noop.Int64Counter{}
)

// InitMetrics registers the panel's request instruments.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("webui")

	var err error

	requestCounter, err = meter.Int64Counter("webui.requests.total",
		metric.WithDescription("Total number of panel events dispatched"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return fmt.Errorf("creating request counter: %w", err)
	}

	errorCounter, err = meter.Int64Counter("webui.errors.total",
		metric.WithDescription("Total number of rejected panel requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	return nil
}
