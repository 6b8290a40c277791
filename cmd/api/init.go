package main

import (
	"context"

	"calc-converter/internal/config"
	"calc-converter/internal/observability"
	"calc-converter/internal/ui"
	"calc-converter/internal/webui"
)

// initTelemetry starts the OTLP trace, metric and log exporters when enabled
// and creates the domain instruments. The returned func flushes them all.
func initTelemetry(ctx context.Context, cfg config.Config) (func(context.Context) error, error) {
	shutdowns := []func(context.Context) error{}
	shutdown := func(ctx context.Context) error {
		var firstErr error
		for i := len(shutdowns) - 1; i >= 0; i-- {
			if err := shutdowns[i](ctx); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return firstErr
	}

	if cfg.OTLPEnabled {
		for _, start := range []func(context.Context) (func(context.Context) error, error){
			observability.InitTracing,
			observability.InitMetrics,
			observability.InitLogging,
		} {
			stop, err := start(ctx)
			if err != nil {
				_ = shutdown(ctx)
				return nil, err
			}
			shutdowns = append(shutdowns, stop)
		}
	}

	if err := initMetrics(); err != nil {
		_ = shutdown(ctx)
		return nil, err
	}

	return shutdown, nil
}

// initMetrics creates the application metric instruments. Without OTLP they
// bind to the global no-op provider.
func initMetrics() error {
	if err := ui.InitMetrics(); err != nil {
		return err
	}
	return webui.InitMetrics()
}
