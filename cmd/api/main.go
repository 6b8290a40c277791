package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"calc-converter/internal/config"
	"calc-converter/internal/observability"
	"calc-converter/internal/server"
	"calc-converter/internal/theme"
	"calc-converter/internal/ui"
	"calc-converter/internal/webui"

	"go.uber.org/zap"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Config
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Logger
	if err := observability.InitLogger(cfg.LogLevel); err != nil {
		panic(err)
	}
	defer observability.SyncLogger()

	// Telemetry
	telemetryShutdown, err := initTelemetry(ctx, cfg)
	if err != nil {
		panic(err)
	}
	defer telemetryShutdown(context.Background())

	// Panel
	palettes, err := theme.LoadFile(cfg.ThemeFile)
	if err != nil {
		observability.Logger.Fatal("load palettes", zap.String("path", cfg.ThemeFile), zap.Error(err))
	}

	panel := webui.NewToolkit()
	app := ui.New(panel, ui.WithPalettes(palettes), ui.WithTheme(cfg.Theme))

	// Router
	router := server.NewRouter(panel)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	go func() {
		observability.Logger.Info("server started", zap.String("addr", cfg.Addr))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			observability.Logger.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	// The dispatch loop owns the calculator until the process is signalled.
	if err := app.Run(ctx); err != nil {
		observability.Logger.Error("panel stopped", zap.Error(err))
	}

	waitForShutdown(srv, cfg)
}

func waitForShutdown(srv *http.Server, cfg config.Config) {

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		observability.Logger.Error("shutdown", zap.Error(err))
	}
}
