// Command calc runs the calculator and unit converter in the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"calc-converter/internal/config"
	"calc-converter/internal/observability"
	"calc-converter/internal/termui"
	"calc-converter/internal/theme"
	"calc-converter/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "calc:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The production logger writes to stderr, away from the frames.
	if err := observability.InitLogger(cfg.LogLevel); err != nil {
		return err
	}
	defer observability.SyncLogger()

	palettes, err := theme.LoadFile(cfg.ThemeFile)
	if err != nil {
		return fmt.Errorf("load palettes: %w", err)
	}

	tk := termui.New(os.Stdin, os.Stdout)
	app := ui.New(tk, ui.WithPalettes(palettes), ui.WithTheme(cfg.Theme))

	return app.Run(ctx)
}
