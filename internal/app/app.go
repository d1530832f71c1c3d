package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/tickdown/internal/ctxlog"
	"github.com/vk/tickdown/internal/font"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	fonts  *font.Registry
	config *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and a font
// registry holding the built-in fonts plus any custom manifests found
// under the configured fonts path.
func NewApp(outW, errW io.Writer, cfg *Config) (*App, error) {
	// User-facing output goes to outW; diagnostics must not corrupt the
	// display, so the logger writes to errW.
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	registry := font.Builtin()
	if cfg.FontsPath != "" {
		custom, err := font.LoadDir(ctx, cfg.FontsPath)
		if err != nil {
			return nil, fmt.Errorf("loading custom fonts: %w", err)
		}
		for _, f := range custom {
			registry.Add(f)
		}
		logger.Debug("Custom fonts registered.", "count", len(custom))
	}
	logger.Debug("Font registry ready.", "fonts", registry.Names())

	return &App{
		outW:   outW,
		logger: logger,
		fonts:  registry,
		config: cfg,
	}, nil
}

// Fonts returns the application's font registry. This is primarily for
// testing.
func (a *App) Fonts() *font.Registry {
	return a.fonts
}
