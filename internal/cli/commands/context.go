package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/leapstack-labs/linklint/internal/cli/output"
	"github.com/leapstack-labs/linklint/internal/config"
)

type ctxKey int

const (
	configKey ctxKey = iota
	rendererKey
	loggerKey
)

// NewContext stores the loaded config, renderer, and logger for command
// handlers. Called by the root command after configuration loads.
func NewContext(parent context.Context, cfg *config.Config, r *output.Renderer, logger *slog.Logger) context.Context {
	ctx := context.WithValue(parent, configKey, cfg)
	ctx = context.WithValue(ctx, rendererKey, r)
	ctx = context.WithValue(ctx, loggerKey, logger)
	return ctx
}

// ConfigFrom retrieves the config from the command context.
func ConfigFrom(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey).(*config.Config); ok {
		return c
	}
	return &config.Config{OutputFormat: config.DefaultOutput}
}

// RendererFrom retrieves the renderer from the command context.
func RendererFrom(ctx context.Context) *output.Renderer {
	if r, ok := ctx.Value(rendererKey).(*output.Renderer); ok {
		return r
	}
	return output.NewRenderer(os.Stdout, os.Stderr, output.ModeAuto)
}

// LoggerFrom retrieves the logger from the command context.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}
