package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/klotskigraph/internal/config"
	"github.com/vk/klotskigraph/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle: load and validate the board definition, explore its state
// space, then dispatch the configured outputs.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	model  *config.Model
}

// NewApp is the constructor for the main application. It loads the board
// definition through the given loader and validates it, returning a fully
// initialized App with its own isolated logger. A definition that cannot be
// loaded or does not describe a physically sensible puzzle is a fatal
// startup error and panics; the entrypoint recovers it into a clean exit.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.BoardPath)
	if err != nil {
		panic(fmt.Errorf("failed to load board definition: %w", err))
	}
	if err := model.Validate(); err != nil {
		panic(fmt.Errorf("invalid board definition: %w", err))
	}
	logger.Debug("Board definition loaded and validated.", "blocks", len(model.Blocks))

	return &App{
		outW:   outW,
		logger: logger,
		model:  model,
	}
}

// Model returns the loaded board definition. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
