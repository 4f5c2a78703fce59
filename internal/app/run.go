package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/vk/klotskigraph/internal/ctxlog"
	"github.com/vk/klotskigraph/internal/decision"
	"github.com/vk/klotskigraph/internal/export"
)

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	initial := a.model.ToBoard()
	a.logger.Info("🧩 Exploring state space...",
		"rows", initial.Rows,
		"columns", initial.Columns,
		"blocks", len(initial.Blocks),
		"workers", appConfig.Workers,
	)

	builder := &decision.Builder{Workers: appConfig.Workers}
	start := time.Now()
	graph, err := builder.Build(ctx, initial)
	if err != nil {
		return fmt.Errorf("failed to build state graph: %w", err)
	}
	a.logger.Info("🏁 Exploration finished.",
		"states", len(graph.Nodes),
		"transitions", graph.EdgeCount(),
		"winning_states", graph.WinningCount(),
		"duration", time.Since(start),
	)

	if appConfig.OutPath != "" {
		if err := a.exportGraph(graph, appConfig.OutPath, appConfig.OutFormat); err != nil {
			return err
		}
	}

	if appConfig.ServePort > 0 {
		return a.serveGraph(graph, appConfig.ServePort)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// exportGraph writes the built graph to a file in the requested format.
func (a *App) exportGraph(graph *decision.Graph, path, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	switch format {
	case "dot":
		err = export.WriteDOT(f, graph)
	default:
		err = export.WriteJSON(f, graph)
	}
	if err != nil {
		return fmt.Errorf("failed to export graph: %w", err)
	}

	a.logger.Info("Graph written.", "path", path, "format", format)
	return nil
}
