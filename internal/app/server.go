package app

import (
	"fmt"
	"net/http"

	"github.com/vk/klotskigraph/internal/decision"
	"github.com/vk/klotskigraph/internal/export"
)

// graphHandler serves the built graph as JSON to out-of-process consumers
// such as the visualization layer. The graph is immutable after Build
// returns, so the handler needs no synchronization.
func (a *App) graphHandler(graph *decision.Graph) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a.logger.Debug("Graph endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		if err := export.WriteJSON(w, graph); err != nil {
			a.logger.Error("Failed to write graph response", "error", err)
		}
	}
}

// healthHandler answers liveness probes.
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// serveGraph runs the HTTP graph server until the process is stopped.
func (a *App) serveGraph(graph *decision.Graph, port int) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/graph", a.graphHandler(graph))
	mux.HandleFunc("/health", a.healthHandler)

	addr := fmt.Sprintf(":%d", port)
	a.logger.Info("🌐 Graph server starting", "address", fmt.Sprintf("http://localhost%s/graph", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		return fmt.Errorf("graph server failed: %w", err)
	}
	return nil
}
