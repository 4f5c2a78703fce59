// Package export serializes a built reachable-state graph for external
// consumers: JSON for the visualization layer and Graphviz dot for quick
// inspection. Encoders are read-only over the graph.
package export
