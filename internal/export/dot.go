package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/vk/klotskigraph/internal/decision"
)

// WriteDOT renders the graph in Graphviz dot format for quick visual
// inspection. Nodes are numbered in discovery order; the starting state is
// drawn as a box and winning states are doubled circles.
func WriteDOT(w io.Writer, g *decision.Graph) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "digraph states {")
	fmt.Fprintln(bw, "  node [shape=circle];")

	index := make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		index[n.Hash] = i
		attrs := fmt.Sprintf("label=%q", n.Hash)
		if n.Starting {
			attrs += ", shape=box"
		}
		if n.Winning {
			attrs += ", shape=doublecircle"
		}
		fmt.Fprintf(bw, "  n%d [%s];\n", i, attrs)
	}
	for i, n := range g.Nodes {
		for _, e := range n.Edges {
			fmt.Fprintf(bw, "  n%d -> n%d [label=%q];\n", i, index[e.To.Hash], e.Move)
		}
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}
