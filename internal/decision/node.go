package decision

import "github.com/vk/klotskigraph/internal/board"

// Edge links a node to a neighboring state, labeled with the move that
// produces it. A node's edge list is in discovery order; the order only
// matters for display.
type Edge struct {
	To   *Node
	Move string
}

// Node wraps one canonical board state in the reachable-state graph. Exactly
// one node exists per distinct signature for a given build; the node owns
// its board, which must not be mutated after the node is published.
type Node struct {
	Board    *board.Board
	Hash     string
	Edges    []Edge
	Winning  bool
	Starting bool
}

// Graph is the full reachable-state transition graph built from one initial
// board. Nodes is in discovery order, starting with Root.
type Graph struct {
	Root  *Node
	Nodes []*Node
}

// EdgeCount returns the number of directed transition edges in the graph.
// Every move is reversible, so this is twice the number of distinct moves.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, n := range g.Nodes {
		total += len(n.Edges)
	}
	return total
}

// WinningCount returns the number of states satisfying the win condition.
func (g *Graph) WinningCount() int {
	total := 0
	for _, n := range g.Nodes {
		if n.Winning {
			total++
		}
	}
	return total
}
