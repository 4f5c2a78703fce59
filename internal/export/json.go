package export

import (
	"encoding/json"
	"io"

	"github.com/vk/klotskigraph/internal/decision"
)

// Graph is the wire form of a built decision graph: a flat node list in
// discovery order plus one entry per directed transition edge. Hashes are
// the node identities, so consumers can rebuild the adjacency structure
// without pointer chasing.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is one board state with its full block snapshot.
type Node struct {
	Hash     string  `json:"hash"`
	Starting bool    `json:"starting,omitempty"`
	Winning  bool    `json:"winning,omitempty"`
	Blocks   []Block `json:"blocks"`
}

// Block is one piece of a node's board snapshot.
type Block struct {
	ID     int `json:"id"`
	Width  int `json:"width"`
	Height int `json:"height"`
	X      int `json:"x"`
	Y      int `json:"y"`
}

// Edge is one labeled transition between two states.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
	Move string `json:"move"`
}

// Snapshot flattens a decision graph into its wire form.
func Snapshot(g *decision.Graph) *Graph {
	out := &Graph{Nodes: make([]Node, 0, len(g.Nodes))}
	for _, n := range g.Nodes {
		node := Node{
			Hash:     n.Hash,
			Starting: n.Starting,
			Winning:  n.Winning,
			Blocks:   make([]Block, 0, len(n.Board.Blocks)),
		}
		for _, blk := range n.Board.Blocks {
			node.Blocks = append(node.Blocks, Block{
				ID:     blk.ID,
				Width:  blk.Width,
				Height: blk.Height,
				X:      blk.X,
				Y:      blk.Y,
			})
		}
		out.Nodes = append(out.Nodes, node)

		for _, e := range n.Edges {
			out.Edges = append(out.Edges, Edge{From: n.Hash, To: e.To.Hash, Move: e.Move})
		}
	}
	return out
}

// WriteJSON encodes the graph as indented JSON.
func WriteJSON(w io.Writer, g *decision.Graph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Snapshot(g))
}
