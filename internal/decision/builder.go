package decision

import (
	"context"

	"github.com/vk/klotskigraph/internal/board"
	"github.com/vk/klotskigraph/internal/ctxlog"
)

// Builder assembles the reachable-state graph from an initial board by
// breadth-first traversal with signature-keyed deduplication.
//
// Workers selects the expansion strategy. The default sequential walk (one
// worker) discovers nodes and edges in a deterministic order. With more than
// one worker each BFS level is expanded on a pool; node creation stays
// exactly-once per signature, but discovery order within a level becomes
// nondeterministic, which only affects display ordering.
type Builder struct {
	Workers int
}

// Build explores every state reachable from initial and returns the
// assembled graph. Exploration does not stop at winning states — pieces can
// still move after the puzzle is solved, so winning nodes are expanded like
// any other. The error is non-nil only when a multi-worker build is
// cancelled through ctx; the sequential walk always runs to completion.
func (bld *Builder) Build(ctx context.Context, initial *board.Board) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)

	store := newNodeStore()
	root, _ := store.loadOrCreate(initial, initial.Hash())
	root.Starting = true
	g := &Graph{Root: root, Nodes: []*Node{root}}

	if bld.Workers > 1 {
		if err := bld.buildParallel(ctx, store, g); err != nil {
			return nil, err
		}
	} else {
		bld.buildSequential(store, g)
	}

	logger.Debug("reachable-state graph assembled",
		"states", len(g.Nodes),
		"transitions", g.EdgeCount(),
		"winning_states", g.WinningCount(),
	)
	return g, nil
}

// buildSequential is the plain FIFO traversal: dequeue, expand, enqueue
// whatever the expansion discovered.
func (bld *Builder) buildSequential(store *nodeStore, g *Graph) {
	queue := []*Node{g.Root}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		expand(store, current, func(created *Node) {
			g.Nodes = append(g.Nodes, created)
			queue = append(queue, created)
		})
	}
}

// expand enumerates every successor of current, registers unseen states
// through the store and appends one edge per observed transition. onCreate
// is invoked for each node this expansion created; the caller decides how to
// schedule it. A node enters the graph exactly once, so each node is
// expanded by exactly one caller and appending to current.Edges needs no
// synchronization.
func expand(store *nodeStore, current *Node, onCreate func(*Node)) {
	for _, succ := range current.Board.NextStates() {
		hash := succ.Hash()
		next, created := store.loadOrCreate(succ, hash)
		if created {
			onCreate(next)
		}
		if hash == current.Hash {
			// Degenerate self-transition. NextStates never yields one, but a
			// self-edge would be nonsense so it is dropped outright.
			continue
		}
		current.Edges = append(current.Edges, Edge{
			To:   next,
			Move: board.DescribeMove(current.Board, succ),
		})
	}
}
