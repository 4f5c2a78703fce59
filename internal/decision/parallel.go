package decision

import (
	"context"
	"sync"

	"github.com/vk/klotskigraph/internal/ctxlog"
)

// buildParallel expands the graph one BFS level at a time, spreading the
// frontier across Workers goroutines. Boards are disjoint copies with no
// shared mutable state, so the only synchronized structures are the node
// store and the next-frontier accumulator. Cancellation is checked between
// levels; a level in flight always completes.
func (bld *Builder) buildParallel(ctx context.Context, store *nodeStore, g *Graph) error {
	logger := ctxlog.FromContext(ctx)

	frontier := []*Node{g.Root}
	for level := 0; len(frontier) > 0; level++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		var (
			mu   sync.Mutex
			next []*Node
			wg   sync.WaitGroup
		)
		jobs := make(chan *Node)

		for w := 0; w < bld.Workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for current := range jobs {
					expand(store, current, func(created *Node) {
						mu.Lock()
						g.Nodes = append(g.Nodes, created)
						next = append(next, created)
						mu.Unlock()
					})
				}
			}()
		}

		for _, n := range frontier {
			jobs <- n
		}
		close(jobs)
		wg.Wait()

		logger.Debug("frontier expanded",
			"level", level,
			"frontier", len(frontier),
			"discovered", len(next),
		)
		frontier = next
	}
	return nil
}
