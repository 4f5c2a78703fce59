package decision

import (
	"sync"

	"github.com/vk/klotskigraph/internal/board"
)

// nodeStore memoizes graph nodes by canonical signature. loadOrCreate is the
// only write path, so node creation is at-most-once per signature even when
// BFS levels are expanded concurrently. A plain mutex-guarded map is used
// rather than sync.Map: insert-if-absent must be atomic, and a bare
// check-then-insert over sync.Map would race.
type nodeStore struct {
	mu    sync.Mutex
	nodes map[string]*Node
}

func newNodeStore() *nodeStore {
	return &nodeStore{nodes: make(map[string]*Node)}
}

// loadOrCreate returns the node registered under hash, creating and
// registering it from b if absent. The second result reports whether the
// node was created by this call.
func (s *nodeStore) loadOrCreate(b *board.Board, hash string) (*Node, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n, ok := s.nodes[hash]; ok {
		return n, false
	}
	n := &Node{Board: b, Hash: hash, Winning: b.IsWinning()}
	s.nodes[hash] = n
	return n, true
}
