// Package mesh - immutable topology snapshots.
//
// Snapshot is the read-only view the routing package consumes: a routing
// call may run many stochastic iterations and must never observe a mesh
// that is being repaired or mutated mid-search. Taking a Snapshot copies
// nodes, adjacency and edges once, under a read lock; afterwards the live
// Topology and the Snapshot share nothing mutable.
package mesh

import (
	"math"
	"sort"
)

// inf marks distances between nodes that cannot both be resolved.
var inf = math.Inf(1)

// Snapshot is a deep, immutable copy of a Topology at one instant.
// All accessors are safe for concurrent use without locking.
type Snapshot struct {
	nodes   map[string]Node
	order   []string            // node ids, ascending
	adj     map[string][]string // neighbor ids, ascending
	edges   []Connection
	edgeIdx map[EdgeKey]Connection
}

// Snapshot captures the current topology state.
// Complexity: O(V + E) time and space.
func (t *Topology) Snapshot() *Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s := &Snapshot{
		nodes:   make(map[string]Node, len(t.nodes)),
		order:   make([]string, 0, len(t.nodes)),
		adj:     make(map[string][]string, len(t.nodes)),
		edges:   make([]Connection, 0, len(t.edges)),
		edgeIdx: make(map[EdgeKey]Connection, len(t.edges)),
	}
	for id, n := range t.nodes {
		s.nodes[id] = t.viewLocked(n)
		s.order = append(s.order, id)
	}
	sort.Strings(s.order)

	for _, id := range s.order {
		// viewLocked already sorted the neighbor slice; reuse it.
		s.adj[id] = s.nodes[id].Neighbors
	}
	for _, c := range t.edges {
		s.edges = append(s.edges, *c)
		s.edgeIdx[c.Key] = *c
	}

	return s
}

// Len returns the number of nodes in the snapshot.
func (s *Snapshot) Len() int { return len(s.order) }

// Contains reports whether the snapshot holds a node with the given id.
func (s *Snapshot) Contains(id string) bool {
	_, ok := s.nodes[id]

	return ok
}

// Node returns the captured node value; ok is false for unknown ids.
func (s *Snapshot) Node(id string) (Node, bool) {
	n, ok := s.nodes[id]

	return n, ok
}

// Online reports whether the node exists and was online at capture time.
func (s *Snapshot) Online(id string) bool {
	n, ok := s.nodes[id]

	return ok && n.Status == StatusOnline
}

// NodeIDs returns all node ids in ascending order. The slice is shared
// with the snapshot; callers must not mutate it.
func (s *Snapshot) NodeIDs() []string { return s.order }

// Neighbors returns the node's neighbor ids in ascending order, or nil
// for unknown ids. The slice is shared with the snapshot; callers must
// not mutate it.
func (s *Snapshot) Neighbors(id string) []string { return s.adj[id] }

// OnlineNeighbors returns the node's online neighbors in ascending order.
// The result is freshly allocated.
func (s *Snapshot) OnlineNeighbors(id string) []string {
	src := s.adj[id]
	out := make([]string, 0, len(src))
	for _, nb := range src {
		if s.Online(nb) {
			out = append(out, nb)
		}
	}

	return out
}

// Edges returns a copy of all captured connections.
func (s *Snapshot) Edges() []Connection {
	out := make([]Connection, len(s.edges))
	copy(out, s.edges)

	return out
}

// EdgeKeys returns the keys of every captured connection in unspecified
// but capture-stable order.
func (s *Snapshot) EdgeKeys() []EdgeKey {
	out := make([]EdgeKey, 0, len(s.edges))
	for _, c := range s.edges {
		out = append(out, c.Key)
	}

	return out
}

// Connection returns the captured connection between a and b, in either
// endpoint order; ok is false when the pair is not connected.
func (s *Snapshot) Connection(a, b string) (Connection, bool) {
	c, ok := s.edgeIdx[NewEdgeKey(a, b)]

	return c, ok
}

// Distance returns the Euclidean distance between two captured nodes.
// Unknown ids yield +Inf, which callers treat as "not connectable".
func (s *Snapshot) Distance(a, b string) float64 {
	na, okA := s.nodes[a]
	nb, okB := s.nodes[b]
	if !okA || !okB {
		return inf
	}

	return euclidean(na.X, na.Y, nb.X, nb.Y)
}
