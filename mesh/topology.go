// Package mesh - Topology: the mutable, thread-safe mesh graph.
//
// Topology owns two representations of connectivity (per-node adjacency
// sets and an edge map keyed by EdgeKey) guarded by a single RWMutex so
// that the two can never diverge: every establishment and removal updates
// both under one critical section.
package mesh

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// nodeState is the internal mutable record behind the exported Node view.
type nodeState struct {
	id           string
	name         string
	x, y         float64
	status       Status
	battery      float64
	signal       float64
	lastSeen     time.Time
	messageCount int64
	ipAddress    string
}

// Topology is the mutable mesh graph.
//
// All exported methods are safe for concurrent use. Routing never reads a
// live Topology: call Snapshot() and hand the immutable copy to the
// routing package, so a long stochastic search cannot observe a mesh that
// is being repaired mid-run.
type Topology struct {
	mu sync.RWMutex // guards nodes, adj and edges together

	cfg topoConfig

	nodes map[string]*nodeState
	adj   map[string]map[string]struct{}
	edges map[EdgeKey]*Connection

	seq uint64 // display-IP sequence
}

// NewTopology creates an empty Topology with the given options applied.
// Complexity: O(1).
func NewTopology(opts ...TopologyOption) *Topology {
	cfg := defaultTopoConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Topology{
		cfg:   cfg,
		nodes: make(map[string]*nodeState),
		adj:   make(map[string]map[string]struct{}),
		edges: make(map[EdgeKey]*Connection),
	}
}

// AddNode allocates a new node with status online, full battery and
// signal, assigns a fresh uuid and a display IP, and, unless
// auto-discovery is disabled, immediately discovers nearby connections.
// AddNode never fails; the returned Node is a value snapshot.
//
// Complexity: O(V log V) with auto-discovery (candidate sort), O(1) without.
func (t *Topology) AddNode(name string, x, y float64) Node {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.seq++
	n := &nodeState{
		id:        uuid.NewString(),
		name:      name,
		x:         x,
		y:         y,
		status:    StatusOnline,
		battery:   fullCharge,
		signal:    fullCharge,
		lastSeen:  t.cfg.clk.Now(),
		ipAddress: fmt.Sprintf("10.42.%d.%d", t.seq/254, t.seq%254+1),
	}
	t.nodes[n.id] = n
	t.adj[n.id] = make(map[string]struct{})

	if t.cfg.autoDiscover {
		t.discoverLocked(n)
	}

	t.cfg.logger.Debug("node added",
		zap.String("id", n.id),
		zap.String("name", name),
		zap.Int("degree", len(t.adj[n.id])),
	)

	return t.viewLocked(n)
}

// EstablishConnection creates the undirected edge between a and b,
// updating both adjacency sets and the edge map atomically.
//
// Strength and Latency derive from the endpoint distance:
//
//	Strength = max(0, 100 − (d/maxRange)·50)
//	Latency  = 10 + d/10
//
// The call is idempotent: re-establishing an existing pair returns the
// existing Connection unchanged. Self-pairs return ErrSelfConnection;
// unknown ids return ErrNodeNotFound wrapped with the offending id.
func (t *Topology) EstablishConnection(a, b string) (Connection, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	conn, err := t.establishLocked(a, b)
	if err != nil {
		return Connection{}, err
	}

	return *conn, nil
}

// establishLocked performs connection establishment under t.mu.
func (t *Topology) establishLocked(a, b string) (*Connection, error) {
	if a == b {
		return nil, fmt.Errorf("%w: %q", ErrSelfConnection, a)
	}

	na, ok := t.nodes[a]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, a)
	}
	nb, ok := t.nodes[b]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, b)
	}

	// Duplicate guard: the pair may already be connected.
	key := NewEdgeKey(a, b)
	if existing, dup := t.edges[key]; dup {
		return existing, nil
	}

	d := euclidean(na.x, na.y, nb.x, nb.y)
	conn := &Connection{
		Key:      key,
		Strength: math.Max(0, fullCharge-(d/t.cfg.maxRange)*strengthFalloff),
		Latency:  baseLatency + d*latencyPerDistance,
		Active:   na.status == StatusOnline && nb.status == StatusOnline,
	}

	// Symmetric by construction: both adjacency sets and the edge map are
	// updated inside the same critical section.
	t.adj[a][b] = struct{}{}
	t.adj[b][a] = struct{}{}
	t.edges[key] = conn

	return conn, nil
}

// RemoveNode deletes the node and scrubs every reference to it: each
// neighbor's adjacency set and every edge touching the id. Unknown ids
// are a no-op. After the call no dangling reference to id remains.
//
// Complexity: O(d) for degree d (plus an O(E) sweep as a final guard).
func (t *Topology) RemoveNode(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.nodes[id]; !ok {
		return
	}

	for nb := range t.adj[id] {
		delete(t.adj[nb], id)
		delete(t.edges, NewEdgeKey(id, nb))
	}

	// Guard sweep: even if adjacency and edges ever diverged, no edge
	// referencing id may survive the removal.
	for key := range t.edges {
		if key.Contains(id) {
			delete(t.edges, key)
		}
	}

	delete(t.adj, id)
	delete(t.nodes, id)

	t.cfg.logger.Debug("node removed", zap.String("id", id))
}

// UpdateNodeStatus sets the node's status. Transitioning to online
// refreshes LastSeen. Incident connections have their Active flag
// refreshed to mirror both-endpoints-online. Unknown ids are a no-op.
func (t *Topology) UpdateNodeStatus(id string, s Status) {
	t.mu.Lock()
	defer t.mu.Unlock()

	n, ok := t.nodes[id]
	if !ok {
		return
	}

	prev := n.status
	n.status = s
	if s == StatusOnline && prev != StatusOnline {
		n.lastSeen = t.cfg.clk.Now()
	}

	t.refreshActiveLocked(id)

	t.cfg.logger.Debug("node status",
		zap.String("id", id),
		zap.Stringer("from", prev),
		zap.Stringer("to", s),
	)
}

// UpdateNodeVitals sets battery and signal, clamped to [0,100].
// Unknown ids are a no-op.
func (t *Topology) UpdateNodeVitals(id string, battery, signal float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	n, ok := t.nodes[id]
	if !ok {
		return
	}
	n.battery = clampVital(battery)
	n.signal = clampVital(signal)
}

// RecordDelivery credits every node on a delivered route with one
// message participation and, when battery drain is configured, drains
// the per-delivery charge. Unknown ids on the path are skipped.
func (t *Topology) RecordDelivery(path []string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, id := range path {
		n, ok := t.nodes[id]
		if !ok {
			continue
		}
		n.messageCount++
		if t.cfg.drainPerDelivery > 0 {
			n.battery = clampVital(n.battery - t.cfg.drainPerDelivery)
		}
	}

	t.cfg.logger.Debug("delivery recorded", zap.Int("hops", len(path)))
}

// Node returns a value snapshot of the node, with Neighbors materialized
// in ascending order. The second result is false for unknown ids.
func (t *Topology) Node(id string) (Node, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n, ok := t.nodes[id]
	if !ok {
		return Node{}, false
	}

	return t.viewLocked(n), true
}

// Nodes returns value snapshots of every node, sorted by id.
func (t *Topology) Nodes() []Node {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Node, 0, len(t.nodes))
	for _, n := range t.nodes {
		out = append(out, t.viewLocked(n))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Connections returns copies of every edge, sorted by key for stable
// iteration in callers and tests.
func (t *Topology) Connections() []Connection {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Connection, 0, len(t.edges))
	for _, c := range t.edges {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Key.A != out[j].Key.A {
			return out[i].Key.A < out[j].Key.A
		}

		return out[i].Key.B < out[j].Key.B
	})

	return out
}

// Stats aggregates topology-wide counters in one pass.
func (t *Topology) Stats() Stats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s := Stats{NodeCount: len(t.nodes), ConnectionCount: len(t.edges)}
	for _, n := range t.nodes {
		if n.status == StatusOnline {
			s.OnlineCount++
		} else {
			s.OfflineCount++
		}
	}
	for _, c := range t.edges {
		if c.Active {
			s.ActiveConnectionCount++
		}
	}
	if s.NodeCount > 0 {
		// Each undirected edge contributes two adjacency entries.
		s.AvgDegree = float64(2*len(t.edges)) / float64(s.NodeCount)
	}

	return s
}

// refreshActiveLocked recomputes Active on every edge incident to id.
func (t *Topology) refreshActiveLocked(id string) {
	for nb := range t.adj[id] {
		key := NewEdgeKey(id, nb)
		conn, ok := t.edges[key]
		if !ok {
			continue
		}
		conn.Active = t.nodes[key.A].status == StatusOnline &&
			t.nodes[key.B].status == StatusOnline
	}
}

// viewLocked materializes the exported Node value for a nodeState.
func (t *Topology) viewLocked(n *nodeState) Node {
	neighbors := make([]string, 0, len(t.adj[n.id]))
	for nb := range t.adj[n.id] {
		neighbors = append(neighbors, nb)
	}
	sort.Strings(neighbors)

	return Node{
		ID:           n.id,
		Name:         n.name,
		X:            n.x,
		Y:            n.y,
		Status:       n.status,
		Battery:      n.battery,
		Signal:       n.signal,
		LastSeen:     n.lastSeen,
		MessageCount: n.messageCount,
		IPAddress:    n.ipAddress,
		Neighbors:    neighbors,
	}
}

// euclidean returns the planar distance between (x1,y1) and (x2,y2).
func euclidean(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// clampVital bounds battery/signal values to [0,100].
func clampVital(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > fullCharge:
		return fullCharge
	default:
		return v
	}
}
