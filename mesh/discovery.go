// Package mesh - proximity discovery and the self-healing repair pass.
//
// Contract:
//   - Discovery considers online candidates within maxRange only.
//   - Candidates are ranked ascending by (distance, id); the id component
//     makes ties deterministic regardless of map iteration order.
//   - Discovery never pushes a node's degree beyond maxAutoConnections.
//   - HealNetwork is idempotent and never removes an edge whose both
//     endpoints are online.
package mesh

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// candidate pairs a reachable node id with its distance for ranking.
type candidate struct {
	id   string
	dist float64
}

// DiscoverConnections re-runs proximity discovery for the given node:
// every online node within maxRange that is not already connected becomes
// a candidate, nearest first, until the node's connection budget is
// exhausted. Unknown ids return ErrNodeNotFound.
//
// Complexity: O(V log V) — distance scan plus candidate sort.
func (t *Topology) DiscoverConnections(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	n, ok := t.nodes[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	t.discoverLocked(n)

	return nil
}

// discoverLocked performs discovery for n under t.mu.
func (t *Topology) discoverLocked(n *nodeState) {
	budget := t.cfg.maxAuto - len(t.adj[n.id])
	if budget <= 0 {
		return
	}

	// 1) Collect online, in-range, not-yet-connected candidates.
	cands := make([]candidate, 0, len(t.nodes))
	for id, other := range t.nodes {
		if id == n.id || other.status != StatusOnline {
			continue
		}
		if _, connected := t.adj[n.id][id]; connected {
			continue
		}
		d := euclidean(n.x, n.y, other.x, other.y)
		if d <= t.cfg.maxRange {
			cands = append(cands, candidate{id: id, dist: d})
		}
	}

	// 2) Rank ascending by (distance, id) — stable, map-order independent.
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].dist != cands[j].dist {
			return cands[i].dist < cands[j].dist
		}

		return cands[i].id < cands[j].id
	})

	// 3) Connect the nearest candidates until the budget runs out.
	for _, c := range cands {
		if budget == 0 {
			break
		}
		if _, err := t.establishLocked(n.id, c.id); err != nil {
			// Unreachable with the candidate filter above; skip defensively.
			continue
		}
		budget--
	}
}

// HealNetwork runs the self-repair pass:
//
//  1. Prune every edge with a missing or non-online endpoint, removing it
//     from the edge map and from both adjacency sets. Edges whose both
//     endpoints are online are never touched.
//  2. Re-run discovery for every online node whose degree is below
//     minConnections, visiting nodes in ascending id order so repair is
//     deterministic.
//
// Running HealNetwork twice with no intervening topology change yields
// identical adjacency both times: the second prune finds nothing, and the
// second discovery sees the same candidate sets.
func (t *Topology) HealNetwork() {
	t.mu.Lock()
	defer t.mu.Unlock()

	// Pass 1: prune stale edges.
	pruned := 0
	for key := range t.edges {
		a, okA := t.nodes[key.A]
		b, okB := t.nodes[key.B]
		if okA && okB && a.status == StatusOnline && b.status == StatusOnline {
			continue
		}
		delete(t.edges, key)
		if okA {
			delete(t.adj[key.A], key.B)
		}
		if okB {
			delete(t.adj[key.B], key.A)
		}
		pruned++
	}

	// Pass 2: reconnect under-connected online nodes, in id order.
	ids := make([]string, 0, len(t.nodes))
	for id := range t.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	reconnected := 0
	for _, id := range ids {
		n := t.nodes[id]
		if n.status != StatusOnline {
			continue
		}
		if len(t.adj[id]) < t.cfg.minConnections {
			before := len(t.adj[id])
			t.discoverLocked(n)
			reconnected += len(t.adj[id]) - before
		}
	}

	t.cfg.logger.Info("heal pass",
		zap.Int("pruned", pruned),
		zap.Int("reconnected", reconnected),
	)
}

// SimulateFailure marks the node offline and immediately heals the mesh,
// so surviving nodes re-route around the gap. Unknown ids are a no-op for
// the status change; the heal still runs.
func (t *Topology) SimulateFailure(id string) {
	t.UpdateNodeStatus(id, StatusOffline)
	t.HealNetwork()
}

// SimulateRecovery brings the node back online and rediscovers its
// neighborhood. Unknown ids are a no-op.
func (t *Topology) SimulateRecovery(id string) {
	t.UpdateNodeStatus(id, StatusOnline)
	// DiscoverConnections only errors on unknown ids, which we ignore to
	// keep recovery a no-op in that case.
	_ = t.DiscoverConnections(id)
}
