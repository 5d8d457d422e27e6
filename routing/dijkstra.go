// Package routing - deterministic shortest-path strategy.
//
// ShortestPath runs Dijkstra over the online subgraph of a snapshot with
// a min-heap frontier and the lazy-decrease-key pattern: improved
// distances push duplicate heap entries, and stale entries are skipped on
// pop via the visited set.
//
// The edge cost is not pure geometry; weak links inflate it:
//
//	cost(a,b) = d(a,b) · (1 + signalFactor·0.5 + batteryFactor·0.3)
//	signalFactor  = (200 − signal(a) − signal(b)) / 200
//	batteryFactor = (200 − battery(a) − battery(b)) / 200
//
// so the search steers away from low-signal, low-battery relays even when
// they are geometrically shorter.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) under lazy-decrease-key.
package routing

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/meshnet/mesh"
)

// Edge-cost weighting of the two quality factors.
const (
	signalCostWeight  = 0.5
	batteryCostWeight = 0.3
)

// ShortestPath computes the minimum-cost online path from source to
// destination in the snapshot.
//
// Failure semantics: an unreachable destination — including unknown ids
// and non-online endpoints — returns ErrNoRoute, the normal outcome for a
// partitioned mesh. Only nil snapshots and empty ids are argument errors.
func ShortestPath(snap *mesh.Snapshot, source, destination string) (Route, error) {
	// 1) Validate arguments.
	if err := validateEndpoints(snap, source, destination); err != nil {
		return Route{}, err
	}

	// 2) Trivial route: source and destination coincide.
	if source == destination {
		return Route{
			Nodes:       []string{source},
			Cost:        0,
			Latency:     0,
			Reliability: pathReliability(snap, []string{source}),
			Strategy:    StrategyShortest,
		}, nil
	}

	// 3) Initialize tentative distances (source = 0, rest = +∞),
	//    predecessors and the frontier heap.
	dist := make(map[string]float64, snap.Len())
	prev := make(map[string]string, snap.Len())
	visited := make(map[string]bool, snap.Len())
	for _, id := range snap.NodeIDs() {
		dist[id] = math.Inf(1)
	}
	dist[source] = 0

	pq := make(frontier, 0, snap.Len())
	heap.Init(&pq)
	heap.Push(&pq, &frontierItem{id: source, dist: 0})

	// 4) Main loop: extract the unvisited node with minimum tentative
	//    distance; stop early on the destination.
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*frontierItem)
		u := item.id
		if visited[u] {
			continue // stale lazy-decrease-key entry
		}
		visited[u] = true
		if u == destination {
			break
		}

		// 5) Relax online neighbors of u.
		for _, v := range snap.OnlineNeighbors(u) {
			if visited[v] {
				continue
			}
			nd := dist[u] + edgeCost(snap, u, v)
			if nd >= dist[v] {
				continue
			}
			dist[v] = nd
			prev[v] = u
			heap.Push(&pq, &frontierItem{id: v, dist: nd})
		}
	}

	// 6) Reconstruct by walking predecessors from the destination. If the
	//    walk does not land on the source, the destination is unreachable:
	//    report no-route, never a partial path.
	path := reconstruct(prev, source, destination)
	if len(path) == 0 || path[0] != source {
		return Route{}, fmt.Errorf("%w: %s -> %s", ErrNoRoute, source, destination)
	}

	return Route{
		Nodes:       path,
		Cost:        dist[destination],
		Latency:     pathLatency(snap, path),
		Reliability: pathReliability(snap, path),
		Strategy:    StrategyShortest,
	}, nil
}

// validateEndpoints applies the shared argument checks for both planners.
// Unknown and non-online endpoints surface as ErrNoRoute per the failure
// taxonomy; they must not crash a routing call.
func validateEndpoints(snap *mesh.Snapshot, source, destination string) error {
	if snap == nil {
		return ErrNilSnapshot
	}
	if source == "" || destination == "" {
		return ErrEmptyEndpoint
	}
	if !snap.Online(source) || !snap.Online(destination) {
		return fmt.Errorf("%w: %s -> %s", ErrNoRoute, source, destination)
	}

	return nil
}

// edgeCost computes the quality-inflated traversal cost of edge (a, b).
func edgeCost(snap *mesh.Snapshot, a, b string) float64 {
	na, _ := snap.Node(a)
	nb, _ := snap.Node(b)
	signalFactor := (200 - na.Signal - nb.Signal) / 200
	batteryFactor := (200 - na.Battery - nb.Battery) / 200

	return snap.Distance(a, b) *
		(1 + signalFactor*signalCostWeight + batteryFactor*batteryCostWeight)
}

// reconstruct walks the predecessor chain destination → source and
// returns the path in forward order. An empty result means the
// destination was never reached.
func reconstruct(prev map[string]string, source, destination string) []string {
	if _, ok := prev[destination]; !ok {
		return nil
	}
	path := []string{destination}
	for curr := destination; curr != source; {
		p, ok := prev[curr]
		if !ok {
			return nil
		}
		path = append(path, p)
		curr = p
	}
	// Reverse in place: we appended destination → source.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// pathLatency sums per-edge latency along the path, preferring the
// captured Connection latency and falling back to the distance formula
// for pairs without a recorded edge.
func pathLatency(snap *mesh.Snapshot, path []string) float64 {
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		if c, ok := snap.Connection(path[i], path[i+1]); ok {
			total += c.Latency
			continue
		}
		total += 10 + snap.Distance(path[i], path[i+1])/10
	}

	return total
}

// pathReliability multiplies per-node (signal/100)·(battery/100) over the
// whole path — a crude degradation estimate kept for output
// compatibility, not a probability in the strict sense.
func pathReliability(snap *mesh.Snapshot, path []string) float64 {
	rel := 1.0
	for _, id := range path {
		n, ok := snap.Node(id)
		if !ok {
			return 0
		}
		rel *= (n.Signal / 100) * (n.Battery / 100)
	}

	return rel
}

// frontierItem is a (node, tentative distance) pair in the frontier heap.
type frontierItem struct {
	id   string
	dist float64
}

// frontier is a min-heap of *frontierItem ordered by dist ascending,
// used with the lazy-decrease-key pattern: duplicates are pushed and
// stale entries skipped on pop.
type frontier []*frontierItem

func (f frontier) Len() int            { return len(f) }
func (f frontier) Less(i, j int) bool  { return f[i].dist < f[j].dist }
func (f frontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*frontierItem)) }
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
