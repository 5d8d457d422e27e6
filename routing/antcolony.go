// Package routing - stochastic ant-colony strategy.
//
// AntColony searches the online subgraph with a colony of memoryless
// agents guided by two signals on each edge:
//
//   - pheromone: per-call desirability, reinforced by successful walks and
//     decayed every iteration;
//   - heuristic: 1/(1+d(candidate,destination)), biasing ants toward the
//     goal.
//
// The pheromone map lives and dies inside a single call: it is reset to a
// uniform level over the edges present in the supplied snapshot, so
// independent calls never share learning and remain reproducible under a
// fixed seed.
//
// An ant that walks itself into a corner — no online, unvisited neighbor
// left — simply fails; it does not retry or backtrack. Long detours can
// therefore dead-end, which is an accepted property of the walk, not a
// defect to paper over.
package routing

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/meshnet/mesh"
)

// walk is one successful ant traversal collected within an iteration.
type walk struct {
	path []string
	cost float64
}

// AntColony computes a route from source to destination under the given
// priority using the stochastic strategy.
//
// Per call: reset pheromone; for every iteration dispatch the configured
// ants, track the cheapest successful walk globally, then evaporate all
// pheromone by (1−evaporationRate) and deposit Q/cost·priorityMultiplier
// on each successful path. Returns the global best, or ErrNoRoute if no
// ant ever arrived.
//
// If the options carry a context that expires mid-run, the best route
// found so far is returned early (ErrNoRoute when there is none yet).
//
// Complexity: O(iterations · ants · V · d) with d the average degree.
func AntColony(snap *mesh.Snapshot, source, destination string, p Priority, opts ...Option) (Route, error) {
	// 1) Resolve configuration and validate arguments.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !p.valid() {
		return Route{}, fmt.Errorf("%w: %d", ErrUnknownPriority, int(p))
	}
	if err := validateEndpoints(snap, source, destination); err != nil {
		return Route{}, err
	}

	// 2) Trivial route: nothing to search.
	if source == destination {
		return Route{
			Nodes:       []string{source},
			Cost:        0,
			Latency:     0,
			Reliability: standInReliability(0),
			Strategy:    StrategyAntColony,
		}, nil
	}

	// 3) Reset the per-call pheromone map: one entry per edge currently
	//    present in the snapshot, all at the initial level.
	pheromone := make(map[mesh.EdgeKey]float64, len(snap.EdgeKeys()))
	for _, key := range snap.EdgeKeys() {
		pheromone[key] = initialPheromone
	}

	base := rngFromSeed(cfg.Seed)
	modifier := p.costModifier()

	var best []string
	bestCost := math.Inf(1)

	// 4) Iterations: dispatch ants, reinforce, decay.
	for it := 0; it < cfg.Iterations; it++ {
		select {
		case <-cfg.Ctx.Done():
			// Deadline hardening: surface the best found so far.
			if best == nil {
				return Route{}, fmt.Errorf("%w: %s -> %s", ErrNoRoute, source, destination)
			}

			return assembleAntRoute(snap, best, bestCost), nil
		default:
		}

		rng := deriveRNG(base, uint64(it))

		var successes []walk
		for a := 0; a < cfg.AntCount; a++ {
			path, cost, ok := runAnt(snap, pheromone, source, destination, modifier, rng)
			if !ok {
				continue
			}
			successes = append(successes, walk{path: path, cost: cost})
			if cost < bestCost {
				bestCost = cost
				best = path
			}
		}

		// Evaporation first, then deposit from this iteration's walks.
		for key := range pheromone {
			pheromone[key] *= 1 - evaporationRate
		}
		for _, w := range successes {
			deposit := depositScale * p.depositMultiplier()
			if w.cost > 0 {
				deposit = depositScale / w.cost * p.depositMultiplier()
			}
			for i := 0; i+1 < len(w.path); i++ {
				pheromone[mesh.NewEdgeKey(w.path[i], w.path[i+1])] += deposit
			}
		}
	}

	// 5) Report the global best, or no-route if every ant failed.
	if best == nil {
		return Route{}, fmt.Errorf("%w: %s -> %s", ErrNoRoute, source, destination)
	}

	return assembleAntRoute(snap, best, bestCost), nil
}

// runAnt performs a single traversal from source toward destination.
//
// The visited set is pre-seeded with the source, so revisits are
// impossible by construction. At each step the ant gathers online,
// unvisited neighbors of the current node (ascending id order, which
// makes the zero-weight fallback deterministic) and picks the next hop by
// weighted random choice with weight pheromone^α · heuristic^β. No
// candidates means the walk fails.
func runAnt(
	snap *mesh.Snapshot,
	pheromone map[mesh.EdgeKey]float64,
	source, destination string,
	modifier float64,
	rng *rand.Rand,
) ([]string, float64, bool) {
	visited := map[string]struct{}{source: {}}
	path := []string{source}
	cost := 0.0
	current := source

	for current != destination {
		// Gather online, not-yet-visited neighbors.
		var cands []string
		for _, nb := range snap.OnlineNeighbors(current) {
			if _, seen := visited[nb]; !seen {
				cands = append(cands, nb)
			}
		}
		if len(cands) == 0 {
			return nil, 0, false // dead end: this ant is done
		}

		next := pickNext(snap, pheromone, current, destination, cands, rng)
		cost += snap.Distance(current, next) * modifier
		path = append(path, next)
		visited[next] = struct{}{}
		current = next
	}

	return path, cost, true
}

// pickNext selects the ant's next hop by weighted random choice.
//
// weight(c) = pheromone(current,c)^α · heuristic(c)^β
// heuristic(c) = 1 / (1 + d(c, destination))
//
// Degenerate selection: if the total weight collapses to zero (or loses
// finiteness), fall back to the first candidate in iteration order
// instead of dividing by zero.
func pickNext(
	snap *mesh.Snapshot,
	pheromone map[mesh.EdgeKey]float64,
	current, destination string,
	cands []string,
	rng *rand.Rand,
) string {
	weights := make([]float64, len(cands))
	total := 0.0
	for i, c := range cands {
		ph := pheromone[mesh.NewEdgeKey(current, c)]
		heur := 1 / (1 + snap.Distance(c, destination))
		w := math.Pow(ph, pheromoneExponent) * math.Pow(heur, heuristicExponent)
		weights[i] = w
		total += w
	}

	if total <= 0 || math.IsInf(total, 1) || math.IsNaN(total) {
		return cands[0]
	}

	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r <= 0 {
			return cands[i]
		}
	}

	// Floating-point slack: the loop can exhaust without crossing zero.
	return cands[len(cands)-1]
}

// assembleAntRoute materializes the Route for the best ant path.
func assembleAntRoute(snap *mesh.Snapshot, path []string, cost float64) Route {
	return Route{
		Nodes:       path,
		Cost:        cost,
		Latency:     pathLatency(snap, path),
		Reliability: standInReliability(len(path) - 1),
		Strategy:    StrategyAntColony,
	}
}

// standInReliability estimates reliability from hop count alone. The
// stochastic strategy computes no principled figure, so callers get a
// monotone stand-in: 1/(1 + 0.05·hops).
func standInReliability(hops int) float64 {
	if hops < 0 {
		hops = 0
	}

	return 1 / (1 + 0.05*float64(hops))
}
