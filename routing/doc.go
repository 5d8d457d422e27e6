// Package routing implements the meshnet Route Planner: two
// interchangeable path-search strategies over an immutable mesh.Snapshot,
// plus a priority-dispatching facade.
//
// Strategies:
//
//   - ShortestPath — Dijkstra restricted to online nodes, with an edge
//     cost that inflates geometric distance by endpoint signal and
//     battery quality. Deterministic; serves critical traffic.
//   - AntColony — seeded stochastic search. A per-call pheromone map over
//     the snapshot's edges is reinforced by successful ant walks and
//     decayed every iteration; ants balance pheromone against a
//     distance-to-goal heuristic. Serves high/normal/low traffic.
//
// Facade:
//
//   - FindRoute(snap, src, dst, priority)   — dispatch by priority.
//   - FindAllRoutes(snap, src, dst)         — both strategies once,
//     stochastic under critical-equivalent settings.
//
// The planners are pure functions of the snapshot: they never mutate
// topology, hold no state between calls, and inherit determinism from
// the injectable seed (WithSeed). Unreachable destinations — including
// unknown ids — surface as ErrNoRoute, a normal outcome for a
// partitioned mesh, never a fault.
package routing
