// Package routing defines the shared types, priorities, tuning constants
// and configuration options for the meshnet route planners.
//
// Two interchangeable strategies compute paths over a mesh.Snapshot:
//
//   - ShortestPath — deterministic Dijkstra with a link-quality-aware
//     edge cost (dijkstra.go).
//   - AntColony — stochastic, pheromone-guided search (antcolony.go).
//
// The FindRoute facade (router.go) dispatches on Priority.
//
// Errors (sentinel):
//
//	ErrNilSnapshot     - a nil *mesh.Snapshot was supplied.
//	ErrEmptyEndpoint   - source or destination id is empty.
//	ErrUnknownPriority - the priority label is outside the enumeration.
//	ErrNoRoute         - no online path connects source to destination.
//	                     This is an expected outcome for a partitioned
//	                     mesh, never a fault; callers retry after the next
//	                     heal pass or consult FindAllRoutes.
package routing

import (
	"context"
	"errors"
)

// Sentinel errors returned by the route planners.
var (
	// ErrNilSnapshot indicates a nil snapshot was passed to a planner.
	ErrNilSnapshot = errors.New("routing: snapshot is nil")

	// ErrEmptyEndpoint indicates an empty source or destination id.
	ErrEmptyEndpoint = errors.New("routing: empty source or destination id")

	// ErrUnknownPriority indicates a priority outside the known enumeration.
	ErrUnknownPriority = errors.New("routing: unknown priority")

	// ErrNoRoute indicates the destination is unreachable from the source
	// within the online subgraph. Unknown endpoint ids and non-online
	// endpoints report ErrNoRoute as well, never a crash.
	ErrNoRoute = errors.New("routing: no route")
)

// Priority is the urgency label attached to a message by the (external)
// classification component. Routing treats it as an opaque selector and
// validates membership only.
type Priority int

const (
	// PriorityCritical routes through the deterministic strategy.
	PriorityCritical Priority = iota

	// PriorityHigh, PriorityNormal and PriorityLow route through the
	// stochastic strategy with progressively weaker cost discounts.
	PriorityHigh
	PriorityNormal
	PriorityLow
)

// costModifiers scales per-hop distance cost inside the ant walk.
// PriorityCritical carries 0.5 even though FindRoute never sends critical
// traffic to the stochastic strategy: FindAllRoutes runs the ant colony
// under critical-equivalent settings and needs the full table.
var costModifiers = [...]float64{0.5, 0.75, 1.0, 1.0}

// depositMultipliers rewards successful paths with stronger pheromone
// reinforcement the more urgent the traffic (> 1 for higher urgency).
var depositMultipliers = [...]float64{2.0, 1.5, 1.0, 1.0}

// String returns a stable lowercase label for the priority.
func (p Priority) String() string {
	switch p {
	case PriorityCritical:
		return "critical"
	case PriorityHigh:
		return "high"
	case PriorityNormal:
		return "normal"
	case PriorityLow:
		return "low"
	default:
		return "unknown"
	}
}

// valid reports membership in the priority enumeration.
func (p Priority) valid() bool {
	return p >= PriorityCritical && p <= PriorityLow
}

// costModifier returns the per-hop distance multiplier for the ant walk.
func (p Priority) costModifier() float64 { return costModifiers[p] }

// depositMultiplier returns the pheromone deposit multiplier.
func (p Priority) depositMultiplier() float64 { return depositMultipliers[p] }

// Strategy labels which planner produced a Route.
type Strategy int

const (
	// StrategyShortest marks routes from the deterministic planner.
	StrategyShortest Strategy = iota

	// StrategyAntColony marks routes from the stochastic planner.
	StrategyAntColony
)

// String returns a stable label for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyShortest:
		return "shortest"
	case StrategyAntColony:
		return "ant-colony"
	default:
		return "unknown"
	}
}

// Route is the ephemeral result of one planning call: the ordered node id
// sequence from source to destination inclusive, plus derived metrics.
//
// Cost units are strategy-specific and not comparable across strategies.
// Reliability lies in [0,1]; for StrategyAntColony it is a stand-in
// hop-count estimate, not a principled figure.
type Route struct {
	// Nodes is the path, source first, destination last.
	Nodes []string

	// Cost is the strategy-specific path cost.
	Cost float64

	// Latency is the estimated end-to-end latency (simulation units).
	Latency float64

	// Reliability is a multiplicative degradation estimate in [0,1].
	Reliability float64

	// Strategy identifies the producing planner.
	Strategy Strategy
}

// Hops returns the number of edges on the route (0 for a trivial route).
func (r Route) Hops() int {
	if len(r.Nodes) == 0 {
		return 0
	}

	return len(r.Nodes) - 1
}

// Ant-colony tuning constants (fixed per the search design; iteration and
// ant counts are overridable through options for tests).
const (
	// DefaultIterations is the number of colony iterations per call.
	DefaultIterations = 20

	// DefaultAntCount is the number of ants dispatched per iteration.
	DefaultAntCount = 10

	// initialPheromone is the uniform level the per-call pheromone map is
	// reset to for every edge present in the snapshot.
	initialPheromone = 1.0

	// evaporationRate decays all pheromone by (1 - rate) per iteration.
	evaporationRate = 0.1

	// pheromoneExponent (α) and heuristicExponent (β) weight the two
	// selection signals in the ant's weighted random choice.
	pheromoneExponent = 1.0
	heuristicExponent = 2.0

	// depositScale (Q) scales the pheromone deposited by a successful ant:
	// deposit = Q / cost · depositMultiplier(priority).
	depositScale = 100.0
)

// Options configures a stochastic planning call.
//
//   - Iterations / AntCount: colony size (defaults above).
//   - Seed: RNG seed; 0 selects the fixed default stream, so results are
//     reproducible either way.
//   - Ctx: optional deadline; when it expires mid-run the planner returns
//     the best route found so far instead of failing outright.
type Options struct {
	Iterations int
	AntCount   int
	Seed       int64
	Ctx        context.Context
}

// Option is a functional option for the stochastic planner.
type Option func(*Options)

// DefaultOptions returns the baseline stochastic configuration.
func DefaultOptions() Options {
	return Options{
		Iterations: DefaultIterations,
		AntCount:   DefaultAntCount,
		Seed:       0,
		Ctx:        context.Background(),
	}
}

// WithIterations overrides the iteration budget.
// Must be positive; panics otherwise (programmer error).
func WithIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("routing: iterations must be positive")
		}
		o.Iterations = n
	}
}

// WithAntCount overrides the per-iteration ant count.
// Must be positive; panics otherwise.
func WithAntCount(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("routing: ant count must be positive")
		}
		o.AntCount = n
	}
}

// WithSeed fixes the RNG seed for reproducible runs.
// Seed 0 selects the default deterministic stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithContext attaches a cancellation/deadline context to the run.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
