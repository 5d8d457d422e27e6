// Package routing_test - stochastic strategy coverage: reproducibility,
// convergence tendency, failure modes and the deadline hardening.
package routing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshnet/layout"
	"github.com/katalvlaran/meshnet/routing"
)

func TestAntColony_ArgumentValidation(t *testing.T) {
	top := layout.NewTopology()
	a := top.AddNode("a", 0, 0)
	snap := top.Snapshot()

	_, err := routing.AntColony(nil, a.ID, a.ID, routing.PriorityNormal)
	assert.ErrorIs(t, err, routing.ErrNilSnapshot)

	_, err = routing.AntColony(snap, a.ID, "", routing.PriorityNormal)
	assert.ErrorIs(t, err, routing.ErrEmptyEndpoint)

	_, err = routing.AntColony(snap, a.ID, "ghost", routing.PriorityNormal)
	assert.ErrorIs(t, err, routing.ErrNoRoute)

	_, err = routing.AntColony(snap, a.ID, a.ID, routing.Priority(42))
	assert.ErrorIs(t, err, routing.ErrUnknownPriority)
}

func TestAntColony_TrivialRoute(t *testing.T) {
	top := layout.NewTopology()
	a := top.AddNode("a", 0, 0)

	route, err := routing.AntColony(top.Snapshot(), a.ID, a.ID, routing.PriorityLow)
	require.NoError(t, err)
	assert.Equal(t, []string{a.ID}, route.Nodes)
	assert.Zero(t, route.Cost)
	assert.Equal(t, routing.StrategyAntColony, route.Strategy)
}

func TestAntColony_ReproducibleUnderFixedSeed(t *testing.T) {
	top, ids := ringWithChord(t)
	snap := top.Snapshot()

	first, err := routing.AntColony(snap, ids[0], ids[6], routing.PriorityNormal,
		routing.WithSeed(7))
	require.NoError(t, err)

	second, err := routing.AntColony(snap, ids[0], ids[6], routing.PriorityNormal,
		routing.WithSeed(7))
	require.NoError(t, err)

	assert.Equal(t, first, second, "same seed produced different routes")
}

// TestAntColony_ConvergenceTendency: on a graph with one clearly shortest
// path (the chord, cost 400 under the normal modifier) and several longer
// ring alternatives, the best cost after the full iteration budget must
// land within 10% of the optimum — checked over several seeds, not as an
// exact equality.
func TestAntColony_ConvergenceTendency(t *testing.T) {
	top, ids := ringWithChord(t)
	snap := top.Snapshot()
	const optimum = 400.0

	for _, seed := range []int64{1, 7, 42, 1337} {
		route, err := routing.AntColony(snap, ids[0], ids[6], routing.PriorityNormal,
			routing.WithSeed(seed))
		require.NoError(t, err, "seed %d found no route", seed)
		assert.LessOrEqual(t, route.Cost, optimum*1.10,
			"seed %d converged to %.1f, >10%% above optimum", seed, route.Cost)
		assert.Equal(t, ids[0], route.Nodes[0])
		assert.Equal(t, ids[6], route.Nodes[len(route.Nodes)-1])
	}
}

func TestAntColony_PriorityScalesCost(t *testing.T) {
	// Same two-node mesh; the only path is one hop of length 100, so the
	// cost is exactly 100 × modifier and the priority table is observable.
	top := layout.NewTopology()
	a := top.AddNode("a", 0, 0)
	b := top.AddNode("b", 100, 0)
	_, err := top.EstablishConnection(a.ID, b.ID)
	require.NoError(t, err)
	snap := top.Snapshot()

	for _, tc := range []struct {
		p    routing.Priority
		want float64
	}{
		{routing.PriorityCritical, 50}, // table entry exists for FindAllRoutes
		{routing.PriorityHigh, 75},
		{routing.PriorityNormal, 100},
		{routing.PriorityLow, 100},
	} {
		route, err := routing.AntColony(snap, a.ID, b.ID, tc.p, routing.WithSeed(1))
		require.NoError(t, err, "priority %s", tc.p)
		assert.InDelta(t, tc.want, route.Cost, 1e-9, "priority %s", tc.p)
	}
}

func TestAntColony_DisjointComponents(t *testing.T) {
	top := layout.NewTopology()
	a := top.AddNode("a", 0, 0)
	b := top.AddNode("b", 10, 0)
	c := top.AddNode("c", 1000, 1000)
	d := top.AddNode("d", 1010, 1000)
	_, err := top.EstablishConnection(a.ID, b.ID)
	require.NoError(t, err)
	_, err = top.EstablishConnection(c.ID, d.ID)
	require.NoError(t, err)

	_, err = routing.AntColony(top.Snapshot(), a.ID, d.ID, routing.PriorityHigh,
		routing.WithSeed(3))
	assert.ErrorIs(t, err, routing.ErrNoRoute)
}

func TestAntColony_DeadEndsAreAccepted(t *testing.T) {
	// A lollipop: the destination hangs off a cul-de-sac that ants can
	// only enter through one gate. Ants that wander the loop first can
	// dead-end (visited set blocks re-entry) — the run must still find
	// the route through surviving ants.
	top := layout.NewTopology()
	ids, err := layout.Ring(top, 6, 100)
	require.NoError(t, err)
	tail := top.AddNode("tail", 250, 0)
	_, err = top.EstablishConnection(ids[0], tail.ID)
	require.NoError(t, err)

	route, err := routing.AntColony(top.Snapshot(), ids[3], tail.ID,
		routing.PriorityNormal, routing.WithSeed(11))
	require.NoError(t, err)
	assert.Equal(t, tail.ID, route.Nodes[len(route.Nodes)-1])
}

func TestAntColony_DeadlineReturnsBestSoFar(t *testing.T) {
	top, ids := ringWithChord(t)
	snap := top.Snapshot()

	// An already-cancelled context: iteration 0 never runs, so there is
	// no best yet — the planner reports no-route rather than hanging.
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := routing.AntColony(snap, ids[0], ids[6], routing.PriorityNormal,
		routing.WithContext(cancelled), routing.WithSeed(1))
	assert.ErrorIs(t, err, routing.ErrNoRoute)

	// A live context changes nothing about the result.
	route, err := routing.AntColony(snap, ids[0], ids[6], routing.PriorityNormal,
		routing.WithContext(context.Background()), routing.WithSeed(1))
	require.NoError(t, err)
	assert.NotEmpty(t, route.Nodes)
}

func TestAntColony_StandInReliabilityBounds(t *testing.T) {
	top, ids := ringWithChord(t)

	route, err := routing.AntColony(top.Snapshot(), ids[0], ids[6],
		routing.PriorityNormal, routing.WithSeed(5))
	require.NoError(t, err)

	assert.Greater(t, route.Reliability, 0.0)
	assert.LessOrEqual(t, route.Reliability, 1.0)
}

func TestAntColony_SmallColonyOptions(t *testing.T) {
	top := layout.NewTopology()
	a := top.AddNode("a", 0, 0)
	b := top.AddNode("b", 50, 0)
	_, err := top.EstablishConnection(a.ID, b.ID)
	require.NoError(t, err)

	route, err := routing.AntColony(top.Snapshot(), a.ID, b.ID,
		routing.PriorityNormal,
		routing.WithIterations(1), routing.WithAntCount(1), routing.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, []string{a.ID, b.ID}, route.Nodes)
}
