// Package routing - the planning facade.
//
// FindRoute is the single entry point drivers call: it dispatches on the
// message priority — critical traffic takes the deterministic planner,
// everything else the stochastic one. FindAllRoutes produces the
// multi-strategy candidate set for callers that want a fallback at hand.
package routing

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/meshnet/mesh"
)

// FindRoute computes the best route for the given priority:
// PriorityCritical dispatches to ShortestPath, all other priorities to
// AntColony. Options apply to the stochastic planner only.
//
// ErrNoRoute is an expected outcome for partitioned meshes; retry after
// the next heal pass or fall back to FindAllRoutes.
func FindRoute(snap *mesh.Snapshot, source, destination string, p Priority, opts ...Option) (Route, error) {
	if !p.valid() {
		return Route{}, fmt.Errorf("%w: %d", ErrUnknownPriority, int(p))
	}
	if p == PriorityCritical {
		return ShortestPath(snap, source, destination)
	}

	return AntColony(snap, source, destination, p, opts...)
}

// FindAllRoutes runs both strategies once — the stochastic one under
// critical-equivalent settings — and returns every candidate that
// succeeded, deterministic first. A strategy that reports ErrNoRoute is
// simply omitted; an empty slice with a nil error means the mesh offers
// no path at all, which callers treat like ErrNoRoute from FindRoute.
//
// The stochastic candidate carries the stand-in reliability estimate
// (see standInReliability); compare reliabilities across the two entries
// with that caveat in mind.
func FindAllRoutes(snap *mesh.Snapshot, source, destination string, opts ...Option) ([]Route, error) {
	routes := make([]Route, 0, 2)

	det, err := ShortestPath(snap, source, destination)
	switch {
	case err == nil:
		routes = append(routes, det)
	case !errors.Is(err, ErrNoRoute):
		return nil, err
	}

	sto, err := AntColony(snap, source, destination, PriorityCritical, opts...)
	switch {
	case err == nil:
		routes = append(routes, sto)
	case !errors.Is(err, ErrNoRoute):
		return nil, err
	}

	return routes, nil
}
