// SPDX-License-Identifier: MIT
// Package: meshnet/layout
//
// scatter.go — Scatter(n, width, height, seed) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes); width, height > 0 (else ErrBadDimension).
//   - Placement is uniform over [0,width)×[0,height), deterministic for a
//     fixed seed (seed==0 selects the fixed default stream).
//   - After placement every node runs proximity discovery in insertion
//     order, so the same seed always yields the same mesh under the same
//     topology options.
//
// Complexity:
//   - Time: O(n²) dominated by per-node discovery scans.
//   - Space: O(n) for the returned id slice.
package layout

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/meshnet/mesh"
)

// defaultScatterSeed backs the seed==0 policy, mirroring the routing
// package's deterministic default stream.
const defaultScatterSeed int64 = 1

// Scatter places n randomly positioned nodes in a width×height field and
// wires them by proximity discovery. Returns ids in insertion order.
//
// Unlike Ring and Grid, Scatter drives discovery itself, so it works on
// topologies built with either discovery setting.
func Scatter(t *mesh.Topology, n int, width, height float64, seed int64) ([]string, error) {
	if t == nil {
		return nil, fmt.Errorf("%s: %w", methodScatter, ErrNilTopology)
	}
	if n < minScatterNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodScatter, n, minScatterNodes, ErrTooFewNodes)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%s: %vx%v: %w", methodScatter, width, height, ErrBadDimension)
	}

	s := seed
	if s == 0 {
		s = defaultScatterSeed
	}
	rng := rand.New(rand.NewSource(s))

	// Place all nodes first so late nodes are visible to early discovery
	// passes below.
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		node := t.AddNode(
			fmt.Sprintf("scatter-%d", i),
			rng.Float64()*width,
			rng.Float64()*height,
		)
		ids[i] = node.ID
	}

	// Discovery in insertion order; the (distance, id) ranking inside
	// mesh keeps the resulting edge set independent of map iteration.
	for _, id := range ids {
		if err := t.DiscoverConnections(id); err != nil {
			return nil, fmt.Errorf("%s: discover %s: %w", methodScatter, id, err)
		}
	}

	return ids, nil
}
