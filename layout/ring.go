// SPDX-License-Identifier: MIT
// Package: meshnet/layout
//
// ring.go — Ring(n, radius) and Chord(a, b) constructors.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewNodes), radius > 0 (else ErrBadDimension).
//   - Nodes sit on a circle centered at the origin, node i at angle
//     2πi/n, named "ring-<i>"; ids are returned in index order.
//   - Edges are emitted in stable order i — (i+1)%n for i = 0..n-1.
//
// Complexity:
//   - Time: O(n) nodes + O(n) edges (O(n log n) if discovery is enabled).
//   - Space: O(n) for the returned id slice.
package layout

import (
	"fmt"
	"math"

	"github.com/katalvlaran/meshnet/mesh"
)

// NewTopology returns a Topology suited for exact layout construction:
// auto-discovery is disabled before any caller option is applied, so the
// only edges present are the ones a constructor emits. Caller options may
// still override the discovery flag deliberately (Scatter wants it on).
func NewTopology(opts ...mesh.TopologyOption) *mesh.Topology {
	all := append([]mesh.TopologyOption{mesh.WithAutoDiscovery(false)}, opts...)

	return mesh.NewTopology(all...)
}

// Ring places n nodes evenly on a circle of the given radius and links
// each node to its two ring neighbors. Returns the ids in index order.
func Ring(t *mesh.Topology, n int, radius float64) ([]string, error) {
	if t == nil {
		return nil, fmt.Errorf("%s: %w", methodRing, ErrNilTopology)
	}
	if n < minRingNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingNodes, ErrTooFewNodes)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("%s: radius=%v: %w", methodRing, radius, ErrBadDimension)
	}

	// Place nodes counter-clockwise from angle 0.
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		node := t.AddNode(
			fmt.Sprintf("ring-%d", i),
			radius*math.Cos(angle),
			radius*math.Sin(angle),
		)
		ids[i] = node.ID
	}

	// Close the ring in stable index order.
	for i := 0; i < n; i++ {
		if _, err := t.EstablishConnection(ids[i], ids[(i+1)%n]); err != nil {
			return nil, fmt.Errorf("%s: link %d-%d: %w", methodRing, i, (i+1)%n, err)
		}
	}

	return ids, nil
}

// Chord adds a single cross-link between two existing nodes, typically
// shortcutting a ring. Establishment errors are wrapped with context.
func Chord(t *mesh.Topology, a, b string) error {
	if t == nil {
		return fmt.Errorf("%s: %w", methodChord, ErrNilTopology)
	}
	if _, err := t.EstablishConnection(a, b); err != nil {
		return fmt.Errorf("%s: %w", methodChord, err)
	}

	return nil
}
