// SPDX-License-Identifier: MIT
// Package: meshnet/layout
//
// grid.go — Grid(rows, cols, spacing) constructor.
//
// Contract:
//   - rows ≥ 1, cols ≥ 1, rows·cols ≥ 2 (else ErrTooFewNodes);
//     spacing > 0 (else ErrBadDimension).
//   - Node (r,c) sits at (c·spacing, r·spacing), named "grid-<r>-<c>".
//   - Orthogonal links only, emitted row-major: right first, then down.
//
// Complexity:
//   - Time: O(rows·cols) nodes + O(rows·cols) edges.
//   - Space: O(rows·cols) for the returned id matrix.
package layout

import (
	"fmt"

	"github.com/katalvlaran/meshnet/mesh"
)

// Grid places rows×cols nodes on a square lattice and links orthogonal
// neighbors. Returns ids as a row-major matrix: ids[r][c].
func Grid(t *mesh.Topology, rows, cols int, spacing float64) ([][]string, error) {
	if t == nil {
		return nil, fmt.Errorf("%s: %w", methodGrid, ErrNilTopology)
	}
	if rows < 1 || cols < 1 || rows*cols < 2 {
		return nil, fmt.Errorf("%s: %dx%d: %w", methodGrid, rows, cols, ErrTooFewNodes)
	}
	if spacing <= 0 {
		return nil, fmt.Errorf("%s: spacing=%v: %w", methodGrid, spacing, ErrBadDimension)
	}

	// Place nodes row-major.
	ids := make([][]string, rows)
	for r := 0; r < rows; r++ {
		ids[r] = make([]string, cols)
		for c := 0; c < cols; c++ {
			node := t.AddNode(
				fmt.Sprintf("grid-%d-%d", r, c),
				float64(c)*spacing,
				float64(r)*spacing,
			)
			ids[r][c] = node.ID
		}
	}

	// Link orthogonal neighbors in stable row-major order.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				if _, err := t.EstablishConnection(ids[r][c], ids[r][c+1]); err != nil {
					return nil, fmt.Errorf("%s: link (%d,%d)-(%d,%d): %w", methodGrid, r, c, r, c+1, err)
				}
			}
			if r+1 < rows {
				if _, err := t.EstablishConnection(ids[r][c], ids[r+1][c]); err != nil {
					return nil, fmt.Errorf("%s: link (%d,%d)-(%d,%d): %w", methodGrid, r, c, r+1, c, err)
				}
			}
		}
	}

	return ids, nil
}
