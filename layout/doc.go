// SPDX-License-Identifier: MIT
// Package: meshnet/layout
//
// Package layout provides deterministic topology constructors for
// simulations and tests: exact shapes (Ring, Chord, Grid) and seeded
// random scatters.
//
// Contract (all constructors):
//   - Operate on a *mesh.Topology; exact shapes require auto-discovery
//     to be disabled (use layout.NewTopology) so no stray proximity
//     edges appear beside the constructed ones.
//   - Deterministic node placement and edge emission order; Scatter is
//     deterministic given its seed.
//   - Return only sentinel errors wrapped with the constructor name;
//     never panic at runtime.
//
// Example: a 12-node ring with one chord across it —
//
//	t := layout.NewTopology()
//	ids, _ := layout.Ring(t, 12, 200)
//	_ = layout.Chord(t, ids[0], ids[6])
package layout
