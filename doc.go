// Package meshnet is an in-memory mesh-network playground: a dynamic
// topology of coordinate-placed nodes plus two route planners — a
// deterministic shortest-path search and a pheromone-guided ant colony.
//
// 🚀 What is meshnet?
//
//	A small, thread-safe library that brings together:
//		• Topology management: node lifecycle, proximity discovery,
//		  symmetric connections, self-healing repair
//		• Deterministic routing: Dijkstra over link quality & geometry
//		• Stochastic routing: seeded ant-colony search with per-call
//		  pheromone state
//		• Layout constructors: rings, chords, grids and random scatters
//		  for simulations and tests
//
// ✨ Why choose meshnet?
//
//   - Deterministic by default – every random choice is seedable
//   - Rock-solid invariants – adjacency and edge list never diverge
//   - Pure in-process – no sockets, no radios, just the graph
//
// Under the hood, everything is organized under three subpackages:
//
//	mesh/    — Node, Connection, Topology & immutable Snapshot
//	routing/ — ShortestPath, AntColony and the FindRoute facade
//	layout/  — deterministic topology constructors
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	a four-node mesh; ask routing for the cheapest online path A→D.
//
// Dive into the per-package doc.go files for contracts, complexity notes
// and worked examples.
//
//	go get github.com/katalvlaran/meshnet
package meshnet
