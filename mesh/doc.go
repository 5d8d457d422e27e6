// Package mesh implements the Topology Manager of meshnet: a mutable,
// thread-safe mesh of coordinate-placed nodes with undirected, quality-
// annotated connections.
//
// Responsibilities:
//
//   - Node lifecycle: creation with immediate proximity discovery, status
//     transitions (online ⇄ offline; busy/relay reserved), vitals updates
//     and removal with full reference scrubbing.
//   - Connection management: symmetric establishment with derived
//     Strength and Latency, duplicate guard, Active tracking.
//   - Self-healing: HealNetwork prunes edges with non-online endpoints
//     and reconnects under-connected online nodes; the pass is idempotent
//     and never removes an online-online edge.
//   - Read access: value-copy accessors, aggregate Stats, BFS
//     reachability and connected components, and immutable Snapshot
//     views for the routing package.
//
// Two connectivity representations are maintained in lock-step under one
// RWMutex: per-node adjacency sets and an edge map keyed by the unordered
// EdgeKey pair. Every mutation updates both inside a single critical
// section, so the invariant "B ∈ adj(A) ⇔ A ∈ adj(B) ⇔ edge(A,B) exists"
// holds after any operation sequence.
//
// Determinism:
//
//   - Discovery ranks candidates by (distance, id) ascending; equal
//     distances resolve by id, never by map iteration order.
//   - HealNetwork visits nodes in ascending id order.
//   - All accessors return id-sorted slices.
//
// The package never performs path search; that lives in routing, which
// consumes Snapshot values only.
package mesh
