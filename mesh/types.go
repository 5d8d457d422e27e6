// Package mesh defines the Node, Connection and Topology types and
// provides thread-safe primitives for building, mutating and snapshotting
// a mesh network.
//
// This file declares Status, Node, EdgeKey, Connection, sentinel errors
// and the default tuning constants shared by the Topology methods.
//
// Errors:
//
//	ErrNodeNotFound   - referenced node id is absent from the topology.
//	ErrSelfConnection - attempt to connect a node to itself.
package mesh

import (
	"errors"
	"sort"
	"time"
)

// Sentinel errors for mesh topology operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node id.
	ErrNodeNotFound = errors.New("mesh: node not found")

	// ErrSelfConnection indicates an attempt to establish a self-loop connection.
	ErrSelfConnection = errors.New("mesh: self-connection not allowed")
)

// Default tuning constants. All of them can be overridden per-Topology via
// functional options (see options.go).
const (
	// DefaultMaxRange is the maximum Euclidean distance at which proximity
	// discovery considers two nodes connectable.
	DefaultMaxRange = 150.0

	// DefaultMaxAutoConnections caps how many links discovery establishes
	// for a single node; the nearest candidates win.
	DefaultMaxAutoConnections = 5

	// DefaultMinConnections is the degree below which HealNetwork re-runs
	// discovery for an online node.
	DefaultMinConnections = 2

	// fullCharge is the battery and signal level assigned to fresh nodes.
	fullCharge = 100.0

	// strengthFalloff scales how fast Strength decays with distance:
	// Strength = max(0, 100 - (d/maxRange)*strengthFalloff).
	strengthFalloff = 50.0

	// baseLatency and latencyPerDistance derive Connection.Latency from
	// distance: Latency = baseLatency + d*latencyPerDistance.
	baseLatency        = 10.0
	latencyPerDistance = 0.1
)

// Status enumerates the lifecycle states of a Node.
//
// Only StatusOnline and StatusOffline are driven by this core
// (online ⇄ offline, no terminal state). StatusBusy and StatusRelay are
// reserved for external drivers; nodes carrying them are treated as
// non-routable, exactly like offline nodes.
type Status int

const (
	// StatusOnline marks a node as reachable and routable.
	StatusOnline Status = iota

	// StatusOffline marks a node as failed or powered down.
	StatusOffline

	// StatusBusy is reserved; no transition in this core produces it.
	StatusBusy

	// StatusRelay is reserved; no transition in this core produces it.
	StatusRelay
)

// String returns a stable lowercase label for the status.
func (s Status) String() string {
	switch s {
	case StatusOnline:
		return "online"
	case StatusOffline:
		return "offline"
	case StatusBusy:
		return "busy"
	case StatusRelay:
		return "relay"
	default:
		return "unknown"
	}
}

// Node is a value snapshot of a single mesh participant.
//
// ID is unique and immutable for the node's lifetime. X and Y are
// simulation coordinates, not geodetic. Battery and Signal are clamped to
// [0,100]. IPAddress is display-only and carries no networking semantics.
// Neighbors holds the ids of directly connected nodes, sorted ascending.
type Node struct {
	// ID uniquely identifies this node within its Topology.
	ID string

	// Name is the human-readable display name.
	Name string

	// X, Y are the node's 2-D simulation coordinates.
	X, Y float64

	// Status is the current lifecycle state.
	Status Status

	// Battery is the remaining charge in [0,100].
	Battery float64

	// Signal is the radio quality estimate in [0,100].
	Signal float64

	// LastSeen is refreshed whenever the node transitions to online.
	LastSeen time.Time

	// MessageCount counts delivered-message participations (monotonic).
	MessageCount int64

	// IPAddress is a display-only address assigned at creation.
	IPAddress string

	// Neighbors lists connected node ids in ascending order.
	Neighbors []string
}

// Online reports whether the node is currently routable.
func (n Node) Online() bool { return n.Status == StatusOnline }

// Degree returns the number of direct connections.
func (n Node) Degree() int { return len(n.Neighbors) }

// HasNeighbor reports whether id appears in the node's neighbor list.
// Complexity: O(log d) via binary search over the sorted Neighbors slice.
func (n Node) HasNeighbor(id string) bool {
	i := sort.SearchStrings(n.Neighbors, id)

	return i < len(n.Neighbors) && n.Neighbors[i] == id
}

// EdgeKey identifies an undirected connection by its unordered endpoint
// pair, canonicalized so that A < B lexicographically. The zero value is
// not a valid key; always build keys through NewEdgeKey.
type EdgeKey struct {
	// A is the lexicographically smaller endpoint id.
	A string

	// B is the lexicographically larger endpoint id.
	B string
}

// NewEdgeKey canonicalizes the unordered pair (a, b) into an EdgeKey.
func NewEdgeKey(a, b string) EdgeKey {
	if a > b {
		a, b = b, a
	}

	return EdgeKey{A: a, B: b}
}

// Other returns the endpoint opposite to id, or "" if id is not an endpoint.
func (k EdgeKey) Other(id string) string {
	switch id {
	case k.A:
		return k.B
	case k.B:
		return k.A
	default:
		return ""
	}
}

// Contains reports whether id is one of the key's endpoints.
func (k EdgeKey) Contains(id string) bool { return id == k.A || id == k.B }

// Connection is an undirected edge between two nodes.
//
// Strength and Latency are derived from the endpoint distance at
// establishment time; Active mirrors whether both endpoints are online and
// is refreshed on status transitions and during HealNetwork.
type Connection struct {
	// Key is the canonical unordered endpoint pair.
	Key EdgeKey

	// Strength is the link quality estimate in [0,100], inverse in distance.
	Strength float64

	// Latency is the estimated traversal latency (simulation units).
	Latency float64

	// Active is true while both endpoints are online.
	Active bool
}

// Stats aggregates topology-wide counters exposed to collaborators.
type Stats struct {
	// NodeCount is the total number of nodes.
	NodeCount int

	// OnlineCount and OfflineCount partition nodes by routability;
	// reserved statuses (busy, relay) count as offline here.
	OnlineCount  int
	OfflineCount int

	// ConnectionCount is the number of undirected edges.
	ConnectionCount int

	// ActiveConnectionCount is the number of edges whose endpoints are
	// both online.
	ActiveConnectionCount int

	// AvgDegree is the mean number of connections per node
	// (0 for an empty topology).
	AvgDegree float64
}
