// Package mesh - functional options for Topology construction.
//
// Options follow the DefaultOptions-then-override pattern; invalid values
// panic early in the option constructor rather than surfacing later as
// silent misbehavior.
package mesh

import (
	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

// topoConfig holds the tunables applied at NewTopology time.
type topoConfig struct {
	logger           *zap.Logger // structured event log; Nop by default
	clk              clock.Clock // injectable time source for LastSeen
	maxRange         float64     // discovery radius
	maxAuto          int         // discovery connection budget per node
	minConnections   int         // heal threshold
	autoDiscover     bool        // run discovery inside AddNode
	drainPerDelivery float64     // battery drained per RecordDelivery hop
}

// TopologyOption configures a Topology before creation.
type TopologyOption func(*topoConfig)

// defaultTopoConfig returns the baseline configuration:
// Nop logger, wall clock, DefaultMaxRange/DefaultMaxAutoConnections/
// DefaultMinConnections, auto-discovery enabled, no battery drain.
func defaultTopoConfig() topoConfig {
	return topoConfig{
		logger:           zap.NewNop(),
		clk:              clock.New(),
		maxRange:         DefaultMaxRange,
		maxAuto:          DefaultMaxAutoConnections,
		minConnections:   DefaultMinConnections,
		autoDiscover:     true,
		drainPerDelivery: 0,
	}
}

// WithLogger installs a structured logger for lifecycle and heal events.
// A nil logger is ignored (the Nop default stays in place).
func WithLogger(l *zap.Logger) TopologyOption {
	return func(c *topoConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock injects a time source; tests pass a clock.Mock so LastSeen
// becomes assertable. A nil clock is ignored.
func WithClock(clk clock.Clock) TopologyOption {
	return func(c *topoConfig) {
		if clk != nil {
			c.clk = clk
		}
	}
}

// WithMaxRange overrides the maximum discovery distance.
// Must be positive; panics otherwise (programmer error).
func WithMaxRange(r float64) TopologyOption {
	return func(c *topoConfig) {
		if r <= 0 {
			panic("mesh: max range must be positive")
		}
		c.maxRange = r
	}
}

// WithMaxAutoConnections overrides the per-node discovery budget.
// Must be non-negative; panics otherwise.
func WithMaxAutoConnections(n int) TopologyOption {
	return func(c *topoConfig) {
		if n < 0 {
			panic("mesh: max auto connections must be non-negative")
		}
		c.maxAuto = n
	}
}

// WithMinConnections overrides the degree threshold below which
// HealNetwork re-runs discovery. Must be non-negative; panics otherwise.
func WithMinConnections(n int) TopologyOption {
	return func(c *topoConfig) {
		if n < 0 {
			panic("mesh: min connections must be non-negative")
		}
		c.minConnections = n
	}
}

// WithAutoDiscovery toggles discovery inside AddNode. Layout constructors
// disable it to place exact topologies edge by edge.
func WithAutoDiscovery(enabled bool) TopologyOption {
	return func(c *topoConfig) { c.autoDiscover = enabled }
}

// WithBatteryDrain makes RecordDelivery drain the given charge from every
// participating node, simulating transmission cost. Must be non-negative;
// panics otherwise. Zero (the default) disables draining.
func WithBatteryDrain(perDelivery float64) TopologyOption {
	return func(c *topoConfig) {
		if perDelivery < 0 {
			panic("mesh: battery drain must be non-negative")
		}
		c.drainPerDelivery = perDelivery
	}
}
