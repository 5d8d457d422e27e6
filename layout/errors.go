// SPDX-License-Identifier: MIT
// Package: meshnet/layout
//
// errors.go — sentinel errors and constructor-name constants shared by
// all layout constructors. Method names prefix wrapped errors so callers
// see which constructor rejected its parameters.
package layout

import "errors"

// Sentinel errors for layout constructors.
var (
	// ErrNilTopology indicates a nil *mesh.Topology was supplied.
	ErrNilTopology = errors.New("layout: topology is nil")

	// ErrTooFewNodes indicates a node-count parameter below the
	// constructor's minimum.
	ErrTooFewNodes = errors.New("layout: too few nodes")

	// ErrBadDimension indicates a non-positive spacing, radius or extent.
	ErrBadDimension = errors.New("layout: dimension must be positive")
)

// Canonical constructor names used to prefix error context.
const (
	methodRing    = "Ring"
	methodChord   = "Chord"
	methodGrid    = "Grid"
	methodScatter = "Scatter"
)

// Minimum node counts per constructor.
const (
	// minRingNodes: a ring below 3 nodes degenerates into a multi-edge.
	minRingNodes = 3

	// minScatterNodes: a scatter needs at least one node to place.
	minScatterNodes = 1
)
