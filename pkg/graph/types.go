package graph

import (
	"errors"
	"fmt"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Layout engines.
const (
	// EngineForce computes positions with the force-directed simulation.
	EngineForce = "force"
	// EngineDot delegates positioning to Graphviz via a DOT export.
	EngineDot = "dot"
)

// =============================================================================
// Validation Errors
// =============================================================================

var (
	// ErrEmptyNodeID is returned by [Graph.Validate] when a node has an
	// empty identifier. All nodes must have non-empty IDs.
	ErrEmptyNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.Validate] when two nodes
	// share the same ID. Node IDs must be unique across the graph.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownLinkEndpoint is returned by [Graph.Validate] when a link
	// references a node ID absent from the node collection.
	ErrUnknownLinkEndpoint = errors.New("link references unknown node")
)

// =============================================================================
// Graph - Node-Link Input Format
// =============================================================================

// Graph is the canonical serialization format for node-link graphs.
// It is the input to the layout simulation and is never mutated by it.
type Graph struct {
	Nodes []Node `json:"nodes" bson:"nodes"`
	Links []Link `json:"links" bson:"links"`
}

// Validate checks structural integrity: non-empty unique node IDs and links
// whose endpoints resolve to supplied nodes. It returns the first violation
// found, wrapped with the offending ID for error messages.
func (g Graph) Validate() error {
	seen := make(map[string]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.ID == "" {
			return ErrEmptyNodeID
		}
		if _, dup := seen[n.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateNodeID, n.ID)
		}
		seen[n.ID] = struct{}{}
	}
	for _, l := range g.Links {
		if _, ok := seen[l.Source]; !ok {
			return fmt.Errorf("%w: link %s→%s (missing %q)", ErrUnknownLinkEndpoint, l.Source, l.Target, l.Source)
		}
		if _, ok := seen[l.Target]; !ok {
			return fmt.Errorf("%w: link %s→%s (missing %q)", ErrUnknownLinkEndpoint, l.Source, l.Target, l.Target)
		}
	}
	return nil
}

// NodeCount returns the number of nodes.
func (g Graph) NodeCount() int { return len(g.Nodes) }

// LinkCount returns the number of links.
func (g Graph) LinkCount() int { return len(g.Links) }

// =============================================================================
// Node - Unified Node Type
// =============================================================================

// Node is a graph vertex identified by an opaque ID.
//
// X and Y are optional initial positions. When nil, the simulation seeds a
// deterministic starting position; when set, the simulation starts from the
// given coordinates. Pointers distinguish "unset" from a legitimate 0.
type Node struct {
	ID    string         `json:"id" bson:"id"`
	Label string         `json:"label,omitempty" bson:"label,omitempty"` // Display label (defaults to ID)
	Group string         `json:"group,omitempty" bson:"group,omitempty"` // Optional grouping key for renderers
	X     *float64       `json:"x,omitempty" bson:"x,omitempty"`
	Y     *float64       `json:"y,omitempty" bson:"y,omitempty"`
	Meta  map[string]any `json:"meta,omitempty" bson:"meta,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n *Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// HasPosition reports whether the node carries an initial position.
func (n *Node) HasPosition() bool { return n.X != nil && n.Y != nil }

// =============================================================================
// Link - Relation Between Two Nodes
// =============================================================================

// Link connects two nodes by ID. Links are treated as undirected by the
// spring force; Source/Target naming follows the node-link JSON convention.
type Link struct {
	Source string  `json:"source" bson:"source"`
	Target string  `json:"target" bson:"target"`
	Value  float64 `json:"value,omitempty" bson:"value,omitempty"` // Optional weight for renderers
}

// =============================================================================
// PositionedNode - Node With Resolved Coordinates
// =============================================================================

// PositionedNode is a node after layout, carrying finite coordinates in the
// viewport coordinate space ((0,0) top-left, (width,height) bottom-right).
type PositionedNode struct {
	ID    string  `json:"id" bson:"id"`
	Label string  `json:"label,omitempty" bson:"label,omitempty"`
	Group string  `json:"group,omitempty" bson:"group,omitempty"`
	X     float64 `json:"x" bson:"x"`
	Y     float64 `json:"y" bson:"y"`
}
