package graph

import (
	"encoding/json"
	"fmt"
	"os"
)

// =============================================================================
// Layout - Unified Positioned-Graph Format
// =============================================================================

// Layout is the unified serialization format for computed layouts.
//
// This is a discriminated union type - check Engine to determine which
// fields are populated:
//
//	Force ("force"):
//	  - Nodes: positioned nodes with resolved coordinates
//	  - LinkLength, Iterations, Seed: simulation parameters used
//
//	Dot ("dot"):
//	  - DOT: Graphviz DOT string for rendering
//
// Shared fields (both engines):
//   - Width, Height: viewport dimensions
//   - Links: the input link set (endpoints resolvable against Nodes)
//
// ID is assigned by the layout store when a layout is persisted; it is empty
// for layouts that only live in files or caches.
type Layout struct {
	// Discriminator
	Engine string `json:"engine" bson:"engine"`

	// Storage identity (UUID, set on persist)
	ID string `json:"id,omitempty" bson:"_id,omitempty"`

	// Common dimensions
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`

	// Graph structure (shared)
	Nodes []PositionedNode `json:"nodes,omitempty" bson:"nodes,omitempty"`
	Links []Link           `json:"links,omitempty" bson:"links,omitempty"`

	// Force-specific simulation parameters
	LinkLength float64 `json:"link_length,omitempty" bson:"link_length,omitempty"`
	Iterations int     `json:"iterations,omitempty" bson:"iterations,omitempty"`
	Seed       uint64  `json:"seed,omitempty" bson:"seed,omitempty"`

	// Dot-specific
	DOT string `json:"dot,omitempty" bson:"dot,omitempty"`
}

// IsForce returns true if this layout was computed by the force simulation.
func (l *Layout) IsForce() bool { return l.Engine == EngineForce }

// IsDot returns true if this layout delegates positioning to Graphviz.
func (l *Layout) IsDot() bool { return l.Engine == EngineDot }

// Node returns the positioned node with the given ID and true,
// or a zero node and false if not found.
func (l *Layout) Node(id string) (PositionedNode, bool) {
	for _, n := range l.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return PositionedNode{}, false
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
// Validates that required fields are present for the engine.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}

	if l.Engine == "" {
		l.Engine = EngineForce
	}

	if l.Width <= 0 || l.Height <= 0 {
		return Layout{}, fmt.Errorf("layout must have positive viewport dimensions")
	}
	if l.IsForce() && len(l.Nodes) == 0 {
		return Layout{}, fmt.Errorf("force layout must contain positioned nodes")
	}
	if l.IsDot() && l.DOT == "" {
		return Layout{}, fmt.Errorf("dot layout must contain DOT string")
	}

	return l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
