package graph

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func ptr(v float64) *float64 { return &v }

func TestMarshalGraph(t *testing.T) {
	tests := []struct {
		name      string
		graph     Graph
		wantNodes int
		wantLinks int
		check     func(t *testing.T, g Graph)
	}{
		{
			name:      "Empty",
			graph:     Graph{},
			wantNodes: 0,
			wantLinks: 0,
		},
		{
			name: "Simple",
			graph: Graph{
				Nodes: []Node{{ID: "a"}, {ID: "b"}},
				Links: []Link{{Source: "a", Target: "b"}},
			},
			wantNodes: 2,
			wantLinks: 1,
		},
		{
			name: "PreservesInitialPositions",
			graph: Graph{
				Nodes: []Node{{ID: "a", X: ptr(12.5), Y: ptr(-3)}},
			},
			wantNodes: 1,
			wantLinks: 0,
			check: func(t *testing.T, g Graph) {
				if !g.Nodes[0].HasPosition() {
					t.Fatal("initial position lost in round-trip")
				}
				if *g.Nodes[0].X != 12.5 || *g.Nodes[0].Y != -3 {
					t.Errorf("position = (%v, %v), want (12.5, -3)", *g.Nodes[0].X, *g.Nodes[0].Y)
				}
			},
		},
		{
			name: "PreservesMetadata",
			graph: Graph{
				Nodes: []Node{{ID: "a", Label: "Node A", Group: "g1", Meta: map[string]any{"weight": "heavy"}}},
			},
			wantNodes: 1,
			wantLinks: 0,
			check: func(t *testing.T, g Graph) {
				if g.Nodes[0].Label != "Node A" {
					t.Errorf("label = %q, want %q", g.Nodes[0].Label, "Node A")
				}
				if g.Nodes[0].Meta["weight"] != "heavy" {
					t.Errorf("meta weight = %v, want heavy", g.Nodes[0].Meta["weight"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := MarshalGraph(tt.graph)
			if err != nil {
				t.Fatalf("MarshalGraph: %v", err)
			}

			var result Graph
			if err := json.Unmarshal(data, &result); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}

			if got := len(result.Nodes); got != tt.wantNodes {
				t.Errorf("nodes = %d, want %d", got, tt.wantNodes)
			}
			if got := len(result.Links); got != tt.wantLinks {
				t.Errorf("links = %d, want %d", got, tt.wantLinks)
			}

			if tt.check != nil {
				tt.check(t, result)
			}
		})
	}
}

func TestReadGraph(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantNodes int
		wantLinks int
		wantErr   error
	}{
		{
			name: "Valid",
			input: `{
				"nodes": [{"id": "a"}, {"id": "b"}],
				"links": [{"source": "a", "target": "b"}]
			}`,
			wantNodes: 2,
			wantLinks: 1,
		},
		{
			name:      "EmptyCollections",
			input:     `{"nodes": [], "links": []}`,
			wantNodes: 0,
			wantLinks: 0,
		},
		{
			name: "MissingLinkEndpoint",
			input: `{
				"nodes": [{"id": "a"}],
				"links": [{"source": "a", "target": "ghost"}]
			}`,
			wantErr: ErrUnknownLinkEndpoint,
		},
		{
			name: "DuplicateNodeID",
			input: `{
				"nodes": [{"id": "a"}, {"id": "a"}],
				"links": []
			}`,
			wantErr: ErrDuplicateNodeID,
		},
		{
			name: "EmptyNodeID",
			input: `{
				"nodes": [{"id": ""}],
				"links": []
			}`,
			wantErr: ErrEmptyNodeID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ReadGraph(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadGraph: %v", err)
			}
			if got := len(g.Nodes); got != tt.wantNodes {
				t.Errorf("nodes = %d, want %d", got, tt.wantNodes)
			}
			if got := len(g.Links); got != tt.wantLinks {
				t.Errorf("links = %d, want %d", got, tt.wantLinks)
			}
		})
	}

	t.Run("InvalidJSON", func(t *testing.T) {
		if _, err := ReadGraph(strings.NewReader("{nope")); err == nil {
			t.Fatal("expected decode error")
		}
	})
}

func TestGraphFileRoundTrip(t *testing.T) {
	g := Graph{
		Nodes: []Node{{ID: "app", Label: "Application"}, {ID: "lib"}},
		Links: []Link{{Source: "app", Target: "lib", Value: 2}},
	}

	path := filepath.Join(t.TempDir(), "graph.json")
	if err := WriteGraphFile(g, path); err != nil {
		t.Fatalf("WriteGraphFile: %v", err)
	}

	got, err := ReadGraphFile(path)
	if err != nil {
		t.Fatalf("ReadGraphFile: %v", err)
	}

	if got.NodeCount() != 2 || got.LinkCount() != 1 {
		t.Errorf("round-trip = %d nodes / %d links, want 2/1", got.NodeCount(), got.LinkCount())
	}
	if got.Links[0].Value != 2 {
		t.Errorf("link value = %v, want 2", got.Links[0].Value)
	}
}

func TestReadGraphFileMissing(t *testing.T) {
	_, err := ReadGraphFile(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !os.IsNotExist(errors.Unwrap(err)) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestDisplayLabel(t *testing.T) {
	n := Node{ID: "pkg"}
	if n.DisplayLabel() != "pkg" {
		t.Errorf("DisplayLabel = %q, want ID fallback", n.DisplayLabel())
	}
	n.Label = "Package"
	if n.DisplayLabel() != "Package" {
		t.Errorf("DisplayLabel = %q, want Package", n.DisplayLabel())
	}
}
