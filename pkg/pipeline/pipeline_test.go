package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/forcegraph/forcegraph/pkg/cache"
	"github.com/forcegraph/forcegraph/pkg/errors"
	"github.com/forcegraph/forcegraph/pkg/graph"
	"github.com/forcegraph/forcegraph/pkg/sim"
)

func chainGraph() graph.Graph {
	return graph.Graph{
		Nodes: []graph.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		Links: []graph.Link{
			{Source: "a", Target: "b", Value: 1},
			{Source: "b", Target: "c", Value: 1},
		},
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"json", false},
		{"svg", false},
		{"png", false},
		{"dot", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateEngine(t *testing.T) {
	tests := []struct {
		engine  string
		wantErr bool
	}{
		{"force", false},
		{"dot", false},
		{"invalid", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateEngine(tt.engine)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateEngine(%q) error = %v, wantErr %v", tt.engine, err, tt.wantErr)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Empty options should pass: %v", err)
	}

	if opts.Engine != graph.EngineForce {
		t.Errorf("Engine should default to force, got %q", opts.Engine)
	}
	if opts.Width != DefaultWidth {
		t.Errorf("Width should be %v, got %v", DefaultWidth, opts.Width)
	}
	if opts.Height != DefaultHeight {
		t.Errorf("Height should be %v, got %v", DefaultHeight, opts.Height)
	}
	if opts.LinkLength != sim.DefaultLinkLength {
		t.Errorf("LinkLength should be %v, got %v", sim.DefaultLinkLength, opts.LinkLength)
	}
	if opts.Iterations != sim.DefaultIterations {
		t.Errorf("Iterations should be %v, got %v", sim.DefaultIterations, opts.Iterations)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatJSON {
		t.Errorf("Formats should default to [json], got %v", opts.Formats)
	}
}

func TestGenerateLayoutForce(t *testing.T) {
	opts := Options{Iterations: 50}
	opts.SetLayoutDefaults()

	layout, err := GenerateLayout(chainGraph(), opts)
	if err != nil {
		t.Fatalf("GenerateLayout: %v", err)
	}

	if !layout.IsForce() {
		t.Errorf("Engine = %q, want force", layout.Engine)
	}
	if len(layout.Nodes) != 3 {
		t.Errorf("positioned %d nodes, want 3", len(layout.Nodes))
	}
	if layout.DOT != "" {
		t.Error("force layout should not carry DOT source")
	}
}

func TestGenerateLayoutDot(t *testing.T) {
	opts := Options{Engine: graph.EngineDot}
	opts.SetLayoutDefaults()

	layout, err := GenerateLayout(chainGraph(), opts)
	if err != nil {
		t.Fatalf("GenerateLayout: %v", err)
	}

	if !layout.IsDot() {
		t.Errorf("Engine = %q, want dot", layout.Engine)
	}
	if !strings.Contains(layout.DOT, `"a" -- "b"`) {
		t.Errorf("DOT source missing edge: %s", layout.DOT)
	}
	if len(layout.Nodes) != 0 {
		t.Error("dot layout should not carry positioned nodes")
	}
}

func TestGenerateLayoutErrorCodes(t *testing.T) {
	opts := Options{Iterations: 10}
	opts.SetLayoutDefaults()

	// Malformed graph
	bad := chainGraph()
	bad.Links = append(bad.Links, graph.Link{Source: "a", Target: "ghost"})
	_, err := GenerateLayout(bad, opts)
	if !errors.Is(err, errors.ErrCodeMalformedGraph) {
		t.Errorf("error = %v, want MALFORMED_GRAPH", err)
	}

	// Invalid parameter
	opts.Width = -1
	_, err = GenerateLayout(chainGraph(), opts)
	if !errors.Is(err, errors.ErrCodeInvalidParameter) {
		t.Errorf("error = %v, want INVALID_PARAMETER", err)
	}
}

func TestRunnerExecute(t *testing.T) {
	runner := NewRunner(cache.NewNullCache(), nil, nil)
	defer runner.Close()

	opts := Options{
		Iterations: 50,
		Formats:    []string{FormatJSON, FormatSVG},
	}
	result, err := runner.Execute(context.Background(), chainGraph(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Stats.NodeCount != 3 || result.Stats.LinkCount != 2 {
		t.Errorf("stats = %+v", result.Stats)
	}
	if result.GraphHash == "" {
		t.Error("GraphHash should be set")
	}
	if result.CacheInfo.LayoutHit || result.CacheInfo.RenderHit {
		t.Error("NullCache should never hit")
	}

	if _, ok := result.Artifacts[FormatJSON]; !ok {
		t.Error("json artifact missing")
	}
	svg, ok := result.Artifacts[FormatSVG]
	if !ok {
		t.Fatal("svg artifact missing")
	}
	if !strings.HasPrefix(string(svg), "<svg") {
		t.Errorf("svg artifact malformed: %s", svg[:20])
	}

	// JSON artifact round-trips as a layout
	layout, err := graph.UnmarshalLayout(result.Artifacts[FormatJSON])
	if err != nil {
		t.Fatalf("UnmarshalLayout: %v", err)
	}
	if len(layout.Nodes) != 3 {
		t.Errorf("layout has %d nodes, want 3", len(layout.Nodes))
	}
}

func TestRunnerLayoutCaching(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	runner := NewRunner(fc, nil, nil)
	defer runner.Close()

	ctx := context.Background()
	opts := Options{Iterations: 50}

	_, hit, err := runner.StabilizeWithCacheInfo(ctx, chainGraph(), opts)
	if err != nil {
		t.Fatalf("Stabilize: %v", err)
	}
	if hit {
		t.Error("first run should miss")
	}

	cached, hit, err := runner.StabilizeWithCacheInfo(ctx, chainGraph(), opts)
	if err != nil {
		t.Fatalf("Stabilize: %v", err)
	}
	if !hit {
		t.Error("second run should hit")
	}
	if len(cached.Nodes) != 3 {
		t.Errorf("cached layout has %d nodes, want 3", len(cached.Nodes))
	}

	// Different parameters miss
	opts.Iterations = 60
	_, hit, err = runner.StabilizeWithCacheInfo(ctx, chainGraph(), opts)
	if err != nil {
		t.Fatalf("Stabilize: %v", err)
	}
	if hit {
		t.Error("changed iterations should miss")
	}
}

func TestRenderDotFormatRequiresDotEngine(t *testing.T) {
	opts := Options{Iterations: 10, Formats: []string{FormatDOT}}
	opts.SetLayoutDefaults()

	layout, err := GenerateLayout(chainGraph(), opts)
	if err != nil {
		t.Fatalf("GenerateLayout: %v", err)
	}

	_, err = RenderFromLayout(context.Background(), layout, opts)
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("error = %v, want UNSUPPORTED", err)
	}
}
