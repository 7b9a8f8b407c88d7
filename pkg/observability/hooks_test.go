package observability

import (
	"context"
	"testing"
	"time"
)

type recordingSimHooks struct {
	NoopSimulationHooks
	starts    int
	completes int
}

func (h *recordingSimHooks) OnStabilizeStart(ctx context.Context, engine string, nodes, links int) {
	h.starts++
}

func (h *recordingSimHooks) OnStabilizeComplete(ctx context.Context, engine string, iterations int, d time.Duration, err error) {
	h.completes++
}

type recordingCacheHooks struct {
	NoopCacheHooks
	hits, misses int
}

func (h *recordingCacheHooks) OnCacheHit(ctx context.Context, keyType string)  { h.hits++ }
func (h *recordingCacheHooks) OnCacheMiss(ctx context.Context, keyType string) { h.misses++ }

func TestDefaultsAreNoop(t *testing.T) {
	Reset()
	ctx := context.Background()

	// Should not panic
	Simulation().OnStabilizeStart(ctx, "force", 10, 9)
	Simulation().OnStabilizeComplete(ctx, "force", 300, time.Second, nil)
	Cache().OnCacheHit(ctx, "layout")
	Server().OnRequest(ctx, "GET", "/healthz")
}

func TestSetAndReset(t *testing.T) {
	defer Reset()

	sim := &recordingSimHooks{}
	SetSimulationHooks(sim)

	ctx := context.Background()
	Simulation().OnStabilizeStart(ctx, "force", 3, 2)
	Simulation().OnStabilizeComplete(ctx, "force", 300, time.Millisecond, nil)

	if sim.starts != 1 || sim.completes != 1 {
		t.Errorf("starts=%d completes=%d, want 1 and 1", sim.starts, sim.completes)
	}

	Reset()
	Simulation().OnStabilizeStart(ctx, "force", 3, 2)
	if sim.starts != 1 {
		t.Error("Reset should restore no-op hooks")
	}
}

func TestSetNilKeepsCurrent(t *testing.T) {
	defer Reset()

	ch := &recordingCacheHooks{}
	SetCacheHooks(ch)
	SetCacheHooks(nil)

	Cache().OnCacheHit(context.Background(), "layout")
	if ch.hits != 1 {
		t.Error("SetCacheHooks(nil) should keep the registered hooks")
	}
}
