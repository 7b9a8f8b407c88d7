// Package cache provides caching for layout computation and rendered
// artifacts.
//
// Layout stabilization is deterministic, so a graph plus its simulation
// parameters fully determine the result. The cache exploits that: keys are
// derived from content hashes and parameter sets, and a hit skips the
// simulation entirely.
//
// Three backends are provided:
//   - FileCache for CLI usage (entries under a local directory)
//   - RedisCache for server deployments
//   - NullCache to disable caching
package cache

import (
	"context"
	"time"
)

// Default TTLs per content type. Layouts and artifacts are derived purely
// from their inputs, so long TTLs are safe.
const (
	// TTLGraph applies to validated graph documents keyed by input hash.
	TTLGraph = 24 * time.Hour

	// TTLLayout applies to stabilized layouts.
	TTLLayout = 7 * 24 * time.Hour

	// TTLArtifact applies to rendered outputs (SVG, PNG, DOT).
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the storage interface all backends implement.
//
// Get returns (data, true, nil) on a hit and (nil, false, nil) on a miss.
// Errors are reserved for backend failures, never for misses.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// LayoutKeyOpts captures every parameter that affects the stabilized
// positions. Two layout requests share a cache entry only if all of these
// match.
type LayoutKeyOpts struct {
	Engine     string  `json:"engine"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	LinkLength float64 `json:"link_length"`
	Iterations int     `json:"iterations"`
	Seed       uint64  `json:"seed"`
}

// ArtifactKeyOpts captures the parameters that affect a rendered artifact
// beyond the layout it was rendered from.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
}

// Keyer generates cache keys. Implementations must be deterministic:
// the same inputs always produce the same key.
type Keyer interface {
	// GraphKey generates a key for a validated graph document.
	GraphKey(inputHash string) string

	// LayoutKey generates a key for a stabilized layout.
	LayoutKey(graphHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key generator. Keys are namespaced by
// content type and hash both the content identifier and the options.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// GraphKey generates a key for a validated graph document.
func (k *DefaultKeyer) GraphKey(inputHash string) string {
	return "graph:" + inputHash
}

// LayoutKey generates a key for a stabilized layout.
func (k *DefaultKeyer) LayoutKey(graphHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", graphHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
