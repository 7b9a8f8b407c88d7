// Package store persists stabilized layouts so they can be retrieved by ID.
//
// Two backends are provided: MemoryStore for tests and single-process CLI
// usage, and MongoStore for server deployments. Layout IDs are UUIDs
// assigned by the store on first write.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/forcegraph/forcegraph/pkg/errors"
	"github.com/forcegraph/forcegraph/pkg/graph"
)

// Store is the persistence interface for stabilized layouts.
type Store interface {
	// Put persists a layout. If the layout has no ID, one is assigned.
	// Returns the stored layout including its ID.
	Put(ctx context.Context, layout graph.Layout) (graph.Layout, error)

	// Get retrieves a layout by ID. Returns an error with code
	// LAYOUT_NOT_FOUND if no layout has that ID.
	Get(ctx context.Context, id string) (graph.Layout, error)

	// List returns all stored layouts ordered by ID.
	List(ctx context.Context) ([]graph.Layout, error)

	// Delete removes a layout by ID. Deleting a missing layout is not
	// an error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// MemoryStore keeps layouts in a process-local map.
type MemoryStore struct {
	mu      sync.RWMutex
	layouts map[string]graph.Layout
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{layouts: make(map[string]graph.Layout)}
}

// Put persists a layout, assigning a UUID if it has none.
func (s *MemoryStore) Put(ctx context.Context, layout graph.Layout) (graph.Layout, error) {
	if layout.ID == "" {
		layout.ID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layouts[layout.ID] = layout
	return layout, nil
}

// Get retrieves a layout by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (graph.Layout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	layout, ok := s.layouts[id]
	if !ok {
		return graph.Layout{}, errors.New(errors.ErrCodeLayoutNotFound, "layout %s not found", id)
	}
	return layout, nil
}

// List returns all stored layouts ordered by ID.
func (s *MemoryStore) List(ctx context.Context) ([]graph.Layout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]graph.Layout, 0, len(s.layouts))
	for _, l := range s.layouts {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Delete removes a layout by ID.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.layouts, id)
	return nil
}

// Close does nothing for the in-memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
