// Package fallback provides the no-op document store used when no live store
// is configured or reachable.
package fallback

import (
	"context"

	"github.com/freedaiy/intake/internal/app/ports"
)

// PlaceholderID is returned for every write. It is constant and must not be
// treated as a reference to a persisted record.
const PlaceholderID ports.DocumentID = "mock-id"

// BackendName identifies the fallback in logs and diagnostics.
const BackendName = "fallback"

// Store accepts writes without persisting them.
type Store struct{}

// New returns the fallback store.
func New() *Store {
	return &Store{}
}

// CreateDocument always succeeds with PlaceholderID.
func (s *Store) CreateDocument(context.Context, ports.CollectionName, any) (ports.DocumentID, error) {
	return PlaceholderID, nil
}

// ListDocuments always returns an empty slice.
func (s *Store) ListDocuments(context.Context, ports.CollectionName, ports.ListOptions) []ports.Document {
	return []ports.Document{}
}

// IsReachable is always false.
func (s *Store) IsReachable(context.Context) bool {
	return false
}

// ListCollections reports that there is no store to list.
func (s *Store) ListCollections(context.Context) ([]string, error) {
	return nil, ports.ErrStoreUnavailable
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}

var _ ports.DocumentStore = (*Store)(nil)
