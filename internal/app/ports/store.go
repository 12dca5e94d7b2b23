package ports

import (
	"context"
	"errors"
)

var (
	// ErrStoreUnavailable indicates that no backing store connection exists.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrWriteFailed indicates the store was reachable but the write errored.
	ErrWriteFailed = errors.New("write failed")
)

// CollectionName names a document collection.
type CollectionName string

const (
	// CollectionLead holds lead-capture submissions.
	CollectionLead CollectionName = "lead"
	// CollectionSubscriber holds newsletter subscriptions.
	CollectionSubscriber CollectionName = "subscriber"
)

// Collections lists every collection this service writes to.
func Collections() []CollectionName {
	return []CollectionName{CollectionLead, CollectionSubscriber}
}

// Valid reports whether the name belongs to the known collection set.
func (c CollectionName) Valid() bool {
	switch c {
	case CollectionLead, CollectionSubscriber:
		return true
	default:
		return false
	}
}

func (c CollectionName) String() string {
	return string(c)
}

// DocumentID is an opaque store-assigned identifier.
type DocumentID string

// Document is one stored record in its decoded, untyped form.
type Document map[string]any

// ListOptions narrows a document listing. Filter matches top-level fields by
// string equality. Limit <= 0 means no limit.
type ListOptions struct {
	Filter map[string]string
	Limit  int
}

// DocumentStore is the storage contract used by the application layer.
// Implementations must be safe for concurrent use.
type DocumentStore interface {
	// CreateDocument writes one record and returns its identifier.
	CreateDocument(ctx context.Context, collection CollectionName, data any) (DocumentID, error)
	// ListDocuments never fails the caller: on error it returns an empty slice.
	ListDocuments(ctx context.Context, collection CollectionName, opts ListOptions) []Document
	// IsReachable is a liveness probe that never panics.
	IsReachable(ctx context.Context) bool
	// ListCollections returns the collection names present in the store.
	ListCollections(ctx context.Context) ([]string, error)
	Close() error
}

// ListFailureReporter is implemented by stores that remember the last failed
// listing so it can be surfaced by diagnostics.
type ListFailureReporter interface {
	LastListError() error
}

// DocumentBackend is the raw contract a concrete database implements. Bodies
// are JSON-encoded documents.
type DocumentBackend interface {
	Name() string
	Insert(ctx context.Context, collection string, body []byte) (string, error)
	Find(ctx context.Context, collection string, filter map[string]string, limit int) ([][]byte, error)
	Ping(ctx context.Context) error
	Collections(ctx context.Context) ([]string, error)
	Close() error
}

// StoreResolution records the outcome of choosing the document store at
// process start.
type StoreResolution struct {
	Store   DocumentStore
	Backend string
	// Live is false when Store is the fallback adapter.
	Live bool
	// Err is set when a configured store could not be opened.
	Err error
}
