// Package storage turns a raw document backend into the application's
// document store and resolves which backend to use at startup.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/freedaiy/intake/internal/app/ports"
	"github.com/freedaiy/intake/internal/observability"
)

const (
	defaultTimeout = 5 * time.Second

	fieldCreatedAt = "created_at"
	fieldUpdatedAt = "updated_at"
)

// Options tunes a Store. Zero values are usable.
type Options struct {
	Timeout time.Duration
	Metrics *observability.Metrics
	Logger  *slog.Logger
}

// Store adapts a ports.DocumentBackend to ports.DocumentStore. Documents are
// JSON-encoded here and nowhere else.
type Store struct {
	backend ports.DocumentBackend
	timeout time.Duration
	metrics *observability.Metrics
	log     *slog.Logger
	now     func() time.Time

	mu          sync.Mutex
	lastListErr error
}

// New wraps backend.
func New(backend ports.DocumentBackend, opts Options) *Store {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		backend: backend,
		timeout: timeout,
		metrics: opts.Metrics,
		log:     log,
		now:     time.Now,
	}
}

// Backend exposes the wrapped backend.
func (s *Store) Backend() ports.DocumentBackend {
	return s.backend
}

// CreateDocument stores data, which must encode to a JSON object, stamped
// with created_at and updated_at.
func (s *Store) CreateDocument(ctx context.Context, collection ports.CollectionName, data any) (ports.DocumentID, error) {
	if !collection.Valid() {
		return "", fmt.Errorf("%w: unknown collection %q", ports.ErrWriteFailed, collection)
	}
	body, err := s.encode(data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ports.ErrWriteFailed, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	ctx, span := observability.StartStoreSpan(ctx, s.backend.Name(), "insert", collection.String())
	defer span.End()

	started := time.Now()
	id, err := s.backend.Insert(ctx, collection.String(), body)
	s.metrics.ObserveStoreOperation(s.backend.Name(), "insert", time.Since(started), err)
	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("%w: %w", s.insertFailure(ctx), err)
	}
	return ports.DocumentID(id), nil
}

// insertFailure reports ErrStoreUnavailable when the backend no longer
// answers a ping after a failed insert, ErrWriteFailed otherwise.
func (s *Store) insertFailure(ctx context.Context) error {
	if s.IsReachable(context.WithoutCancel(ctx)) {
		return ports.ErrWriteFailed
	}
	return ports.ErrStoreUnavailable
}

func (s *Store) encode(data any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil || doc == nil {
		return nil, errors.New("document must encode to a JSON object")
	}
	stamp := s.now().UTC().Format(time.RFC3339Nano)
	if _, ok := doc[fieldCreatedAt]; !ok {
		doc[fieldCreatedAt] = stamp
	}
	if _, ok := doc[fieldUpdatedAt]; !ok {
		doc[fieldUpdatedAt] = stamp
	}
	return json.Marshal(doc)
}

// ListDocuments returns matching documents in insertion order. Failures are
// logged, counted and remembered for LastListError; the caller gets an empty
// slice.
func (s *Store) ListDocuments(ctx context.Context, collection ports.CollectionName, opts ports.ListOptions) []ports.Document {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	ctx, span := observability.StartStoreSpan(ctx, s.backend.Name(), "find", collection.String())
	defer span.End()

	started := time.Now()
	bodies, err := s.backend.Find(ctx, collection.String(), opts.Filter, opts.Limit)
	s.metrics.ObserveStoreOperation(s.backend.Name(), "find", time.Since(started), err)
	if err != nil {
		span.RecordError(err)
		s.recordListError(err)
		s.metrics.ObserveListFailure(s.backend.Name())
		s.log.WarnContext(ctx, "document listing failed",
			"backend", s.backend.Name(),
			"collection", collection.String(),
			"err", err,
		)
		return []ports.Document{}
	}
	s.recordListError(nil)

	docs := make([]ports.Document, 0, len(bodies))
	for _, body := range bodies {
		var doc ports.Document
		if err := json.Unmarshal(body, &doc); err != nil {
			s.log.WarnContext(ctx, "skipping undecodable document",
				"backend", s.backend.Name(),
				"collection", collection.String(),
				"err", err,
			)
			continue
		}
		docs = append(docs, doc)
	}
	return docs
}

func (s *Store) recordListError(err error) {
	s.mu.Lock()
	s.lastListErr = err
	s.mu.Unlock()
}

// LastListError returns the error of the most recent listing, or nil when it
// succeeded.
func (s *Store) LastListError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastListErr
}

// IsReachable pings the backend. It reports false instead of panicking.
func (s *Store) IsReachable(ctx context.Context) (ok bool) {
	defer func() {
		if recovered := recover(); recovered != nil {
			s.log.ErrorContext(ctx, "store ping panicked", "backend", s.backend.Name(), "panic", recovered)
			ok = false
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	ctx, span := observability.StartStoreSpan(ctx, s.backend.Name(), "ping", "")
	defer span.End()

	started := time.Now()
	err := s.backend.Ping(ctx)
	s.metrics.ObserveStoreOperation(s.backend.Name(), "ping", time.Since(started), err)
	if err != nil {
		span.RecordError(err)
		return false
	}
	return true
}

func (s *Store) ListCollections(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	ctx, span := observability.StartStoreSpan(ctx, s.backend.Name(), "collections", "")
	defer span.End()

	started := time.Now()
	names, err := s.backend.Collections(ctx)
	s.metrics.ObserveStoreOperation(s.backend.Name(), "collections", time.Since(started), err)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (s *Store) Close() error {
	return s.backend.Close()
}

var (
	_ ports.DocumentStore       = (*Store)(nil)
	_ ports.ListFailureReporter = (*Store)(nil)
)
