package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/freedaiy/intake/internal/app/ports"
	"github.com/freedaiy/intake/internal/observability"
)

type fakeBackend struct {
	bodies    map[string][][]byte
	insertErr error
	findErr   error
	pingErr   error
	pingPanic bool
	names     []string
	namesErr  error
	closed    bool
	deadline  bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{bodies: map[string][][]byte{}}
}

func (f *fakeBackend) Name() string { return "fake" }

func (f *fakeBackend) Insert(ctx context.Context, collection string, body []byte) (string, error) {
	_, f.deadline = ctx.Deadline()
	if f.insertErr != nil {
		return "", f.insertErr
	}
	f.bodies[collection] = append(f.bodies[collection], body)
	return "doc-1", nil
}

func (f *fakeBackend) Find(_ context.Context, collection string, _ map[string]string, _ int) ([][]byte, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.bodies[collection], nil
}

func (f *fakeBackend) Ping(context.Context) error {
	if f.pingPanic {
		panic("driver exploded")
	}
	return f.pingErr
}

func (f *fakeBackend) Collections(context.Context) ([]string, error) {
	return f.names, f.namesErr
}

func (f *fakeBackend) Close() error {
	f.closed = true
	return nil
}

func newTestStore(backend *fakeBackend) (*Store, *observability.Metrics) {
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	store := New(backend, Options{
		Timeout: time.Second,
		Metrics: metrics,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	store.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return store, metrics
}

type leadDoc struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Company *string `json:"company"`
}

func TestCreateDocumentStampsTimestamps(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	store, metrics := newTestStore(backend)

	id, err := store.CreateDocument(context.Background(), ports.CollectionLead, leadDoc{Name: "Al", Email: "a@b.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id != "doc-1" {
		t.Fatalf("unexpected id %q", id)
	}
	if !backend.deadline {
		t.Fatal("expected insert to run under a deadline")
	}

	var stored map[string]any
	if err := json.Unmarshal(backend.bodies["lead"][0], &stored); err != nil {
		t.Fatalf("decode stored body: %v", err)
	}
	if stored["created_at"] != "2024-05-01T12:00:00Z" || stored["updated_at"] != "2024-05-01T12:00:00Z" {
		t.Fatalf("expected timestamps, got %#v", stored)
	}
	if value, ok := stored["company"]; !ok || value != nil {
		t.Fatalf("expected absent company stored as null, got %#v", stored)
	}
	if got := testutil.ToFloat64(metrics.StoreOperationsTotal.WithLabelValues("fake", "insert", "success")); got != 1 {
		t.Fatalf("expected one successful insert metric, got %v", got)
	}
}

func TestCreateDocumentMapsBackendFailure(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	cause := errors.New("disk full")
	backend.insertErr = cause
	store, _ := newTestStore(backend)

	_, err := store.CreateDocument(context.Background(), ports.CollectionSubscriber, map[string]any{"email": "a@b.com"})
	if !errors.Is(err, ports.ErrWriteFailed) || !errors.Is(err, cause) {
		t.Fatalf("expected ErrWriteFailed wrapping cause, got %v", err)
	}
}

func TestCreateDocumentReportsLostConnection(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	cause := errors.New("dial tcp 10.0.0.5:5432: connect: connection refused")
	backend.insertErr = cause
	backend.pingErr = cause
	store, _ := newTestStore(backend)

	_, err := store.CreateDocument(context.Background(), ports.CollectionLead, map[string]any{"name": "Al"})
	if !errors.Is(err, ports.ErrStoreUnavailable) || !errors.Is(err, cause) {
		t.Fatalf("expected ErrStoreUnavailable wrapping cause, got %v", err)
	}
	if errors.Is(err, ports.ErrWriteFailed) {
		t.Fatalf("expected unreachable store not to be reported as a write failure, got %v", err)
	}
}

func TestCreateDocumentRejectsNonObjects(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(newFakeBackend())
	if _, err := store.CreateDocument(context.Background(), ports.CollectionLead, []string{"a"}); !errors.Is(err, ports.ErrWriteFailed) {
		t.Fatalf("expected ErrWriteFailed for array payload, got %v", err)
	}
	if _, err := store.CreateDocument(context.Background(), ports.CollectionName("orders"), map[string]any{}); !errors.Is(err, ports.ErrWriteFailed) {
		t.Fatalf("expected ErrWriteFailed for unknown collection, got %v", err)
	}
}

func TestListDocumentsSwallowsFailures(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	backend.findErr = errors.New("connection reset")
	store, metrics := newTestStore(backend)

	docs := store.ListDocuments(context.Background(), ports.CollectionLead, ports.ListOptions{})
	if docs == nil || len(docs) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", docs)
	}
	if err := store.LastListError(); err == nil || err.Error() != "connection reset" {
		t.Fatalf("expected remembered list error, got %v", err)
	}
	if got := testutil.ToFloat64(metrics.StoreListFailures.WithLabelValues("fake")); got != 1 {
		t.Fatalf("expected one list failure, got %v", got)
	}

	backend.findErr = nil
	backend.bodies["lead"] = [][]byte{[]byte(`{"name":"Al"}`), []byte(`not-json`), []byte(`{"name":"Bo"}`)}
	docs = store.ListDocuments(context.Background(), ports.CollectionLead, ports.ListOptions{})
	if len(docs) != 2 || docs[0]["name"] != "Al" || docs[1]["name"] != "Bo" {
		t.Fatalf("expected decodable documents in order, got %#v", docs)
	}
	if err := store.LastListError(); err != nil {
		t.Fatalf("expected list error cleared after success, got %v", err)
	}
}

func TestIsReachable(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	store, _ := newTestStore(backend)
	if !store.IsReachable(context.Background()) {
		t.Fatal("expected reachable backend")
	}

	backend.pingErr = errors.New("timeout")
	if store.IsReachable(context.Background()) {
		t.Fatal("expected unreachable on ping error")
	}

	backend.pingErr = nil
	backend.pingPanic = true
	if store.IsReachable(context.Background()) {
		t.Fatal("expected unreachable on ping panic")
	}
}

func TestListCollectionsAndClose(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	store, _ := newTestStore(backend)

	names, err := store.ListCollections(context.Background())
	if err != nil || names == nil || len(names) != 0 {
		t.Fatalf("expected empty non-nil names, got %#v (%v)", names, err)
	}

	backend.namesErr = errors.New("not authorized")
	if _, err := store.ListCollections(context.Background()); err == nil {
		t.Fatal("expected collections error")
	}

	if err := store.Close(); err != nil || !backend.closed {
		t.Fatalf("expected backend closed, err=%v", err)
	}
}
