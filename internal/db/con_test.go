package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *Database {
	t.Helper()
	database, err := New(context.Background(), filepath.Join(t.TempDir(), "testdb"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func TestDocumentsRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database := openTestDB(t)
	base := time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC)

	docs := []struct {
		id, collection, body string
	}{
		{"01", "lead", `{"name":"Al","email":"a@b.com"}`},
		{"02", "lead", `{"name":"Bo","email":"b@c.com"}`},
		{"03", "subscriber", `{"email":"x@y.com","interests":[]}`},
	}
	for i, doc := range docs {
		if err := database.InsertDocument(ctx, doc.id, doc.collection, []byte(doc.body), base.Add(time.Duration(i)*time.Second)); err != nil {
			t.Fatalf("insert %s: %v", doc.id, err)
		}
	}

	leads, err := database.FindDocuments(ctx, "lead", nil, 0)
	if err != nil {
		t.Fatalf("find leads: %v", err)
	}
	if len(leads) != 2 || string(leads[0]) != docs[0].body {
		t.Fatalf("unexpected leads: %q", leads)
	}

	filtered, err := database.FindDocuments(ctx, "lead", map[string]string{"email": "b@c.com"}, 0)
	if err != nil {
		t.Fatalf("find filtered: %v", err)
	}
	if len(filtered) != 1 || string(filtered[0]) != docs[1].body {
		t.Fatalf("unexpected filtered leads: %q", filtered)
	}

	limited, err := database.FindDocuments(ctx, "lead", nil, 1)
	if err != nil {
		t.Fatalf("find limited: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected limit to apply, got %d rows", len(limited))
	}

	names, err := database.ListCollectionNames(ctx)
	if err != nil {
		t.Fatalf("list collections: %v", err)
	}
	if len(names) != 2 || names[0] != "lead" || names[1] != "subscriber" {
		t.Fatalf("unexpected collections: %v", names)
	}

	stats := database.QueryLatencyStats()
	if len(stats) == 0 {
		t.Fatal("expected query latency samples")
	}
}

func TestNewReappliesMigrationsIdempotently(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "reopen")
	first, err := New(ctx, path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := first.InsertDocument(ctx, "a", "lead", []byte(`{}`), time.Now()); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	second, err := New(ctx, path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	t.Cleanup(func() { _ = second.Close() })

	bodies, err := second.FindDocuments(ctx, "lead", nil, 0)
	if err != nil {
		t.Fatalf("find after reopen: %v", err)
	}
	if len(bodies) != 1 {
		t.Fatalf("expected persisted document, got %d", len(bodies))
	}
}

func TestFindQueryUsesDialectPlaceholders(t *testing.T) {
	t.Parallel()

	pg := &Database{dialect: DialectPostgres}
	query, args := pg.findQuery("lead", map[string]string{"email": "a@b.com"}, 5)
	want := "SELECT body FROM documents WHERE collection = $1 AND body->>$2::text = $3 ORDER BY created_at, id LIMIT $4"
	if query != want {
		t.Fatalf("unexpected postgres query:\n%s", query)
	}
	if len(args) != 4 || args[1] != "email" || args[3] != 5 {
		t.Fatalf("unexpected args: %v", args)
	}

	lite := &Database{dialect: DialectSQLite}
	query, args = lite.findQuery("lead", map[string]string{"email": "a@b.com"}, 0)
	if query != "SELECT body FROM documents WHERE collection = ? AND json_extract(body, ?) = ? ORDER BY created_at, id" {
		t.Fatalf("unexpected sqlite query:\n%s", query)
	}
	if args[1] != `$."email"` {
		t.Fatalf("unexpected json path %v", args[1])
	}
}

func TestQueryLatencyKeepsRecentWindow(t *testing.T) {
	t.Parallel()

	latency := newQueryLatency()
	for i := 1; i <= latencyWindowSize+100; i++ {
		latency.record("FindDocuments", time.Duration(i)*time.Millisecond)
	}
	latency.record("InsertDocument", time.Millisecond)

	stats := latency.stats()
	if len(stats) != 2 || stats[0].Name != "FindDocuments" {
		t.Fatalf("expected slowest query first, got %+v", stats)
	}
	find := stats[0]
	if find.Count != latencyWindowSize {
		t.Fatalf("expected window of %d samples, got %d", latencyWindowSize, find.Count)
	}
	if find.Max != time.Duration(latencyWindowSize+100)*time.Millisecond {
		t.Fatalf("unexpected max %s", find.Max)
	}
	if find.P50 < 101*time.Millisecond || find.P50 > find.P95 {
		t.Fatalf("expected p50 over the recent window only, got p50=%s p95=%s", find.P50, find.P95)
	}
}
