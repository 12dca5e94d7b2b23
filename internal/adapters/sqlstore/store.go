package sqlstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/freedaiy/intake/internal/app/ports"
	"github.com/freedaiy/intake/internal/db"
)

type documentDatabase interface {
	InsertDocument(ctx context.Context, id, collection string, body []byte, createdAt time.Time) error
	FindDocuments(ctx context.Context, collection string, filter map[string]string, limit int) ([][]byte, error)
	ListCollectionNames(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
	Dialect() db.Dialect
	QueryLatencyStats() []db.LatencyStats
}

// Store is a SQL-backed document backend.
type Store struct {
	db      documentDatabase
	closeFn func() error
	now     func() time.Time
}

func newStore(database documentDatabase, closeFn func() error) *Store {
	return &Store{db: database, closeFn: closeFn, now: time.Now}
}

// Name reports the SQL dialect.
func (s *Store) Name() string {
	return string(s.db.Dialect())
}

// Insert stores body under a new time-ordered identifier.
func (s *Store) Insert(ctx context.Context, collection string, body []byte) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	if err := s.db.InsertDocument(ctx, id.String(), collection, body, s.now()); err != nil {
		return "", err
	}
	return id.String(), nil
}

func (s *Store) Find(ctx context.Context, collection string, filter map[string]string, limit int) ([][]byte, error) {
	return s.db.FindDocuments(ctx, collection, filter, limit)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *Store) Collections(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx)
}

// QueryLatencyStats exposes per-query latency samples of the connection.
func (s *Store) QueryLatencyStats() []db.LatencyStats {
	return s.db.QueryLatencyStats()
}

func (s *Store) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}

var _ ports.DocumentBackend = (*Store)(nil)
