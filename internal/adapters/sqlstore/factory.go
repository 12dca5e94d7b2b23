package sqlstore

import (
	"context"

	"github.com/freedaiy/intake/internal/db"
)

// OpenSQLite opens (and migrates) the SQLite file at path, without the
// .sqlite suffix. The returned store owns and closes its handle.
func OpenSQLite(ctx context.Context, path string) (*Store, error) {
	database, err := db.New(ctx, path)
	if err != nil {
		return nil, err
	}
	return newStore(database, database.Close), nil
}

// OpenPostgres opens (and migrates) a Postgres database. The returned store
// owns and closes its handle.
func OpenPostgres(ctx context.Context, dsn string) (*Store, error) {
	database, err := db.NewPostgres(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return newStore(database, database.Close), nil
}

// NewSharedStore creates a store backed by an existing shared handle.
// Closing the store does not close the shared handle.
func NewSharedStore(shared *db.Database) *Store {
	return newStore(shared, nil)
}
