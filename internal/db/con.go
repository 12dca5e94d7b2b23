package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	// Postgres driver.
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	// SQLite driver.
	_ "modernc.org/sqlite"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// Dialect selects driver, migrations and SQL flavour.
type Dialect string

const (
	// DialectSQLite stores documents as JSON text in a local file.
	DialectSQLite Dialect = "sqlite"
	// DialectPostgres stores documents as JSONB.
	DialectPostgres Dialect = "postgres"
)

// Database wraps the shared connection with query instrumentation.
type Database struct {
	db      *sql.DB
	dialect Dialect
	latency *queryLatency
}

// New opens the SQLite database at the provided path and applies migrations.
func New(ctx context.Context, path string, openParams ...string) (*Database, error) {
	if strings.TrimSpace(path) == "" {
		path = "data/intake"
	}
	return open(ctx, DialectSQLite, sqliteDSN(path, openParams...))
}

// NewPostgres opens a Postgres database and applies migrations.
func NewPostgres(ctx context.Context, dsn string) (*Database, error) {
	return open(ctx, DialectPostgres, dsn)
}

func open(ctx context.Context, dialect Dialect, dsn string) (*Database, error) {
	db, err := sql.Open(string(dialect), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}
	if err := migrate(ctx, db, dialect); err != nil {
		_ = db.Close()
		return nil, err
	}
	return Wrap(db, dialect), nil
}

// Wrap instruments an already-open connection without running migrations.
func Wrap(db *sql.DB, dialect Dialect) *Database {
	return &Database{
		db:      db,
		dialect: dialect,
		latency: newQueryLatency(),
	}
}

func migrate(ctx context.Context, db *sql.DB, dialect Dialect) error {
	gooseDialect := goose.DialectSQLite3
	if dialect == DialectPostgres {
		gooseDialect = goose.DialectPostgres
	}
	fsys, err := fs.Sub(migrationsFS, "migrations/"+string(dialect))
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}
	provider, err := goose.NewProvider(gooseDialect, db, fsys)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func sqliteDSN(path string, openParams ...string) string {
	values := url.Values{}
	values.Add("_pragma", "journal_mode(WAL)")
	values.Add("_pragma", "synchronous(NORMAL)")
	values.Add("_pragma", "busy_timeout(5000)")
	values.Add("_pragma", "temp_store(MEMORY)")

	for _, param := range openParams {
		part := strings.TrimSpace(strings.TrimPrefix(param, "&"))
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		values.Add(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	return fmt.Sprintf("file:%s.sqlite?%s", path, values.Encode())
}

// Dialect reports the SQL flavour of the connection.
func (c *Database) Dialect() Dialect {
	return c.dialect
}

// Ping checks the connection.
func (c *Database) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// Close closes the underlying database connection.
func (c *Database) Close() error {
	return c.db.Close()
}
