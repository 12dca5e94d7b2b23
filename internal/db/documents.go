package db

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
)

const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// InsertDocument stores one JSON document.
func (c *Database) InsertDocument(ctx context.Context, id, collection string, body []byte, createdAt time.Time) error {
	var (
		query     string
		timestamp any
	)
	switch c.dialect {
	case DialectPostgres:
		query = "INSERT INTO documents (id, collection, body, created_at) VALUES ($1, $2, $3::jsonb, $4)"
		timestamp = createdAt.UTC()
	default:
		query = "INSERT INTO documents (id, collection, body, created_at) VALUES (?, ?, ?, ?)"
		timestamp = createdAt.UTC().Format(createdAtLayout)
	}
	return c.observe(ctx, "InsertDocument", "exec", func(ctx context.Context) error {
		_, err := c.db.ExecContext(ctx, query, id, collection, string(body), timestamp)
		return err
	})
}

// FindDocuments returns raw JSON bodies of a collection in insertion order.
// Filter keys match top-level fields by string equality.
func (c *Database) FindDocuments(ctx context.Context, collection string, filter map[string]string, limit int) ([][]byte, error) {
	query, args := c.findQuery(collection, filter, limit)

	var bodies [][]byte
	err := c.observe(ctx, "FindDocuments", "query", func(ctx context.Context) error {
		rows, err := c.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer func() {
			_ = rows.Close()
		}()
		for rows.Next() {
			var body []byte
			if err := rows.Scan(&body); err != nil {
				return err
			}
			bodies = append(bodies, body)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return bodies, nil
}

func (c *Database) findQuery(collection string, filter map[string]string, limit int) (string, []any) {
	keys := make([]string, 0, len(filter))
	for key := range filter {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	args := []any{collection}
	var b strings.Builder
	b.WriteString("SELECT body FROM documents WHERE collection = ")
	b.WriteString(c.placeholder(len(args)))

	for _, key := range keys {
		args = append(args, c.fieldPath(key))
		pathArg := c.placeholder(len(args))
		args = append(args, filter[key])
		valueArg := c.placeholder(len(args))
		if c.dialect == DialectPostgres {
			fmt.Fprintf(&b, " AND body->>%s::text = %s", pathArg, valueArg)
		} else {
			fmt.Fprintf(&b, " AND json_extract(body, %s) = %s", pathArg, valueArg)
		}
	}

	b.WriteString(" ORDER BY created_at, id")
	if limit > 0 {
		args = append(args, limit)
		b.WriteString(" LIMIT ")
		b.WriteString(c.placeholder(len(args)))
	}
	return b.String(), args
}

func (c *Database) placeholder(n int) string {
	if c.dialect == DialectPostgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

func (c *Database) fieldPath(key string) string {
	if c.dialect == DialectPostgres {
		return key
	}
	return `$."` + strings.ReplaceAll(key, `"`, "") + `"`
}

// ListCollectionNames returns the distinct collections holding documents.
func (c *Database) ListCollectionNames(ctx context.Context) ([]string, error) {
	names := []string{}
	err := c.observe(ctx, "ListCollectionNames", "query", func(ctx context.Context) error {
		rows, err := c.db.QueryContext(ctx, "SELECT DISTINCT collection FROM documents ORDER BY collection")
		if err != nil {
			return err
		}
		defer func() {
			_ = rows.Close()
		}()
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				return err
			}
			names = append(names, name)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}
