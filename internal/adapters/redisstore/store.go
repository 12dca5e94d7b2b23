// Package redisstore keeps documents in Redis as JSON strings with a
// per-collection insertion-ordered id list.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/freedaiy/intake/internal/adapters/docfilter"
	"github.com/freedaiy/intake/internal/app/ports"
)

const defaultPrefix = "intake"

// Store is a Redis-backed document backend.
type Store struct {
	client redis.UniversalClient
	prefix string
	owned  bool
}

// Open connects using a redis:// or rediss:// URL. prefix namespaces every
// key; empty means "intake".
func Open(ctx context.Context, rawURL, prefix string) (*Store, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	store := New(client, prefix)
	store.owned = true
	return store, nil
}

// New wraps an existing client. Closing the store does not close client.
func New(client redis.UniversalClient, prefix string) *Store {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &Store{client: client, prefix: prefix}
}

func (s *Store) Name() string {
	return "redis"
}

func (s *Store) collectionsKey() string {
	return s.prefix + ":collections"
}

func (s *Store) idsKey(collection string) string {
	return s.prefix + ":" + collection + ":ids"
}

func (s *Store) docKey(collection, id string) string {
	return s.prefix + ":" + collection + ":doc:" + id
}

// Insert writes the document, its id index entry and the collection marker
// in one transaction.
func (s *Store) Insert(ctx context.Context, collection string, body []byte) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.docKey(collection, id.String()), body, 0)
		pipe.RPush(ctx, s.idsKey(collection), id.String())
		pipe.SAdd(ctx, s.collectionsKey(), collection)
		return nil
	})
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (s *Store) Find(ctx context.Context, collection string, filter map[string]string, limit int) ([][]byte, error) {
	stop := int64(-1)
	if len(filter) == 0 && limit > 0 {
		stop = int64(limit - 1)
	}
	ids, err := s.client.LRange(ctx, s.idsKey(collection), 0, stop).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, s.docKey(collection, id))
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	bodies := make([][]byte, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}
		bodies = append(bodies, []byte(raw))
	}
	return docfilter.Apply(bodies, filter, limit), nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Collections(ctx context.Context) ([]string, error) {
	names, err := s.client.SMembers(ctx, s.collectionsKey()).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	sort.Strings(names)
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (s *Store) Close() error {
	if !s.owned {
		return nil
	}
	return s.client.Close()
}

var _ ports.DocumentBackend = (*Store)(nil)
