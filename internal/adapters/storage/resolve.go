package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/freedaiy/intake/internal/adapters/dynamostore"
	"github.com/freedaiy/intake/internal/adapters/fallback"
	"github.com/freedaiy/intake/internal/adapters/redisstore"
	"github.com/freedaiy/intake/internal/adapters/sqlstore"
	"github.com/freedaiy/intake/internal/app/ports"
	"github.com/freedaiy/intake/internal/config"
)

const defaultStoreName = "intake"

var (
	// ErrStoreNotConfigured means DATABASE_URL is empty.
	ErrStoreNotConfigured = errors.New("store not configured")
	// ErrUnsupportedScheme means DATABASE_URL names no known backend.
	ErrUnsupportedScheme = errors.New("unsupported store scheme")
)

// Resolve chooses the document store once at startup. A disabled or
// unconfigured store, or one that cannot be opened, yields the fallback
// adapter; open failures are kept in the resolution's Err.
func Resolve(ctx context.Context, cfg config.StoreConfig, opts Options) ports.StoreResolution {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = cfg.StoreTimeout()
	}

	if cfg.Disabled {
		log.InfoContext(ctx, "document store disabled, using fallback")
		return fallbackResolution(nil)
	}
	if cfg.URL == "" {
		log.WarnContext(ctx, "no document store configured, using fallback")
		return fallbackResolution(nil)
	}

	openCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	backend, err := OpenBackend(openCtx, cfg.URL, cfg.Name)
	if err != nil {
		log.ErrorContext(ctx, "document store unavailable, using fallback", "err", err)
		return fallbackResolution(err)
	}

	log.InfoContext(ctx, "document store connected", "backend", backend.Name())
	return ports.StoreResolution{
		Store:   New(backend, opts),
		Backend: backend.Name(),
		Live:    true,
	}
}

func fallbackResolution(err error) ports.StoreResolution {
	return ports.StoreResolution{
		Store:   fallback.New(),
		Backend: fallback.BackendName,
		Err:     err,
	}
}

// OpenBackend opens and pings the backend named by rawURL's scheme. name is
// the database, key prefix or table inside it.
func OpenBackend(ctx context.Context, rawURL, name string) (ports.DocumentBackend, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, ErrStoreNotConfigured
	}
	name = strings.TrimSpace(name)

	if path, ok := strings.CutPrefix(rawURL, "file:"); ok {
		return asBackend(sqlstore.OpenSQLite(ctx, strings.TrimSuffix(path, ".sqlite")))
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse store url: %w", err)
	}

	switch strings.ToLower(parsed.Scheme) {
	case "sqlite":
		return openSQLite(ctx, parsed, name)
	case "postgres", "postgresql":
		if name != "" {
			parsed.Path = "/" + name
		}
		return asBackend(sqlstore.OpenPostgres(ctx, parsed.String()))
	case "redis", "rediss":
		return asBackend(redisstore.Open(ctx, rawURL, name))
	case "dynamodb":
		return asBackend(dynamostore.Open(ctx, rawURL, name))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, parsed.Scheme)
	}
}

// openSQLite treats sqlite://<dir> as the directory holding <name>.sqlite.
func openSQLite(ctx context.Context, parsed *url.URL, name string) (ports.DocumentBackend, error) {
	dir := filepath.Join(parsed.Host, parsed.Path)
	if dir == "" {
		dir = "data"
	}
	if name == "" {
		name = defaultStoreName
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create sqlite directory: %w", err)
	}
	return asBackend(sqlstore.OpenSQLite(ctx, filepath.Join(dir, name)))
}

// asBackend keeps a typed nil out of the interface on failure.
func asBackend[T ports.DocumentBackend](backend T, err error) (ports.DocumentBackend, error) {
	if err != nil {
		return nil, err
	}
	return backend, nil
}
