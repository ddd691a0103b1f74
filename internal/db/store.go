package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/baharkarakas/calc-backend/internal/repository"
	"github.com/baharkarakas/calc-backend/internal/repository/postgres"
	"github.com/baharkarakas/calc-backend/internal/repository/sqlite"
)

var ErrUnsupportedURL = errors.New("unsupported database url")

// Store owns the backing connection pool and the repositories built on it.
// It is opened once at startup and closed at shutdown.
type Store struct {
	Repos   repository.Repositories
	Dialect string
	close   func()
}

type Options struct {
	Migrate  bool
	MaxConns int32
}

// Open selects the backend from the url scheme: postgres:// and postgresql://
// use pgx, sqlite://<path>, file:<path> and :memory: use the embedded SQLite driver.
func Open(ctx context.Context, url string, opts Options) (*Store, error) {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		pool, err := NewPool(ctx, url, opts.MaxConns)
		if err != nil {
			return nil, fmt.Errorf("postgres connect: %w", err)
		}
		if opts.Migrate {
			if err := RunMigrations(ctx, pool); err != nil {
				pool.Close()
				return nil, fmt.Errorf("postgres migrations: %w", err)
			}
		}
		return &Store{Repos: postgres.NewRepositories(pool), Dialect: "postgres", close: pool.Close}, nil

	case strings.HasPrefix(url, "sqlite://"), strings.HasPrefix(url, "file:"), url == ":memory:":
		path := strings.TrimPrefix(url, "sqlite://")
		conn, err := NewSQLite(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("sqlite connect: %w", err)
		}
		if opts.Migrate {
			if err := RunSQLiteMigrations(ctx, conn); err != nil {
				conn.Close()
				return nil, fmt.Errorf("sqlite migrations: %w", err)
			}
		}
		return &Store{Repos: sqlite.NewRepositories(conn), Dialect: "sqlite", close: func() { _ = conn.Close() }}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedURL, redact(url))
}

func (s *Store) Close() {
	if s != nil && s.close != nil {
		s.close()
	}
}

// redact hides the password of a url before it reaches an error message.
func redact(url string) string {
	scheme, rest, ok := strings.Cut(url, "://")
	if !ok {
		return url
	}
	creds, host, ok := strings.Cut(rest, "@")
	if !ok {
		return url
	}
	user, _, _ := strings.Cut(creds, ":")
	return scheme + "://" + user + ":***@" + host
}
