package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store owns the SQLite connection pool backing the user table.
// Open only establishes the connection; Init brings the schema up to date.
// Keeping the two apart gives filesystem failures and schema failures
// their own error channels.
type Store struct {
	db   *sql.DB
	path string
}

// memoryPaths are DSNs that have no backing file and need no parent directory.
var memoryPaths = map[string]bool{
	":memory:":                   true,
	"file::memory:?cache=shared": true,
}

// Open opens (or creates) the database file at path, creating missing
// parent directories first. maxOpen/maxIdle/maxLife tune the pool.
func Open(path string, maxOpen, maxIdle int, maxLife time.Duration) (*Store, error) {
	if !memoryPaths[path] {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create data directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %s: %w", path, err)
	}
	if maxOpen > 0 {
		db.SetMaxOpenConns(maxOpen)
	}
	if maxIdle > 0 {
		db.SetMaxIdleConns(maxIdle)
	}
	if maxLife > 0 {
		db.SetConnMaxLifetime(maxLife)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite at %s: %w", path, err)
	}

	return &Store{db: db, path: path}, nil
}

// Init applies the embedded migrations. Safe to call repeatedly; an
// up-to-date schema is not an error.
func (s *Store) Init(ctx context.Context) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	driver, err := migratesqlite.WithInstance(s.db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("migrator: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// Path returns the location the store was opened at.
func (s *Store) Path() string { return s.path }

// DB exposes the underlying pool for the repository implementation.
func (s *Store) DB() *sql.DB { return s.db }

// Close closes all pooled connections.
func (s *Store) Close() error { return s.db.Close() }
