// Package store persists the core's records — mastery, learning rates,
// ability, roll-ups, content hierarchy, candidate items, and the attempt
// event log — in SQLite through ent.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/pygrounds/adaptive/ent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the ent client and provides access to repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
	seq    *sequenceCounter
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and runs auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		client.Close()
		return nil, err
	}

	return &Store{db: db, client: client, seq: seq}, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// Mastery returns the mastery-record repository.
func (s *Store) Mastery() MasteryRepo {
	return &masteryRepo{client: s.client}
}

// LearnRates returns the learning-rate repository.
func (s *Store) LearnRates() LearnRateRepo {
	return &learnRateRepo{client: s.client}
}

// Abilities returns the ability-score repository.
func (s *Store) Abilities() AbilityRepo {
	return &abilityRepo{client: s.client}
}

// Rollups returns the topic/zone roll-up repository.
func (s *Store) Rollups() RollupRepo {
	return &rollupRepo{client: s.client}
}

// Hierarchy returns the content-hierarchy repository.
func (s *Store) Hierarchy() HierarchyRepo {
	return &hierarchyRepo{client: s.client}
}

// Items returns the candidate-item repository.
func (s *Store) Items() ItemRepo {
	return &itemRepo{client: s.client}
}

// Events returns the attempt-event repository.
func (s *Store) Events() EventRepo {
	return &eventRepo{client: s.client, seq: s.seq}
}

// applyPragmas configures SQLite for low-contention service use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. PYGROUNDS_DB environment variable
// 2. $XDG_DATA_HOME/pygrounds/adaptive.db
// 3. ~/.local/share/pygrounds/adaptive.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("PYGROUNDS_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "pygrounds", "adaptive.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
