// Package sqlite provides a SQLite-backed corpus store. It is the
// hardened alternative to reading the JSONL file on every start: the
// corpus is imported once and served from the database afterwards.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/vedanta-labs/vichara-cli/internal/adapters/driven/corpus/sqlite/migrations"
	"github.com/vedanta-labs/vichara-cli/internal/core/domain"
	"github.com/vedanta-labs/vichara-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.CorpusStore = (*Store)(nil)

// Store is a SQLite-based corpus store. Passage order is preserved
// through an explicit position column, since position is the
// correlation key the similarity index depends on.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (or creates) the corpus database in dataDir.
// If dataDir is empty, defaults to ~/.vichara/data/corpus.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".vichara", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "corpus.db")

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// All returns every passage ordered by position.
func (s *Store) All(ctx context.Context) ([]domain.Passage, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT passage_id, source, themes, passage
		FROM passages
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying passages: %w", err)
	}
	defer rows.Close()

	var passages []domain.Passage
	for rows.Next() {
		var p domain.Passage
		var themesJSON string
		if err := rows.Scan(&p.ID, &p.Source, &themesJSON, &p.Text); err != nil {
			return nil, fmt.Errorf("scanning passage: %w", err)
		}
		if err := json.Unmarshal([]byte(themesJSON), &p.Themes); err != nil {
			return nil, fmt.Errorf("decoding themes: %w", err)
		}
		passages = append(passages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating passages: %w", err)
	}

	return passages, nil
}

// Count returns the number of stored passages.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	row := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM passages")
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting passages: %w", err)
	}
	return count, nil
}

// Replace atomically swaps the stored corpus for the given passages,
// preserving their order. Used by `vichara corpus import`.
func (s *Store) Replace(ctx context.Context, passages []domain.Passage) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM passages"); err != nil {
		return fmt.Errorf("clearing passages: %w", err)
	}

	for i, p := range passages {
		themesJSON, err := json.Marshal(p.Themes)
		if err != nil {
			return fmt.Errorf("encoding themes: %w", err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO passages (record_key, position, passage_id, source, themes, passage)
			VALUES (?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), i, p.ID, p.Source, string(themesJSON), p.Text)
		if err != nil {
			return fmt.Errorf("inserting passage %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}
	return nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
