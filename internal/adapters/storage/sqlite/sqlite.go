// Package sqlite is a story repository backed by SQLite through the pure-Go
// modernc.org/sqlite driver. Each story is one row; its pages, current page
// and selection are stored as a JSON document.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jsamuelsen11/story-editor/internal/adapters/storage/record"
	"github.com/jsamuelsen11/story-editor/internal/domain"
	"github.com/jsamuelsen11/story-editor/internal/domain/story"
	"github.com/jsamuelsen11/story-editor/internal/ports"
)

var _ ports.StoryRepository = (*Repository)(nil)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// timeLayout is fixed width so created_at sorts chronologically as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const schema = `
CREATE TABLE IF NOT EXISTS stories (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	version    INTEGER NOT NULL,
	document   TEXT NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_stories_created ON stories(created_at, id);
`

// Repository implements ports.StoryRepository on a *sql.DB.
type Repository struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the database at path and applies the
// schema.
func Open(ctx context.Context, path string) (*Repository, error) {
	dsn := path
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// SQLite serializes writers; a single connection also keeps a
	// ":memory:" database alive and shared.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return &Repository{db: db, now: time.Now}, nil
}

// Close releases the database.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Get implements ports.StoryRepository.
func (r *Repository) Get(ctx context.Context, id string) (*story.Story, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, version, document, created_at, updated_at FROM stories WHERE id = ?`, id)

	s, err := scanStory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("story %q: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading story %q: %w", id, err)
	}
	return s, nil
}

// List implements ports.StoryRepository.
func (r *Repository) List(ctx context.Context) ([]story.Story, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, version, document, created_at, updated_at FROM stories ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("listing stories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []story.Story
	for rows.Next() {
		s, err := scanStory(rows)
		if err != nil {
			return nil, fmt.Errorf("listing stories: %w", err)
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing stories: %w", err)
	}
	if out == nil {
		out = []story.Story{}
	}
	return out, nil
}

// Create implements ports.StoryRepository. A zero CreatedAt is stamped with
// the current time; a zero Version becomes 1. Create and Save both return the
// row as stored.
func (r *Repository) Create(ctx context.Context, s *story.Story) (*story.Story, error) {
	stored := s.Clone()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = r.now().UTC()
	}
	if stored.UpdatedAt.IsZero() {
		stored.UpdatedAt = stored.CreatedAt
	}
	if stored.Version == 0 {
		stored.Version = 1
	}

	doc, err := encodeDocument(stored)
	if err != nil {
		return nil, err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO stories (id, title, version, document, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		stored.ID, stored.Title, stored.Version, doc, formatTime(stored.CreatedAt), formatTime(stored.UpdatedAt))
	if isUniqueViolation(err) {
		return nil, fmt.Errorf("story %q already exists: %w", s.ID, domain.ErrConflict)
	}
	if err != nil {
		return nil, fmt.Errorf("inserting story %q: %w", s.ID, err)
	}
	return r.Get(ctx, s.ID)
}

// Save implements ports.StoryRepository. The version check and the write are
// a single conditional UPDATE.
func (r *Repository) Save(ctx context.Context, s *story.Story, expectedVersion int64) (*story.Story, error) {
	stored := s.Clone()
	stored.Version = expectedVersion + 1
	stored.UpdatedAt = r.now().UTC()

	doc, err := encodeDocument(stored)
	if err != nil {
		return nil, err
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE stories SET title = ?, version = ?, document = ?, updated_at = ? WHERE id = ? AND version = ?`,
		stored.Title, stored.Version, doc, formatTime(stored.UpdatedAt), stored.ID, expectedVersion)
	if err != nil {
		return nil, fmt.Errorf("updating story %q: %w", s.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("updating story %q: %w", s.ID, err)
	}
	if n == 0 {
		return nil, r.saveMiss(ctx, s.ID, expectedVersion)
	}

	return r.Get(ctx, s.ID)
}

// saveMiss explains why a conditional update touched no row.
func (r *Repository) saveMiss(ctx context.Context, id string, expectedVersion int64) error {
	var version int64
	err := r.db.QueryRowContext(ctx, `SELECT version FROM stories WHERE id = ?`, id).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("story %q: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("checking story %q version: %w", id, err)
	}
	return fmt.Errorf("story %q is at version %d, expected %d: %w", id, version, expectedVersion, domain.ErrConflict)
}

// Delete implements ports.StoryRepository.
func (r *Repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM stories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting story %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting story %q: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("story %q: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Name implements ports.HealthChecker.
func (r *Repository) Name() string {
	return "story-store"
}

// HealthCheck implements ports.HealthChecker by pinging the database.
func (r *Repository) HealthCheck(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("story-store: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStory(sc scanner) (*story.Story, error) {
	var (
		s                story.Story
		doc              string
		created, updated string
	)
	if err := sc.Scan(&s.ID, &s.Title, &s.Version, &doc, &created, &updated); err != nil {
		return nil, err
	}

	var d record.Document
	if err := json.Unmarshal([]byte(doc), &d); err != nil {
		return nil, fmt.Errorf("decoding document of story %q: %w", s.ID, err)
	}
	d.Apply(&s)

	var err error
	if s.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return nil, fmt.Errorf("parsing created_at of story %q: %w", s.ID, err)
	}
	if s.UpdatedAt, err = time.Parse(time.RFC3339Nano, updated); err != nil {
		return nil, fmt.Errorf("parsing updated_at of story %q: %w", s.ID, err)
	}
	return &s, nil
}

func encodeDocument(s *story.Story) (string, error) {
	b, err := json.Marshal(record.FromDocument(s))
	if err != nil {
		return "", fmt.Errorf("encoding document of story %q: %w", s.ID, err)
	}
	return string(b), nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func isUniqueViolation(err error) bool {
	var se *msqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY || se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}
