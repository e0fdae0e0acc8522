// Package store persists gallery projects and status checks in SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/orrerylabs/orrery/internal/gallery"
)

const schema = `
CREATE TABLE IF NOT EXISTS projects (
	id           TEXT PRIMARY KEY,
	title        TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT '',
	tech_stack   TEXT NOT NULL DEFAULT '[]',
	image_url    TEXT NOT NULL DEFAULT '',
	demo_url     TEXT NOT NULL DEFAULT '',
	github_url   TEXT NOT NULL DEFAULT '',
	category     TEXT NOT NULL DEFAULT '',
	created_date INTEGER NOT NULL,
	featured     INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS status_checks (
	id          TEXT PRIMARY KEY,
	client_name TEXT NOT NULL,
	timestamp   INTEGER NOT NULL
);
`

// Store is the SQLite-backed project store.
type Store struct {
	db *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens the store at path and ensures the schema. ":memory:" opens
// an ephemeral store, used by tests and the viewer.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := path
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// CreateProject inserts one project record.
func (s *Store) CreateProject(ctx context.Context, p gallery.Project) error {
	if err := p.Validate(); err != nil {
		return err
	}
	stack, err := json.Marshal(p.TechStack)
	if err != nil {
		return fmt.Errorf("encode tech stack: %w", err)
	}
	created := p.CreatedDate
	if created.IsZero() {
		created = time.Now().UTC()
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO projects (
		   id, title, description, tech_stack, image_url,
		   demo_url, github_url, category, created_date, featured
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Description, string(stack), p.ImageURL,
		p.DemoURL, p.GithubURL, p.Category, toMillis(created), boolToInt(p.Featured),
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetProject returns one project by ID.
func (s *Store) GetProject(ctx context.Context, id string) (gallery.Project, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, description, tech_stack, image_url,
		        demo_url, github_url, category, created_date, featured
		   FROM projects WHERE id = ?`, id)

	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return gallery.Project{}, gallery.ErrProjectNotFound
	}
	if err != nil {
		return gallery.Project{}, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

// ListProjects returns all projects ordered by creation time.
func (s *Store) ListProjects(ctx context.Context) ([]gallery.Project, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, description, tech_stack, image_url,
		        demo_url, github_url, category, created_date, featured
		   FROM projects ORDER BY created_date, id`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []gallery.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// DeleteProject removes one project by ID.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if n == 0 {
		return gallery.ErrProjectNotFound
	}
	return nil
}

// ReplaceAllProjects clears the table and inserts the given records in
// one transaction. Used by the sample endpoint and the seed-file import.
func (s *Store) ReplaceAllProjects(ctx context.Context, projects []gallery.Project) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM projects`); err != nil {
		return fmt.Errorf("clear projects: %w", err)
	}
	for _, p := range projects {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("project %q: %w", p.Title, err)
		}
		stack, err := json.Marshal(p.TechStack)
		if err != nil {
			return fmt.Errorf("encode tech stack: %w", err)
		}
		created := p.CreatedDate
		if created.IsZero() {
			created = time.Now().UTC()
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO projects (
			   id, title, description, tech_stack, image_url,
			   demo_url, github_url, category, created_date, featured
			 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Title, p.Description, string(stack), p.ImageURL,
			p.DemoURL, p.GithubURL, p.Category, toMillis(created), boolToInt(p.Featured),
		); err != nil {
			return fmt.Errorf("insert project %q: %w", p.Title, err)
		}
	}
	return tx.Commit()
}

// CountProjects returns the number of stored projects.
func (s *Store) CountProjects(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return n, nil
}

// CreateStatusCheck records a client liveness ping.
func (s *Store) CreateStatusCheck(ctx context.Context, sc gallery.StatusCheck) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO status_checks (id, client_name, timestamp) VALUES (?, ?, ?)`,
		sc.ID, sc.ClientName, toMillis(sc.Timestamp))
	if err != nil {
		return fmt.Errorf("insert status check: %w", err)
	}
	return nil
}

// ListStatusChecks returns up to limit recent status checks, newest first.
func (s *Store) ListStatusChecks(ctx context.Context, limit int) ([]gallery.StatusCheck, error) {
	if limit <= 0 {
		limit = 1000
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, client_name, timestamp FROM status_checks
		  ORDER BY timestamp DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list status checks: %w", err)
	}
	defer rows.Close()

	var checks []gallery.StatusCheck
	for rows.Next() {
		var sc gallery.StatusCheck
		var ts int64
		if err := rows.Scan(&sc.ID, &sc.ClientName, &ts); err != nil {
			return nil, fmt.Errorf("scan status check: %w", err)
		}
		sc.Timestamp = fromMillis(ts)
		checks = append(checks, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list status checks: %w", err)
	}
	return checks, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (gallery.Project, error) {
	var p gallery.Project
	var stack string
	var created int64
	var featured int

	err := row.Scan(&p.ID, &p.Title, &p.Description, &stack, &p.ImageURL,
		&p.DemoURL, &p.GithubURL, &p.Category, &created, &featured)
	if err != nil {
		return gallery.Project{}, err
	}
	if err := json.Unmarshal([]byte(stack), &p.TechStack); err != nil {
		return gallery.Project{}, fmt.Errorf("decode tech stack: %w", err)
	}
	p.CreatedDate = fromMillis(created)
	p.Featured = featured != 0
	return p, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
