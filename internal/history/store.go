// Package history persists dialog invocations in a SQLite database so users
// can review what zd ran and what came back.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/dialog-tools/zenity/internal/history/migrations"
)

// Store wraps a SQLite connection holding invocation records.
type Store struct {
	db   *sql.DB
	path string
}

// New opens the database at path and runs pending migrations.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// NewWithDB creates a Store from an existing connection. Useful for tests
// with pre-configured databases.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db, path: ""}
}

// DB returns the underlying database connection.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func setDBPermissions(path string) {
	if path == ":memory:" {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

// Insert stores one invocation record.
func (s *Store) Insert(r Record) error {
	var content sql.NullString
	if r.Content != nil {
		content = sql.NullString{String: *r.Content, Valid: true}
	}

	_, err := s.db.Exec(
		`INSERT INTO invocations
		 (id, kind, title, command, response, content, exit_code, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID.String(),
		r.Kind,
		r.Title,
		r.Command,
		r.Response,
		content,
		r.ExitCode,
		r.CreatedAt.Format(time.RFC3339),
	)
	return err
}

// List returns records matching the filter, newest first.
func (s *Store) List(filter Filter) ([]Record, error) {
	base := `
		SELECT id, kind, title, command, response, content, exit_code, created_at
		FROM invocations
	`

	var (
		clauses []string
		args    []any
	)

	if filter.Kind != "" {
		clauses = append(clauses, "kind = ?")
		args = append(args, filter.Kind)
	}

	if filter.Response != "" {
		clauses = append(clauses, "response = ?")
		args = append(args, filter.Response)
	}

	if filter.Since != nil {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, filter.Since.Format(time.RFC3339))
	}

	query := base
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY created_at DESC, id DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record

	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

// Get returns a single record by id.
func (s *Store) Get(id uuid.UUID) (Record, error) {
	row := s.db.QueryRow(
		`SELECT id, kind, title, command, response, content, exit_code, created_at
		 FROM invocations WHERE id = ?`,
		id.String(),
	)
	return scanRecord(row)
}

// Count returns the number of stored records.
func (s *Store) Count() (int64, error) {
	var n int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM invocations").Scan(&n)
	return n, err
}

// Clear removes all records and returns how many were deleted.
func (s *Store) Clear() (int64, error) {
	result, err := s.db.Exec("DELETE FROM invocations")
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Prune deletes the oldest records beyond limit. It returns how many were
// removed.
func (s *Store) Prune(limit int) (int64, error) {
	if limit <= 0 {
		return 0, nil
	}

	result, err := s.db.Exec(
		`DELETE FROM invocations WHERE id NOT IN (
			SELECT id FROM invocations
			ORDER BY created_at DESC, id DESC
			LIMIT ?
		)`,
		limit,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var (
		r       Record
		rawID   string
		content sql.NullString
		ts      string
	)

	if err := row.Scan(
		&rawID,
		&r.Kind,
		&r.Title,
		&r.Command,
		&r.Response,
		&content,
		&r.ExitCode,
		&ts,
	); err != nil {
		return Record{}, err
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return Record{}, fmt.Errorf("parse record id: %w", err)
	}
	r.ID = id

	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return Record{}, fmt.Errorf("parse record timestamp: %w", err)
	}
	r.CreatedAt = t

	if content.Valid {
		r.Content = &content.String
	}

	return r, nil
}
