// Package history keeps a local SQLite log of reports computed by the CLI,
// so past runs can be listed and re-displayed without recomputing.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/esgbuddy/esgbuddy/pkg/scoring"
)

// DefaultLimit caps List when no limit is given.
const DefaultLimit = 20

// ErrNotFound is returned by Get for an unknown entry.
var ErrNotFound = errors.New("history entry not found")

// Entry is one recorded computation. Report is only populated by Get.
type Entry struct {
	ID              int64                   `json:"id"`
	ReportID        string                  `json:"report_id"`
	CompanyID       string                  `json:"company_id"`
	FiscalYear      int                     `json:"fiscal_year"`
	DisplayName     string                  `json:"display_name"`
	Source          string                  `json:"source"`
	OverallScore    float64                 `json:"overall_score"`
	CompletenessPct float64                 `json:"completeness_pct"`
	CreatedAt       string                  `json:"created_at"`
	Report          *scoring.ComputedReport `json:"report,omitempty"`
}

// ListOptions filters List.
type ListOptions struct {
	CompanyID string
	Limit     int
}

// Store is a SQLite-backed history log.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("history: create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("history: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS reports (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			report_id        TEXT NOT NULL,
			company_id       TEXT NOT NULL,
			fiscal_year      INTEGER NOT NULL,
			display_name     TEXT NOT NULL DEFAULT '',
			source           TEXT NOT NULL DEFAULT '',
			overall_score    REAL NOT NULL,
			completeness_pct REAL NOT NULL,
			report_json      TEXT NOT NULL,
			created_at       TEXT NOT NULL DEFAULT (datetime('now'))
		);
		CREATE INDEX IF NOT EXISTS idx_reports_company ON reports(company_id, id);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("history: migrate: %w", err)
	}
	return nil
}

// Record stores a computed report and returns its entry ID. source names
// where the input came from, e.g. a file path.
func (s *Store) Record(ctx context.Context, source, displayName string, report *scoring.ComputedReport) (int64, error) {
	data, err := json.Marshal(report)
	if err != nil {
		return 0, fmt.Errorf("history: marshal report: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO reports (report_id, company_id, fiscal_year, display_name, source,
		                      overall_score, completeness_pct, report_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		report.ReportRef.ReportID, report.ReportRef.CompanyID, report.ReportRef.FiscalYear,
		displayName, source, report.OverallScore, report.QA.CompletenessPct, string(data),
	)
	if err != nil {
		return 0, fmt.Errorf("history: record: %w", err)
	}
	return res.LastInsertId()
}

// List returns entries newest first.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]Entry, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	query := `SELECT id, report_id, company_id, fiscal_year, display_name, source,
	                 overall_score, completeness_pct, created_at
	            FROM reports`
	var args []any
	if opts.CompanyID != "" {
		query += ` WHERE company_id = ?`
		args = append(args, opts.CompanyID)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("history: list: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.ReportID, &e.CompanyID, &e.FiscalYear, &e.DisplayName, &e.Source,
			&e.OverallScore, &e.CompletenessPct, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Get returns one entry with its full report.
func (s *Store) Get(ctx context.Context, id int64) (*Entry, error) {
	var (
		e   Entry
		raw string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, report_id, company_id, fiscal_year, display_name, source,
		        overall_score, completeness_pct, created_at, report_json
		   FROM reports WHERE id = ?`, id,
	).Scan(&e.ID, &e.ReportID, &e.CompanyID, &e.FiscalYear, &e.DisplayName, &e.Source,
		&e.OverallScore, &e.CompletenessPct, &e.CreatedAt, &raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("history: entry %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("history: get %d: %w", id, err)
	}

	e.Report = &scoring.ComputedReport{}
	if err := json.Unmarshal([]byte(raw), e.Report); err != nil {
		return nil, fmt.Errorf("history: decode report %d: %w", id, err)
	}
	return &e, nil
}
