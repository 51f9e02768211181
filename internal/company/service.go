// Package company stores the summary row of every ingested company report
// in Postgres. The document and computed report themselves live in blob
// storage; a row only holds their refs and the headline numbers used for
// listing.
package company

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/esgbuddy/esgbuddy/pkg/esg"
	"github.com/esgbuddy/esgbuddy/pkg/scoring"
)

// Service provides company row management backed by Postgres.
type Service struct {
	db *sql.DB
}

// Row is one stored company report.
type Row struct {
	ID                   string    `json:"id"`
	ReportID             string    `json:"report_id"`
	CompanyID            string    `json:"company_id"`
	FiscalYear           int       `json:"fiscal_year"`
	DisplayName          string    `json:"display_name"`
	OverallScore         float64   `json:"overall_score"`
	CompletenessPct      float64   `json:"completeness_pct"`
	HasExternalAssurance bool      `json:"has_external_assurance"`
	DocumentRef          string    `json:"document_ref"`
	ReportRef            string    `json:"report_ref"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// NewService creates a new company Service.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// NewRow builds the summary row for a document and its computed report.
// ID and blob refs are left to the caller.
func NewRow(doc *esg.CompanyData, report *scoring.ComputedReport) Row {
	return Row{
		ReportID:             report.ReportRef.ReportID,
		CompanyID:            report.ReportRef.CompanyID,
		FiscalYear:           report.ReportRef.FiscalYear,
		DisplayName:          doc.DisplayName(),
		OverallScore:         report.OverallScore,
		CompletenessPct:      report.QA.CompletenessPct,
		HasExternalAssurance: report.QA.HasExternalAssurance,
	}
}

// Apply refreshes the summary fields of r from a rescored document.
func (r *Row) Apply(doc *esg.CompanyData, report *scoring.ComputedReport) {
	s := NewRow(doc, report)
	s.ID, s.DocumentRef, s.ReportRef = r.ID, r.DocumentRef, r.ReportRef
	s.CreatedAt, s.UpdatedAt = r.CreatedAt, r.UpdatedAt
	*r = s
}

const rowColumns = `id, report_id, company_id, fiscal_year, display_name,
	overall_score, completeness_pct, has_external_assurance,
	document_ref, report_ref, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRow(s scanner) (*Row, error) {
	r := &Row{}
	err := s.Scan(
		&r.ID, &r.ReportID, &r.CompanyID, &r.FiscalYear, &r.DisplayName,
		&r.OverallScore, &r.CompletenessPct, &r.HasExternalAssurance,
		&r.DocumentRef, &r.ReportRef, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ValidID reports whether id can name a row. Anything else is treated as
// not found rather than sent to Postgres.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Create inserts a row. r.ID must already be set.
func (s *Service) Create(ctx context.Context, r Row) (*Row, error) {
	row, err := scanRow(s.db.QueryRowContext(ctx,
		`INSERT INTO companies (id, report_id, company_id, fiscal_year, display_name,
		        overall_score, completeness_pct, has_external_assurance, document_ref, report_ref)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING `+rowColumns,
		r.ID, r.ReportID, r.CompanyID, r.FiscalYear, r.DisplayName,
		r.OverallScore, r.CompletenessPct, r.HasExternalAssurance, r.DocumentRef, r.ReportRef,
	))
	if err != nil {
		return nil, fmt.Errorf("create company %s: %w", r.CompanyID, err)
	}
	return row, nil
}

// Get returns a row by ID. Unknown IDs wrap sql.ErrNoRows.
func (s *Service) Get(ctx context.Context, id string) (*Row, error) {
	if !ValidID(id) {
		return nil, fmt.Errorf("get company %s: %w", id, sql.ErrNoRows)
	}
	row, err := scanRow(s.db.QueryRowContext(ctx,
		`SELECT `+rowColumns+` FROM companies WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get company %s: %w", id, err)
	}
	return row, nil
}

// List returns rows newest first, optionally only those with the given
// company_id.
func (s *Service) List(ctx context.Context, companyID string) ([]Row, error) {
	query := `SELECT ` + rowColumns + ` FROM companies`
	var args []any
	if companyID != "" {
		query += ` WHERE company_id = $1`
		args = append(args, companyID)
	}
	query += ` ORDER BY fiscal_year DESC, created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	out := []Row{}
	for rows.Next() {
		r, err := scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

// Update rewrites the summary columns and refs of an existing row.
func (s *Service) Update(ctx context.Context, r Row) (*Row, error) {
	if !ValidID(r.ID) {
		return nil, fmt.Errorf("update company %s: %w", r.ID, sql.ErrNoRows)
	}
	row, err := scanRow(s.db.QueryRowContext(ctx,
		`UPDATE companies
		    SET report_id = $2, company_id = $3, fiscal_year = $4, display_name = $5,
		        overall_score = $6, completeness_pct = $7, has_external_assurance = $8,
		        document_ref = $9, report_ref = $10, updated_at = now()
		  WHERE id = $1
		 RETURNING `+rowColumns,
		r.ID, r.ReportID, r.CompanyID, r.FiscalYear, r.DisplayName,
		r.OverallScore, r.CompletenessPct, r.HasExternalAssurance, r.DocumentRef, r.ReportRef,
	))
	if err != nil {
		return nil, fmt.Errorf("update company %s: %w", r.ID, err)
	}
	return row, nil
}

// Delete removes a row. Unknown IDs wrap sql.ErrNoRows.
func (s *Service) Delete(ctx context.Context, id string) error {
	if !ValidID(id) {
		return fmt.Errorf("delete company %s: %w", id, sql.ErrNoRows)
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete company %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("delete company %s: %w", id, sql.ErrNoRows)
	}
	return nil
}
