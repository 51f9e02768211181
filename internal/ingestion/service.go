// Package ingestion scores incoming company documents and persists them:
// the input document and its computed report go to blob storage, and a
// summary row goes to Postgres.
package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/esgbuddy/esgbuddy/internal/company"
	"github.com/esgbuddy/esgbuddy/pkg/esg"
	"github.com/esgbuddy/esgbuddy/pkg/scoring"
)

// Scorer abstracts the scoring engine so the ingestion package does not
// depend on a concrete implementation.
type Scorer interface {
	Compute(doc *esg.CompanyData) (*scoring.ComputedReport, error)
}

// Companies is the subset of company.Service used here.
type Companies interface {
	Create(ctx context.Context, r company.Row) (*company.Row, error)
	Get(ctx context.Context, id string) (*company.Row, error)
	List(ctx context.Context, companyID string) ([]company.Row, error)
	Update(ctx context.Context, r company.Row) (*company.Row, error)
	Delete(ctx context.Context, id string) error
}

// CompanyDocument is a stored input document together with its computed
// report.
type CompanyDocument struct {
	ID string `json:"id"`
	esg.CompanyData
	Report    *scoring.ComputedReport `json:"report"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// RescoreResult counts the outcome of a rescore run.
type RescoreResult struct {
	Rescored int `json:"rescored"`
	Errors   int `json:"errors"`
}

// Service runs the ingest pipeline.
type Service struct {
	companies Companies
	storage   StorageClient
	scorer    Scorer
}

// NewService creates a new ingestion Service.
func NewService(companies Companies, storage StorageClient, scorer Scorer) *Service {
	return &Service{
		companies: companies,
		storage:   storage,
		scorer:    scorer,
	}
}

// Storage returns the blob storage client.
func (s *Service) Storage() StorageClient {
	return s.storage
}

// Ingest scores a document and stores it under a new ID. Invalid documents
// are rejected before anything is written.
func (s *Service) Ingest(ctx context.Context, doc *esg.CompanyData) (*CompanyDocument, error) {
	report, err := s.scorer.Compute(doc)
	if err != nil {
		return nil, fmt.Errorf("score document: %w", err)
	}

	id := uuid.NewString()
	if err := s.putBlobs(ctx, id, doc, report); err != nil {
		return nil, err
	}

	row := company.NewRow(doc, report)
	row.ID = id
	row.DocumentRef = BlobRef(KindDocument, id)
	row.ReportRef = BlobRef(KindReport, id)

	created, err := s.companies.Create(ctx, row)
	if err != nil {
		if delErr := s.storage.Delete(ctx, id); delErr != nil {
			log.Printf("ingest %s: cleanup blobs: %v", id, delErr)
		}
		return nil, fmt.Errorf("store company: %w", err)
	}

	log.Printf("ingested %s (%s FY%d): overall %.1f", id, created.CompanyID, created.FiscalYear, report.OverallScore)
	return newCompanyDocument(created, doc, report), nil
}

// Update replaces the document stored under id and rescores it.
func (s *Service) Update(ctx context.Context, id string, doc *esg.CompanyData) (*CompanyDocument, error) {
	row, err := s.companies.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	report, err := s.scorer.Compute(doc)
	if err != nil {
		return nil, fmt.Errorf("score document: %w", err)
	}
	if err := s.putBlobs(ctx, id, doc, report); err != nil {
		return nil, err
	}

	row.Apply(doc, report)
	updated, err := s.companies.Update(ctx, *row)
	if err != nil {
		return nil, err
	}
	return newCompanyDocument(updated, doc, report), nil
}

// Get loads a stored company document and its report.
func (s *Service) Get(ctx context.Context, id string) (*CompanyDocument, error) {
	row, err := s.companies.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	doc, err := s.loadDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	report, err := s.loadReport(ctx, id)
	if err != nil {
		return nil, err
	}
	return newCompanyDocument(row, doc, report), nil
}

// Report loads the computed report stored under id.
func (s *Service) Report(ctx context.Context, id string) (*scoring.ComputedReport, error) {
	if _, err := s.companies.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.loadReport(ctx, id)
}

// List returns summary rows, optionally filtered by company_id.
func (s *Service) List(ctx context.Context, companyID string) ([]company.Row, error) {
	return s.companies.List(ctx, companyID)
}

// Delete removes a company row and its blobs.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.companies.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, id); err != nil {
		log.Printf("delete %s: remove blobs: %v", id, err)
	}
	return nil
}

// Clear deletes every stored company and returns how many were removed.
func (s *Service) Clear(ctx context.Context) (int, error) {
	rows, err := s.companies.List(ctx, "")
	if err != nil {
		return 0, err
	}
	for i, r := range rows {
		if err := s.Delete(ctx, r.ID); err != nil {
			return i, fmt.Errorf("clear companies: %w", err)
		}
	}
	return len(rows), nil
}

// Rescore recomputes the report of every stored document, or only those
// with the given company_id. Per-document failures are logged and counted.
func (s *Service) Rescore(ctx context.Context, companyID string) (RescoreResult, error) {
	var res RescoreResult

	rows, err := s.companies.List(ctx, companyID)
	if err != nil {
		return res, err
	}

	for _, row := range rows {
		doc, err := s.loadDocument(ctx, row.ID)
		if err != nil {
			log.Printf("rescore %s: %v", row.ID, err)
			res.Errors++
			continue
		}
		report, err := s.scorer.Compute(doc)
		if err != nil {
			log.Printf("rescore %s: score: %v", row.ID, err)
			res.Errors++
			continue
		}
		if err := s.putReport(ctx, row.ID, report); err != nil {
			log.Printf("rescore %s: %v", row.ID, err)
			res.Errors++
			continue
		}
		row.Apply(doc, report)
		if _, err := s.companies.Update(ctx, row); err != nil {
			log.Printf("rescore %s: update: %v", row.ID, err)
			res.Errors++
			continue
		}
		res.Rescored++
	}

	return res, nil
}

func newCompanyDocument(row *company.Row, doc *esg.CompanyData, report *scoring.ComputedReport) *CompanyDocument {
	return &CompanyDocument{
		ID:          row.ID,
		CompanyData: *doc,
		Report:      report,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func (s *Service) putBlobs(ctx context.Context, id string, doc *esg.CompanyData, report *scoring.ComputedReport) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if err := s.storage.PutDocument(ctx, id, data); err != nil {
		return fmt.Errorf("store document: %w", err)
	}
	return s.putReport(ctx, id, report)
}

func (s *Service) putReport(ctx context.Context, id string, report *scoring.ComputedReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := s.storage.PutReport(ctx, id, data); err != nil {
		return fmt.Errorf("store report: %w", err)
	}
	return nil
}

func (s *Service) loadDocument(ctx context.Context, id string) (*esg.CompanyData, error) {
	data, err := s.storage.GetDocument(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	var doc esg.CompanyData
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	return &doc, nil
}

func (s *Service) loadReport(ctx context.Context, id string) (*scoring.ComputedReport, error) {
	data, err := s.storage.GetReport(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load report: %w", err)
	}
	var report scoring.ComputedReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	return &report, nil
}
