package company

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/esgbuddy/esgbuddy/pkg/esg"
	"github.com/esgbuddy/esgbuddy/pkg/scoring"
)

func TestNewService(t *testing.T) {
	// NewService should not panic with nil db (it just stores the reference).
	svc := NewService(nil)
	if svc == nil {
		t.Fatal("NewService returned nil")
	}
}

func TestNewRow(t *testing.T) {
	doc := &esg.CompanyData{
		ReportMetadata: esg.ReportMetadata{CompanyID: "IT-1"},
		CompanyProfile: &esg.CompanyProfile{
			BasicInformation: esg.BasicInformation{LegalName: "Acme S.p.A."},
		},
	}
	report := &scoring.ComputedReport{
		ReportRef:    scoring.ReportRef{ReportID: "R-1", CompanyID: "IT-1", FiscalYear: 2024},
		OverallScore: 71.3,
		QA:           scoring.QAMetrics{CompletenessPct: 88.7, HasExternalAssurance: true},
	}

	r := NewRow(doc, report)
	if r.ReportID != "R-1" || r.CompanyID != "IT-1" || r.FiscalYear != 2024 {
		t.Errorf("identity fields = %+v", r)
	}
	if r.DisplayName != "Acme S.p.A." {
		t.Errorf("DisplayName = %q, want legal name fallback", r.DisplayName)
	}
	if r.OverallScore != 71.3 || r.CompletenessPct != 88.7 || !r.HasExternalAssurance {
		t.Errorf("summary fields = %+v", r)
	}
	if r.ID != "" || r.DocumentRef != "" {
		t.Error("NewRow should leave ID and refs empty")
	}
}

func TestRowApplyKeepsIdentity(t *testing.T) {
	r := Row{ID: "id-1", DocumentRef: "doc", ReportRef: "rep", OverallScore: 10}
	r.Apply(&esg.CompanyData{ReportMetadata: esg.ReportMetadata{CompanyID: "IT-2"}}, &scoring.ComputedReport{
		ReportRef:    scoring.ReportRef{CompanyID: "IT-2"},
		OverallScore: 55.5,
	})

	if r.ID != "id-1" || r.DocumentRef != "doc" || r.ReportRef != "rep" {
		t.Errorf("identity lost: %+v", r)
	}
	if r.OverallScore != 55.5 || r.DisplayName != "IT-2" {
		t.Errorf("summary not applied: %+v", r)
	}
}

func TestValidID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"6f1c2e1a-8f57-4b8e-9a43-2b1f0c7d9e11", true},
		{"not-a-uuid", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := ValidID(tc.id); got != tc.want {
			t.Errorf("ValidID(%q) = %v, want %v", tc.id, got, tc.want)
		}
	}
}

func TestInvalidIDIsNotFound(t *testing.T) {
	// Invalid IDs are rejected before the database is touched, so a nil db
	// is fine here.
	svc := NewService(nil)
	ctx := context.Background()

	if _, err := svc.Get(ctx, "bogus"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Get: expected sql.ErrNoRows, got %v", err)
	}
	if _, err := svc.Update(ctx, Row{ID: "bogus"}); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Update: expected sql.ErrNoRows, got %v", err)
	}
	if err := svc.Delete(ctx, "bogus"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Delete: expected sql.ErrNoRows, got %v", err)
	}
}
