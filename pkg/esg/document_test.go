package esg_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/esgbuddy/esgbuddy/pkg/esg"
)

const samplePath = "../../internal/seed/data/company_data.json"

func TestLoadDocument(t *testing.T) {
	doc, err := esg.LoadDocument(samplePath)
	if err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}

	if doc.ReportMetadata.ReportID != "ESG-2024-DEMO-001" {
		t.Errorf("ReportID = %q", doc.ReportMetadata.ReportID)
	}
	if doc.AnnualRevenue() != 52_000_000 {
		t.Errorf("AnnualRevenue = %v", doc.AnnualRevenue())
	}
	if doc.TotalEmployees() != 410 {
		t.Errorf("TotalEmployees = %v", doc.TotalEmployees())
	}
	if doc.DisplayName() != "DemoCo" {
		t.Errorf("DisplayName = %q", doc.DisplayName())
	}
	if got := len(doc.Materiality.MaterialTopics); got != 11 {
		t.Errorf("material topics = %d, want 11", got)
	}
	if got := len(doc.Topics.Blocks()); got != 12 {
		t.Errorf("blocks = %d, want 12", got)
	}
	if err := doc.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestDecodeDocumentRejectsUnknownFields(t *testing.T) {
	_, err := esg.DecodeDocument(strings.NewReader(`{"report_metadata":{},"unexpected":1}`))
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestDecodeDocumentRejectsTrailingData(t *testing.T) {
	_, err := esg.DecodeDocument(strings.NewReader(`{} {}`))
	if err == nil {
		t.Fatal("expected error for trailing data")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*esg.CompanyData)
		path   string
	}{
		{"materiality", func(d *esg.CompanyData) { d.Materiality = nil }, "materiality"},
		{"topics", func(d *esg.CompanyData) { d.Topics = nil }, "topics"},
		{"social", func(d *esg.CompanyData) { d.Topics.Social = nil }, "topics.social"},
		{"water", func(d *esg.CompanyData) { d.Topics.Environmental.Water = nil }, "topics.environmental.water"},
		{"supply chain", func(d *esg.CompanyData) { d.Topics.Governance.SupplyChain = nil }, "topics.governance.supply_chain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := esg.LoadDocument(samplePath)
			if err != nil {
				t.Fatal(err)
			}
			tt.mutate(doc)

			err = doc.Validate()
			if !errors.Is(err, esg.ErrMissingField) {
				t.Fatalf("Validate() = %v, want ErrMissingField", err)
			}
			if !strings.HasPrefix(err.Error(), tt.path+":") {
				t.Errorf("error %q should name %s", err, tt.path)
			}
		})
	}
}

func TestValidateOptionalBlocks(t *testing.T) {
	doc, err := esg.LoadDocument(samplePath)
	if err != nil {
		t.Fatal(err)
	}
	doc.CompanyProfile = nil
	doc.Topics.Environmental.Materials = nil
	doc.Topics.Social.DiversityEquity = nil

	if err := doc.Validate(); err != nil {
		t.Errorf("optional blocks should not be required: %v", err)
	}
	if got := len(doc.Topics.Blocks()); got != 10 {
		t.Errorf("blocks = %d, want 10", got)
	}
	if doc.DisplayName() != "IT-DEMO-2024" {
		t.Errorf("DisplayName = %q, want company id", doc.DisplayName())
	}
}

func TestSaveJSONAndClone(t *testing.T) {
	doc, err := esg.LoadDocument(samplePath)
	if err != nil {
		t.Fatal(err)
	}

	clone, err := doc.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	clone.Topics.Environmental.EnergyClimate.Metrics["renewable_energy_pct"] = esg.Number(95)
	if f, _ := doc.Topics.Environmental.EnergyClimate.Metric("renewable_energy_pct").Float(); f != 62 {
		t.Errorf("mutating the clone changed the original: %v", f)
	}

	path := filepath.Join(t.TempDir(), "nested", "doc.json")
	if err := esg.SaveJSON(path, clone); err != nil {
		t.Fatalf("SaveJSON: %v", err)
	}
	loaded, err := esg.LoadDocument(path)
	if err != nil {
		t.Fatalf("reloading saved document: %v", err)
	}
	if f, _ := loaded.Topics.Environmental.EnergyClimate.Metric("renewable_energy_pct").Float(); f != 95 {
		t.Errorf("renewable_energy_pct = %v, want 95", f)
	}
}
