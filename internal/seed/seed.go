// Package seed provides the demo data loaded by `esgbuddy seed` and
// `esgbuddy populate`: a sample company report, two variants derived from
// it, and a handful of sustainability initiatives.
package seed

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/esgbuddy/esgbuddy/pkg/esg"
)

//go:embed data/company_data.json
var companyData []byte

// BaseCompany returns a fresh copy of the embedded demo company.
func BaseCompany() (*esg.CompanyData, error) {
	doc, err := esg.DecodeDocument(bytes.NewReader(companyData))
	if err != nil {
		return nil, fmt.Errorf("embedded company data: %w", err)
	}
	return doc, nil
}

// Companies returns the demo company followed by the GreenTech variant,
// stronger on environmental metrics, and the TechCorp variant, a
// mid-range performer without external assurance.
func Companies() ([]*esg.CompanyData, error) {
	base, err := BaseCompany()
	if err != nil {
		return nil, err
	}

	variants := []func(*esg.CompanyData){greenTech, techCorp}
	out := []*esg.CompanyData{base}
	for _, apply := range variants {
		doc, err := base.Clone()
		if err != nil {
			return nil, err
		}
		apply(doc)
		out = append(out, doc)
	}
	return out, nil
}

func setMetric(b *esg.Block, key string, v float64) {
	if b.Metrics == nil {
		b.Metrics = map[string]esg.MetricValue{}
	}
	b.Metrics[key] = esg.Number(v)
}

func greenTech(d *esg.CompanyData) {
	d.ReportMetadata.ReportID = "ESG-2024-DEMO-002"
	d.ReportMetadata.CompanyID = "IT-GREENTECH-2024"

	info := &d.CompanyProfile.BasicInformation
	info.LegalName = "GreenTech Solutions S.p.A."
	info.TradeName = "GreenTech"
	info.Website = "https://www.greentech.it"
	d.CompanyProfile.FinancialMetrics.AnnualRevenue = 75_000_000
	d.CompanyProfile.WorkforceProfile.TotalEmployees = 620

	env := d.Topics.Environmental
	setMetric(env.EnergyClimate, "renewable_energy_pct", 95)
	setMetric(env.EnergyClimate, "scope1_tco2e", 450)
	setMetric(env.EnergyClimate, "scope2_market_tco2e", 200)
	setMetric(env.EnergyClimate, "emissions_intensity_tco2e_per_m_eur", 8.7)
	setMetric(env.Waste, "recycling_rate_pct", 88.5)

	setMetric(d.Topics.Social.Workforce, "women_in_management", 35)
	setMetric(d.Topics.Social.DiversityEquity, "gender_pay_gap_pct", 1.2)
}

func techCorp(d *esg.CompanyData) {
	d.ReportMetadata.ReportID = "ESG-2024-DEMO-003"
	d.ReportMetadata.CompanyID = "IT-TECHCORP-2024"

	info := &d.CompanyProfile.BasicInformation
	info.LegalName = "TechCorp Italia S.r.l."
	info.TradeName = "TechCorp"
	info.Website = "https://www.techcorp.it"
	info.Headquarters.Address = "Via Torino 45, 10123 Torino, Italy"
	info.Headquarters.Region = "Piedmont"
	d.CompanyProfile.FinancialMetrics.AnnualRevenue = 35_000_000
	d.CompanyProfile.WorkforceProfile.TotalEmployees = 280

	env := d.Topics.Environmental
	setMetric(env.EnergyClimate, "renewable_energy_pct", 45)
	setMetric(env.EnergyClimate, "scope1_tco2e", 1800)
	setMetric(env.EnergyClimate, "emissions_intensity_tco2e_per_m_eur", 51.4)
	setMetric(env.Waste, "recycling_rate_pct", 58.0)

	hs := d.Topics.Social.HealthSafety
	setMetric(hs, "recordable_injuries", 8)
	setMetric(hs, "lost_time_injuries", 4)
	setMetric(hs, "trir", 1.82)
	setMetric(hs, "ltir", 0.91)
	setMetric(d.Topics.Social.Training, "avg_training_hours_per_employee", 18.5)
	setMetric(d.Topics.Governance.SupplyChain, "suppliers_audited_esg_pct", 35)

	if ea := d.ReportMetadata.StatementOfUse.ExternalAssurance; ea != nil {
		ea.Assured = false
	}
}

// SampleItems returns the demo initiatives inserted by `esgbuddy populate`.
func SampleItems() []map[string]any {
	return []map[string]any{
		{
			"name":            "Solar Panel Installation",
			"category":        "Environmental",
			"impact":          "High",
			"carbonReduction": 500,
			"description":     "Installation of solar panels to reduce carbon footprint",
			"date":            "2024-01-15T00:00:00Z",
		},
		{
			"name":          "Employee Training Program",
			"category":      "Social",
			"impact":        "Medium",
			"hoursProvided": 120,
			"description":   "Quarterly training program for employee development",
			"date":          "2024-02-01T00:00:00Z",
		},
		{
			"name":           "Board Diversity Initiative",
			"category":       "Governance",
			"impact":         "High",
			"diversityScore": 85,
			"description":    "Increased board diversity to 40% women and minorities",
			"date":           "2024-03-10T00:00:00Z",
		},
		{
			"name":         "Waste Reduction Campaign",
			"category":     "Environmental",
			"impact":       "Medium",
			"wasteReduced": 250,
			"description":  "Company-wide initiative to reduce waste by 30%",
			"date":         "2024-04-05T00:00:00Z",
		},
		{
			"name":          "Community Outreach",
			"category":      "Social",
			"impact":        "High",
			"peopleReached": 1000,
			"description":   "Local community support and volunteer programs",
			"date":          "2024-05-20T00:00:00Z",
		},
	}
}
