// Package esg defines the company sustainability disclosure document that the
// scoring engine consumes, along with its JSON codec.
//
// The document mirrors a GRI-style report: metadata and statement of use, an
// optional company profile, a materiality assessment declaring which topics
// are material and which disclosures they expect, and a set of disclosure
// blocks grouped into environmental, social and governance categories.
package esg

// CompanyData is one company's disclosure document for one reporting period.
type CompanyData struct {
	ReportMetadata ReportMetadata  `json:"report_metadata"`
	CompanyProfile *CompanyProfile `json:"company_profile,omitempty"`
	Materiality    *Materiality    `json:"materiality"`
	Topics         *Topics         `json:"topics"`
}

// ReportMetadata identifies the report and states how it was prepared.
type ReportMetadata struct {
	ReportID          string            `json:"report_id"`
	CompanyID         string            `json:"company_id"`
	ReportDate        string            `json:"report_date"`
	ReportingPeriod   ReportingPeriod   `json:"reporting_period"`
	StatementOfUse    StatementOfUse    `json:"statement_of_use"`
	ReportingBoundary ReportingBoundary `json:"reporting_boundary"`
}

type ReportingPeriod struct {
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	FiscalYear int    `json:"fiscal_year"`
	Currency   string `json:"currency"`
}

// StatementOfUse records the framework the report claims to follow and how
// (e.g. "GRI Standards", "in accordance").
type StatementOfUse struct {
	Framework           string             `json:"framework"`
	Claim               string             `json:"claim"`
	UniversalStandards  UniversalStandards `json:"universal_standards"`
	TopicStandardsUsed  []string           `json:"topic_standards_used"`
	SectorStandardsUsed []string           `json:"sector_standards_used"`
	ExternalAssurance   *ExternalAssurance `json:"external_assurance,omitempty"`
}

type UniversalStandards struct {
	GRI1 string `json:"gri_1"`
	GRI2 string `json:"gri_2"`
	GRI3 string `json:"gri_3"`
}

// ExternalAssurance describes third-party verification of the report.
type ExternalAssurance struct {
	Assured             bool   `json:"assured"`
	AssuranceProvider   string `json:"assurance_provider,omitempty"`
	AssuranceStandard   string `json:"assurance_standard,omitempty"`
	AssuranceScope      string `json:"assurance_scope,omitempty"`
	AssuranceConclusion string `json:"assurance_conclusion,omitempty"`
}

type ReportingBoundary struct {
	EntitiesIncluded        []string `json:"entities_included"`
	Approach                string   `json:"approach"`
	Exclusions              []string `json:"exclusions"`
	ChangesSincePriorPeriod string   `json:"changes_since_prior_period"`
}

// CompanyProfile is descriptive context. Only annual revenue and total
// employees are read during scoring.
type CompanyProfile struct {
	BasicInformation BasicInformation  `json:"basic_information"`
	FinancialMetrics *FinancialMetrics `json:"financial_metrics,omitempty"`
	WorkforceProfile *WorkforceProfile `json:"workforce_profile,omitempty"`
}

type BasicInformation struct {
	LegalName    string       `json:"legal_name"`
	TradeName    string       `json:"trade_name"`
	Headquarters Headquarters `json:"headquarters"`
	Industry     Industry     `json:"industry"`
	CompanyType  string       `json:"company_type"`
	YearFounded  int          `json:"year_founded"`
	Website      string       `json:"website"`
}

type Headquarters struct {
	Address string `json:"address"`
	Country string `json:"country"`
	Region  string `json:"region"`
}

type Industry struct {
	Sector    string `json:"sector"`
	Subsector string `json:"subsector"`
	GICSCode  string `json:"gics_code"`
	NACECode  string `json:"nace_code"`
}

type FinancialMetrics struct {
	Currency                 string  `json:"currency"`
	AnnualRevenue            float64 `json:"annual_revenue"`
	EBITDA                   float64 `json:"ebitda"`
	TotalAssets              float64 `json:"total_assets"`
	RDInvestment             float64 `json:"rd_investment"`
	Capex                    float64 `json:"capex"`
	SustainabilityInvestment float64 `json:"sustainability_investment"`
}

type WorkforceProfile struct {
	TotalEmployees          float64            `json:"total_employees"`
	TotalFTE                float64            `json:"total_fte"`
	EmployeesByContract     ContractSplit      `json:"employees_by_contract"`
	EmployeesByType         EmploymentSplit    `json:"employees_by_type"`
	ContractorsNonEmployees float64            `json:"contractors_non_employees"`
	GeographicDistribution  map[string]float64 `json:"geographic_distribution"`
}

type ContractSplit struct {
	Permanent float64 `json:"permanent"`
	Temporary float64 `json:"temporary"`
}

type EmploymentSplit struct {
	FullTime float64 `json:"full_time"`
	PartTime float64 `json:"part_time"`
}

// Materiality is the outcome of the materiality assessment.
type Materiality struct {
	StakeholderEngagement []StakeholderEngagement `json:"stakeholder_engagement"`
	Methodology           string                  `json:"methodology"`
	MaterialTopics        []MaterialTopic         `json:"material_topics"`
}

type StakeholderEngagement struct {
	StakeholderGroup string   `json:"stakeholder_group"`
	EngagementMethod string   `json:"engagement_method"`
	KeyIssues        []string `json:"key_issues"`
}

// MaterialTopic declares a topic as material, the SDGs it links to and the
// disclosures the report is expected to make for it.
type MaterialTopic struct {
	TopicCode      string    `json:"topic_code"` // e.g. "GRI 305"
	TopicName      string    `json:"topic_name"`
	Boundary       string    `json:"boundary"`
	SDGLinks       []SDGLink `json:"sdg_links"`
	GRIDisclosures []string  `json:"gri_disclosures"` // e.g. "305-1"
}

type SDGLink struct {
	SDG     int      `json:"sdg"`
	Targets []string `json:"targets"`
}

// Topics groups the disclosure blocks by category.
type Topics struct {
	Environmental *EnvironmentalTopics `json:"environmental"`
	Social        *SocialTopics        `json:"social"`
	Governance    *GovernanceTopics    `json:"governance"`
}

type EnvironmentalTopics struct {
	EnergyClimate *Block `json:"energy_climate"`
	Water         *Block `json:"water"`
	Waste         *Block `json:"waste"`
	Materials     *Block `json:"materials,omitempty"`
}

type SocialTopics struct {
	Workforce       *Block `json:"workforce"`
	HealthSafety    *Block `json:"health_safety"`
	Training        *Block `json:"training"`
	DiversityEquity *Block `json:"diversity_equity,omitempty"`
}

type GovernanceTopics struct {
	EthicsAnticorruption *Block `json:"ethics_anticorruption"`
	DataPrivacySecurity  *Block `json:"data_privacy_security"`
	BoardGovernance      *Block `json:"board_governance"`
	SupplyChain          *Block `json:"supply_chain"`
}

// Block is one disclosure block: the GRI disclosures it maps to, the SDGs it
// references and its raw metric values keyed by metric name.
type Block struct {
	GRIMapping []string               `json:"gri_mapping"`
	SDGMapping []string               `json:"sdg_mapping"`
	Metrics    map[string]MetricValue `json:"metrics"`
	Targets    map[string]MetricValue `json:"targets,omitempty"`
}

// Metric returns the named metric, or the null value if the block is nil or
// the metric is not reported.
func (b *Block) Metric(name string) MetricValue {
	if b == nil {
		return MetricValue{}
	}
	return b.Metrics[name]
}

// Blocks returns every present disclosure block in category order:
// environmental, social, governance. Optional blocks that are absent are
// skipped.
func (t *Topics) Blocks() []*Block {
	if t == nil {
		return nil
	}
	var candidates []*Block
	if env := t.Environmental; env != nil {
		candidates = append(candidates, env.EnergyClimate, env.Water, env.Waste, env.Materials)
	}
	if soc := t.Social; soc != nil {
		candidates = append(candidates, soc.Workforce, soc.HealthSafety, soc.Training, soc.DiversityEquity)
	}
	if gov := t.Governance; gov != nil {
		candidates = append(candidates, gov.EthicsAnticorruption, gov.DataPrivacySecurity, gov.BoardGovernance, gov.SupplyChain)
	}

	blocks := make([]*Block, 0, len(candidates))
	for _, b := range candidates {
		if b != nil {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// AnnualRevenue returns the reported annual revenue, or 0 if not reported.
func (d *CompanyData) AnnualRevenue() float64 {
	if d.CompanyProfile == nil || d.CompanyProfile.FinancialMetrics == nil {
		return 0
	}
	return d.CompanyProfile.FinancialMetrics.AnnualRevenue
}

// TotalEmployees returns the reported headcount, or 0 if not reported.
func (d *CompanyData) TotalEmployees() float64 {
	if d.CompanyProfile == nil || d.CompanyProfile.WorkforceProfile == nil {
		return 0
	}
	return d.CompanyProfile.WorkforceProfile.TotalEmployees
}

// DisplayName returns the trade name, falling back to the legal name and then
// the company ID.
func (d *CompanyData) DisplayName() string {
	if d.CompanyProfile != nil {
		if n := d.CompanyProfile.BasicInformation.TradeName; n != "" {
			return n
		}
		if n := d.CompanyProfile.BasicInformation.LegalName; n != "" {
			return n
		}
	}
	return d.ReportMetadata.CompanyID
}
