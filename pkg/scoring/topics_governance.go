package scoring

// AntiCorruptionTopic (GRI 205) scores anti-corruption training coverage,
// with a flat penalty for any confirmed incident or legal fine.
type AntiCorruptionTopic struct{}

func (AntiCorruptionTopic) Code() string          { return TopicAntiCorruption }
func (AntiCorruptionTopic) Name() string          { return "Anti-corruption" }
func (AntiCorruptionTopic) Disclosures() []string { return []string{"205-1", "205-2", "205-3"} }

func (AntiCorruptionTopic) Performance(in *Inputs) float64 {
	b := in.Topics.Governance.EthicsAnticorruption
	trained := in.number(b, "employees_trained_anti_corruption_pct")
	incidents := in.number(b, "confirmed_corruption_incidents")
	fines := in.number(b, "legal_fines_eur")

	var penalty float64
	if incidents > 0 || fines > 0 {
		penalty = 30
	}
	return clamp(clamp(trained) - penalty)
}

// SupplierAssessmentTopic (GRI 308/414) scores code-of-conduct and ESG audit
// coverage of suppliers. Unremediated violations cost 20 points; otherwise a
// baseline 5 points is always deducted.
type SupplierAssessmentTopic struct{}

func (SupplierAssessmentTopic) Code() string { return TopicSupplierAssessment }
func (SupplierAssessmentTopic) Name() string {
	return "Supplier Environmental and Social Assessment"
}
func (SupplierAssessmentTopic) Disclosures() []string { return []string{"308-1", "414-1", "414-2"} }

func (SupplierAssessmentTopic) Performance(in *Inputs) float64 {
	b := in.Topics.Governance.SupplyChain
	coc := in.number(b, "suppliers_signed_coc_pct")
	audited := in.number(b, "suppliers_audited_esg_pct")
	violations := in.number(b, "supplier_esg_violations")
	remediated := in.number(b, "supplier_esg_violations_remediated")

	base := clamp(0.6*coc + 0.4*audited)
	penalty := 5.0
	if violations > 0 && remediated == 0 {
		penalty = 20
	}
	return clamp(base - penalty)
}

// PrivacyComplianceTopic (GRI 418/419) starts at 80, adds 10 each for ISO
// 27001 certification and GDPR compliance and loses 50 on any data breach.
type PrivacyComplianceTopic struct{}

func (PrivacyComplianceTopic) Code() string          { return TopicPrivacyCompliance }
func (PrivacyComplianceTopic) Name() string          { return "Customer Privacy and Socioeconomic Compliance" }
func (PrivacyComplianceTopic) Disclosures() []string { return []string{"418-1", "419-1"} }

func (PrivacyComplianceTopic) Performance(in *Inputs) float64 {
	b := in.Topics.Governance.DataPrivacySecurity
	breaches := in.number(b, "data_breaches")
	iso := 10 * in.flag(b, "iso_27001_certified")
	gdpr := 10 * in.flag(b, "gdpr_compliant")

	var penalty float64
	if breaches > 0 {
		penalty = 50
	}
	return clamp(80 + iso + gdpr - penalty)
}

// GovernanceTopic (GRI 2) scores board independence, board gender diversity
// and attendance.
type GovernanceTopic struct{}

func (GovernanceTopic) Code() string          { return TopicGovernance }
func (GovernanceTopic) Name() string          { return "Governance" }
func (GovernanceTopic) Disclosures() []string { return []string{"2-9", "2-10", "2-11", "2-12"} }

func (GovernanceTopic) Performance(in *Inputs) float64 {
	b := in.Topics.Governance.BoardGovernance
	independent := in.number(b, "independent_directors_pct")
	women := in.number(b, "board_gender_diversity_women_pct")
	attendance := in.number(b, "avg_board_attendance_pct")

	return clamp(0.4*independent + 0.4*women + 0.2*attendance)
}
