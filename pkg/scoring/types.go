// Package scoring implements the ESG scoring engine.
// It turns one company disclosure document into per-topic scores, SDG
// aggregates, an overall weighted score and a GRI content index.
package scoring

// ComputedReport is the complete output of scoring one disclosure document.
// Immutable once computed.
type ComputedReport struct {
	ReportRef    ReportRef         `json:"report_ref"`
	TopicScores  []TopicScore      `json:"topic_scores"`
	SDGScores    []SDGScore        `json:"sdg_scores"`
	OverallScore float64           `json:"overall_score"`
	ContentIndex []ContentIndexRow `json:"content_index"`
	QA           QAMetrics         `json:"qa"`
}

// ReportRef identifies the document a report was computed from.
type ReportRef struct {
	ReportID   string `json:"report_id"`
	CompanyID  string `json:"company_id"`
	FiscalYear int    `json:"fiscal_year"`
}

// TopicScore is the blended score of one GRI topic.
type TopicScore struct {
	TopicCode    string   `json:"topic_code"`   // "GRI 302"
	Score        float64  `json:"score"`        // 0-100, one decimal
	Completeness float64  `json:"completeness"` // 0-1, two decimals
	Notes        []string `json:"notes,omitempty"`
}

// SDGScore is the mean score of the material topics linked to one SDG.
type SDGScore struct {
	SDG                        int      `json:"sdg"`
	Score                      float64  `json:"score"`
	MaterialTopicsContributing []string `json:"material_topics_contributing"`
}

// ContentIndexRow is one line of the generated GRI content index.
type ContentIndexRow struct {
	Standard        string `json:"standard"`
	DisclosureCode  string `json:"disclosure_code"`
	DisclosureTitle string `json:"disclosure_title"`
	Location        string `json:"location"`
	Omissions       string `json:"omissions,omitempty"`
}

// QAMetrics summarizes report quality.
type QAMetrics struct {
	CompletenessPct      float64 `json:"completeness_pct"`
	HasExternalAssurance bool    `json:"has_external_assurance"`
	StatementOfUse       string  `json:"statement_of_use"`
}

// Topic returns the score for the given topic code, or nil.
func (r *ComputedReport) Topic(code string) *TopicScore {
	for i := range r.TopicScores {
		if r.TopicScores[i].TopicCode == code {
			return &r.TopicScores[i]
		}
	}
	return nil
}

// SDG returns the aggregate for the given goal number, or nil.
func (r *ComputedReport) SDG(n int) *SDGScore {
	for i := range r.SDGScores {
		if r.SDGScores[i].SDG == n {
			return &r.SDGScores[i]
		}
	}
	return nil
}
