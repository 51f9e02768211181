package scoring

import "github.com/esgbuddy/esgbuddy/pkg/esg"

// summarizeQA averages the stored (already rounded) topic completeness into
// a percentage with one decimal and reports assurance and statement of use.
func summarizeQA(meta esg.ReportMetadata, scores []TopicScore) QAMetrics {
	var pct float64
	if len(scores) > 0 {
		var sum float64
		for _, s := range scores {
			sum += s.Completeness
		}
		pct = roundHalfUp(sum/float64(len(scores))*1000) / 10
	}

	sou := meta.StatementOfUse
	return QAMetrics{
		CompletenessPct:      pct,
		HasExternalAssurance: sou.ExternalAssurance != nil && sou.ExternalAssurance.Assured,
		StatementOfUse:       sou.Framework + " (" + sou.Claim + ")",
	}
}
