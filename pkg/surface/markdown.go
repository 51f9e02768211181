package surface

import (
	"fmt"
	"io"
	"strings"

	"github.com/esgbuddy/esgbuddy/pkg/scoring"
)

// MarkdownRenderer renders a ComputedReport as a Markdown summary followed
// by the GRI content index.
type MarkdownRenderer struct {
	// IndexOnly renders only the content index table.
	IndexOnly bool
}

func (r *MarkdownRenderer) Render(w io.Writer, report *scoring.ComputedReport) error {
	var sb strings.Builder
	if !r.IndexOnly {
		writeMarkdownSummary(&sb, report)
	}
	writeContentIndex(&sb, report.ContentIndex)
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeMarkdownSummary(sb *strings.Builder, report *scoring.ComputedReport) {
	ref := report.ReportRef
	fmt.Fprintf(sb, "## ESG report %s: score %.1f\n\n", ref.ReportID, report.OverallScore)
	fmt.Fprintf(sb, "Company `%s`, fiscal year %d. %s.\n\n", ref.CompanyID, ref.FiscalYear, report.QA.StatementOfUse)

	assured := "No"
	if report.QA.HasExternalAssurance {
		assured = "Yes"
	}
	sb.WriteString("| Overall | Completeness | External assurance |\n|---------|--------------|--------------------|\n")
	fmt.Fprintf(sb, "| %.1f | %.1f%% | %s |\n\n", report.OverallScore, report.QA.CompletenessPct, assured)

	sb.WriteString("### Topics\n\n")
	sb.WriteString("| Topic | Name | Score | Completeness |\n|-------|------|-------|--------------|\n")
	for _, ts := range report.TopicScores {
		fmt.Fprintf(sb, "| %s | %s | %.1f | %.0f%% |\n", ts.TopicCode, TopicName(ts.TopicCode), ts.Score, ts.Completeness*100)
	}
	sb.WriteString("\n")

	var notes []string
	for _, ts := range report.TopicScores {
		for _, n := range ts.Notes {
			notes = append(notes, fmt.Sprintf("- **%s**: %s", ts.TopicCode, n))
		}
	}
	if len(notes) > 0 {
		sb.WriteString("### Notes\n\n")
		sb.WriteString(strings.Join(notes, "\n"))
		sb.WriteString("\n\n")
	}

	if len(report.SDGScores) > 0 {
		sb.WriteString("### SDGs\n\n")
		sb.WriteString("| SDG | Score | Material topics |\n|-----|-------|-----------------|\n")
		for _, s := range report.SDGScores {
			fmt.Fprintf(sb, "| %d | %.1f | %s |\n", s.SDG, s.Score, strings.Join(s.MaterialTopicsContributing, ", "))
		}
		sb.WriteString("\n")
	}
}

func writeContentIndex(sb *strings.Builder, rows []scoring.ContentIndexRow) {
	sb.WriteString("### GRI content index\n\n")
	if len(rows) == 0 {
		sb.WriteString("_No material topics declared._\n")
		return
	}
	sb.WriteString("| Standard | Disclosure | Title | Location | Omissions |\n|----------|------------|-------|----------|-----------|\n")
	for _, row := range rows {
		fmt.Fprintf(sb, "| %s | %s | %s | %s | %s |\n",
			row.Standard, row.DisclosureCode, row.DisclosureTitle, row.Location, row.Omissions)
	}
}
