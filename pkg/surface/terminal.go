package surface

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/esgbuddy/esgbuddy/pkg/scoring"
)

// TerminalRenderer renders a ComputedReport as colored terminal output.
type TerminalRenderer struct{}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

const barWidth = 20

func bandColor(b Band) string {
	if noColor() {
		return ""
	}
	switch b {
	case BandStrong:
		return colorGreen
	case BandModerate:
		return colorYellow
	default:
		return colorRed
	}
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

// scoreBar draws a fixed-width bar proportional to a 0-100 score.
func scoreBar(score float64) string {
	filled := int(score / 100 * barWidth)
	filled = max(0, min(barWidth, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

func (r *TerminalRenderer) Render(w io.Writer, report *scoring.ComputedReport) error {
	ref := report.ReportRef
	overallColor := bandColor(BandFor(report.OverallScore))

	// Header
	fmt.Fprintf(w, "%s\n", bold(fmt.Sprintf("ESG report %s (%s, FY%d)", ref.ReportID, ref.CompanyID, ref.FiscalYear)))
	fmt.Fprintf(w, "Overall score: %s / 100 (%s)\n\n",
		colored(fmt.Sprintf("%.1f", report.OverallScore), overallColor), BandFor(report.OverallScore))

	// QA
	assured := "no"
	if report.QA.HasExternalAssurance {
		assured = "yes"
	}
	fmt.Fprintf(w, "Statement of use: %s\n", report.QA.StatementOfUse)
	fmt.Fprintf(w, "Disclosure completeness: %.1f%%   External assurance: %s\n\n", report.QA.CompletenessPct, assured)

	// Topics
	fmt.Fprintln(w, "Topics:")
	for _, ts := range report.TopicScores {
		c := bandColor(BandFor(ts.Score))
		fmt.Fprintf(w, "  %-12s %-46s %s %s  %s\n",
			ts.TopicCode,
			TopicName(ts.TopicCode),
			colored(scoreBar(ts.Score), c),
			colored(fmt.Sprintf("%5.1f", ts.Score), c),
			dim(fmt.Sprintf("complete %3.0f%%", ts.Completeness*100)))
		for _, n := range ts.Notes {
			fmt.Fprintf(w, "               %s\n", dim(n))
		}
	}
	fmt.Fprintln(w)

	// SDGs
	if len(report.SDGScores) == 0 {
		fmt.Fprintln(w, "No SDG links declared.")
	} else {
		fmt.Fprintln(w, "Sustainable Development Goals:")
		for _, s := range report.SDGScores {
			fmt.Fprintf(w, "  SDG %-3d %s  %s\n",
				s.SDG,
				colored(fmt.Sprintf("%5.1f", s.Score), bandColor(BandFor(s.Score))),
				dim(strings.Join(s.MaterialTopicsContributing, ", ")))
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Content index: %d disclosures\n", len(report.ContentIndex))
	return nil
}
