// Package surface defines output rendering for computed ESG reports.
// Implementations handle different output targets: terminal, Markdown, JSON.
package surface

import (
	"fmt"
	"io"

	"github.com/esgbuddy/esgbuddy/pkg/scoring"
)

// Renderer produces formatted output from a ComputedReport.
type Renderer interface {
	// Render writes the formatted report to the writer.
	Render(w io.Writer, report *scoring.ComputedReport) error
}

// ForFormat returns the renderer for an output format name: "text",
// "json" or "markdown".
func ForFormat(format string) (Renderer, error) {
	switch format {
	case "", "text":
		return &TerminalRenderer{}, nil
	case "json":
		return &JSONRenderer{}, nil
	case "markdown", "md":
		return &MarkdownRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, json or markdown)", format)
	}
}

// Band classifies a 0-100 score for display.
type Band string

const (
	BandStrong   Band = "strong"
	BandModerate Band = "moderate"
	BandWeak     Band = "weak"
)

// BandFor returns the display band of a score.
func BandFor(score float64) Band {
	switch {
	case score >= 75:
		return BandStrong
	case score >= 50:
		return BandModerate
	default:
		return BandWeak
	}
}

var topicNames = func() map[string]string {
	names := make(map[string]string)
	for _, t := range scoring.DefaultTopics() {
		names[t.Code()] = t.Name()
	}
	return names
}()

// TopicName returns the human-readable name of a topic code, or the code
// itself if unknown.
func TopicName(code string) string {
	if n, ok := topicNames[code]; ok {
		return n
	}
	return code
}
