package scoring

import (
	"fmt"

	"github.com/esgbuddy/esgbuddy/pkg/esg"
)

// Engine runs every topic scorer against a document and assembles the
// ComputedReport. An Engine is immutable and safe for concurrent use.
type Engine struct {
	topics    []Topic
	weights   Weights
	baseRoute string
	notes     bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithTopics replaces the topic scorers. Topic scores are reported in the
// order given.
func WithTopics(topics ...Topic) Option {
	return func(e *Engine) { e.topics = append([]Topic(nil), topics...) }
}

// WithBaseRoute sets the prefix of content index locations.
func WithBaseRoute(route string) Option {
	return func(e *Engine) { e.baseRoute = route }
}

// WithNotes makes each topic score list the metrics that were missing or
// not numeric and were scored with a default value.
func WithNotes(enabled bool) Option {
	return func(e *Engine) { e.notes = enabled }
}

// NewEngine creates a scoring engine with the default topics and weights.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		topics:    DefaultTopics(),
		weights:   Defaults(),
		baseRoute: DefaultBaseRoute,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Topics returns the topic scorers in report order.
func (e *Engine) Topics() []Topic {
	return append([]Topic(nil), e.topics...)
}

var defaultEngine = NewEngine()

// ComputeScores scores a document with the default engine.
func ComputeScores(doc *esg.CompanyData) (*ComputedReport, error) {
	return defaultEngine.Compute(doc)
}

// Compute scores a document. It fails without a partial result if the
// document is nil or lacks a required object.
func (e *Engine) Compute(doc *esg.CompanyData) (*ComputedReport, error) {
	if doc == nil {
		return nil, fmt.Errorf("document is nil")
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}

	material := doc.Materiality.MaterialTopics
	declared := declaredDisclosures(material)
	blocks := doc.Topics.Blocks()
	in := NewInputs(doc)

	scores := make([]TopicScore, 0, len(e.topics))
	for _, t := range e.topics {
		expected := expectedFor(t, declared)
		c := Completeness(foundDisclosures(blocks, expected), expected)
		perf := t.Performance(in)
		notes := in.takeNotes()

		ts := e.blend(t.Code(), c, perf)
		if e.notes {
			ts.Notes = notes
		}
		scores = append(scores, ts)
	}

	meta := doc.ReportMetadata
	return &ComputedReport{
		ReportRef: ReportRef{
			ReportID:   meta.ReportID,
			CompanyID:  meta.CompanyID,
			FiscalYear: meta.ReportingPeriod.FiscalYear,
		},
		TopicScores:  scores,
		SDGScores:    aggregateSDGs(material, scores),
		OverallScore: overallScore(scores, e.weights),
		ContentIndex: ContentIndex(material, e.baseRoute),
		QA:           summarizeQA(meta, scores),
	}, nil
}

// blend combines completeness and performance into a topic score.
// Completeness is first rounded to a one-decimal percentage, then weighted.
func (e *Engine) blend(code string, completeness, performance float64) TopicScore {
	score := clamp(e.weights.CompletenessShare*roundHalfUp(completeness*1000)/10 +
		e.weights.PerformanceShare*performance)
	return TopicScore{
		TopicCode:    code,
		Score:        RoundTo(score, 1),
		Completeness: RoundTo(completeness, 2),
	}
}
