package scoring

import (
	"fmt"

	"github.com/esgbuddy/esgbuddy/pkg/esg"
)

// Topic codes scored by the engine.
const (
	TopicEnergy             = "GRI 302"
	TopicEmissions          = "GRI 305"
	TopicWater              = "GRI 303"
	TopicWaste              = "GRI 306"
	TopicHealthSafety       = "GRI 403"
	TopicTraining           = "GRI 404"
	TopicDiversity          = "GRI 405"
	TopicAntiCorruption     = "GRI 205"
	TopicSupplierAssessment = "GRI 308/414"
	TopicPrivacyCompliance  = "GRI 418/419"
	TopicGovernance         = "GRI 2"
)

// Topic is the interface that all topic scorers implement.
type Topic interface {
	// Code returns the GRI topic code, e.g. "GRI 305".
	Code() string
	// Name returns the human-readable topic name.
	Name() string
	// Disclosures returns the disclosures expected for this topic when the
	// materiality assessment does not declare it.
	Disclosures() []string
	// Performance computes the raw 0-100 performance score from the
	// disclosure blocks.
	Performance(in *Inputs) float64
}

// Inputs is the normalized view of a document that topic scorers read.
type Inputs struct {
	Topics *esg.Topics

	// RevenueMEUR is annual revenue in millions; Headcount is total
	// employees. Both are 0 when the company profile omits them.
	RevenueMEUR float64
	Headcount   float64

	notes []string
}

// NewInputs normalizes a document for scoring.
func NewInputs(doc *esg.CompanyData) *Inputs {
	return &Inputs{
		Topics:      doc.Topics,
		RevenueMEUR: doc.AnnualRevenue() / 1_000_000,
		Headcount:   doc.TotalEmployees(),
	}
}

// number reads a numeric metric, defaulting to 0.
func (in *Inputs) number(b *esg.Block, key string) float64 {
	v := b.Metric(key)
	if _, ok := v.Float(); !ok {
		if v.Kind() == esg.KindNull {
			in.notef("%s not reported, scored as 0", key)
		} else {
			in.notef("%s is %s, not a number, scored as 0", key, v.Kind())
		}
	}
	return NumericOr(v, 0)
}

// flag reads a boolean metric as 1 or 0.
func (in *Inputs) flag(b *esg.Block, key string) float64 {
	v := b.Metric(key)
	if v.Kind() != esg.KindBool {
		in.notef("%s not reported as a boolean, scored as false", key)
	}
	return BoolToUnit(v)
}

func (in *Inputs) notef(format string, args ...any) {
	in.notes = append(in.notes, fmt.Sprintf(format, args...))
}

// takeNotes returns the notes recorded since the last call and resets them.
func (in *Inputs) takeNotes() []string {
	n := in.notes
	in.notes = nil
	return n
}
