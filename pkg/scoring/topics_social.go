package scoring

import "math"

// defaultPayGapPct is assumed when no diversity_equity block is reported.
const defaultPayGapPct = 5

// HealthSafetyTopic (GRI 403) scores recordable and lost-time injury rates.
type HealthSafetyTopic struct{}

func (HealthSafetyTopic) Code() string          { return TopicHealthSafety }
func (HealthSafetyTopic) Name() string          { return "Occupational Health and Safety" }
func (HealthSafetyTopic) Disclosures() []string { return []string{"403-1", "403-2", "403-9"} }

func (HealthSafetyTopic) Performance(in *Inputs) float64 {
	b := in.Topics.Social.HealthSafety
	trir := in.number(b, "trir")
	ltir := in.number(b, "ltir")

	return clamp(0.6*clamp(90-30*trir) + 0.4*clamp(95-50*ltir))
}

// TrainingTopic (GRI 404) scores training hours per employee and the share
// of employees receiving performance reviews. About 33 hours saturates the
// hours component.
type TrainingTopic struct{}

func (TrainingTopic) Code() string          { return TopicTraining }
func (TrainingTopic) Name() string          { return "Training and Education" }
func (TrainingTopic) Disclosures() []string { return []string{"404-1", "404-2", "404-3"} }

func (TrainingTopic) Performance(in *Inputs) float64 {
	b := in.Topics.Social.Training
	hours := in.number(b, "avg_training_hours_per_employee")
	reviewed := in.number(b, "employees_reviewed_pct")

	hoursScore := clamp(min(100, 3*hours))
	return clamp(0.7*hoursScore + 0.3*clamp(reviewed))
}

// DiversityTopic (GRI 405) scores women in management (40% saturates) and
// the gender pay gap. It reads the workforce block and, when present, the
// diversity_equity block.
type DiversityTopic struct{}

func (DiversityTopic) Code() string          { return TopicDiversity }
func (DiversityTopic) Name() string          { return "Diversity and Equal Opportunity" }
func (DiversityTopic) Disclosures() []string { return []string{"405-1", "405-2"} }

func (DiversityTopic) Performance(in *Inputs) float64 {
	wf := in.Topics.Social.Workforce
	women := in.number(wf, "women_in_management")
	total := in.number(wf, "total_headcount")

	var womenPct float64
	if total > 0 {
		// women+(total-women) equals total; this form keeps results
		// bit-identical with reports already published.
		womenPct = 100 * women / max(1, women+(total-women))
	}

	payGap := float64(defaultPayGapPct)
	if de := in.Topics.Social.DiversityEquity; de != nil {
		payGap = in.number(de, "gender_pay_gap_pct")
	} else {
		in.notef("diversity_equity block not reported, gender pay gap scored as %d%%", defaultPayGapPct)
	}

	mgmtScore := clamp(2.5 * womenPct)
	payScore := clamp(100 - 3*math.Abs(payGap))
	return clamp(0.6*mgmtScore + 0.4*payScore)
}
