package scoring

// Weights holds the weighting constants used to blend and aggregate scores.
type Weights struct {
	// Topic score blend: completeness (as a percentage) and performance.
	CompletenessShare float64
	PerformanceShare  float64

	// Overall score: per-topic weights, and the weight for any topic code
	// not listed.
	Topic        map[string]float64
	DefaultTopic float64
}

// Defaults returns the standard weights. Emissions weigh most; board
// governance least.
func Defaults() Weights {
	return Weights{
		CompletenessShare: 0.4,
		PerformanceShare:  0.6,

		Topic: map[string]float64{
			TopicEmissions:          1.2,
			TopicEnergy:             1.0,
			TopicWater:              0.8,
			TopicWaste:              0.8,
			TopicHealthSafety:       1.0,
			TopicTraining:           0.7,
			TopicDiversity:          0.9,
			TopicAntiCorruption:     0.9,
			TopicSupplierAssessment: 0.8,
			TopicPrivacyCompliance:  0.9,
			TopicGovernance:         0.6,
		},
		DefaultTopic: 0.7,
	}
}

// TopicWeight returns the overall-score weight for a topic code.
func (w Weights) TopicWeight(code string) float64 {
	if v, ok := w.Topic[code]; ok {
		return v
	}
	return w.DefaultTopic
}

// TopicWeights returns the default overall-score weight of every scored
// topic code.
func TopicWeights() map[string]float64 {
	return Defaults().Topic
}
