package scoring

// DefaultBaseRoute prefixes every content index location.
const DefaultBaseRoute = "/disclosures"

// DefaultTopics returns the eleven topic scorers in report order.
func DefaultTopics() []Topic {
	return []Topic{
		EnergyTopic{},
		EmissionsTopic{},
		WaterTopic{},
		WasteTopic{},
		HealthSafetyTopic{},
		TrainingTopic{},
		DiversityTopic{},
		AntiCorruptionTopic{},
		SupplierAssessmentTopic{},
		PrivacyComplianceTopic{},
		GovernanceTopic{},
	}
}
