package scoring

// EnergyTopic (GRI 302) rewards low energy intensity, a high renewable share
// and falling intensity year over year.
type EnergyTopic struct{}

func (EnergyTopic) Code() string          { return TopicEnergy }
func (EnergyTopic) Name() string          { return "Energy" }
func (EnergyTopic) Disclosures() []string { return []string{"302-1", "302-3", "302-4"} }

func (EnergyTopic) Performance(in *Inputs) float64 {
	b := in.Topics.Environmental.EnergyClimate
	renewable := in.number(b, "renewable_energy_pct")
	intensity := in.number(b, "energy_intensity_kwh_per_eur_revenue")
	trend := -in.number(b, "yoy_energy_intensity_change_pct") // improvement is positive

	intensityScore := clamp(80 - 800*intensity)
	renewableScore := clamp(renewable)
	trendScore := clamp(50 + trend)
	return clamp(0.4*intensityScore + 0.4*renewableScore + 0.2*trendScore)
}

// EmissionsTopic (GRI 305) scores GHG emissions intensity and its trend. It
// reads the same energy_climate block as EnergyTopic.
type EmissionsTopic struct{}

func (EmissionsTopic) Code() string          { return TopicEmissions }
func (EmissionsTopic) Name() string          { return "Emissions" }
func (EmissionsTopic) Disclosures() []string { return []string{"305-1", "305-2", "305-3", "305-5"} }

func (EmissionsTopic) Performance(in *Inputs) float64 {
	b := in.Topics.Environmental.EnergyClimate
	intensity := in.number(b, "emissions_intensity_tco2e_per_m_eur")
	trend := -in.number(b, "yoy_emissions_intensity_change_pct")

	intensityScore := clamp(90 - 1.2*intensity)
	trendScore := clamp(50 + trend)
	return clamp(0.7*intensityScore + 0.3*trendScore)
}

// WaterTopic (GRI 303) scores water intensity, its trend and whether any
// water is recycled.
type WaterTopic struct{}

func (WaterTopic) Code() string          { return TopicWater }
func (WaterTopic) Name() string          { return "Water and Effluents" }
func (WaterTopic) Disclosures() []string { return []string{"303-3", "303-4", "303-5"} }

func (WaterTopic) Performance(in *Inputs) float64 {
	b := in.Topics.Environmental.Water
	intensity := in.number(b, "water_intensity_m3_per_eur_revenue")
	trend := -in.number(b, "yoy_water_intensity_change_pct")
	recycled := in.number(b, "water_recycled_m3")

	intensityScore := clamp(85 - 60000*intensity)
	trendScore := clamp(50 + trend)
	recycleScore := clamp(40)
	if recycled > 0 {
		recycleScore = clamp(70)
	}
	return clamp(0.5*intensityScore + 0.3*trendScore + 0.2*recycleScore)
}

// WasteTopic (GRI 306) scores the recycling rate, penalizing hazardous waste.
type WasteTopic struct{}

func (WasteTopic) Code() string          { return TopicWaste }
func (WasteTopic) Name() string          { return "Waste" }
func (WasteTopic) Disclosures() []string { return []string{"306-3", "306-4", "306-5"} }

func (WasteTopic) Performance(in *Inputs) float64 {
	b := in.Topics.Environmental.Waste
	recycling := in.number(b, "recycling_rate_pct")
	hazardous := in.number(b, "hazardous_waste_t")

	return clamp(0.8*clamp(recycling) + 0.2*clamp(80-10*hazardous))
}
