package esg

import (
	"errors"
	"fmt"
)

// ErrMissingField is wrapped by Validate when a required object is absent.
var ErrMissingField = errors.New("required field missing")

// Validate checks that every object the scoring engine reads unconditionally
// is present. The materials and diversity_equity blocks and the company
// profile are optional.
func (d *CompanyData) Validate() error {
	if d == nil {
		return fmt.Errorf("document is nil")
	}

	missing := func(path string) error {
		return fmt.Errorf("%s: %w", path, ErrMissingField)
	}

	if d.Materiality == nil {
		return missing("materiality")
	}
	if d.Topics == nil {
		return missing("topics")
	}

	env, soc, gov := d.Topics.Environmental, d.Topics.Social, d.Topics.Governance
	if env == nil {
		return missing("topics.environmental")
	}
	if soc == nil {
		return missing("topics.social")
	}
	if gov == nil {
		return missing("topics.governance")
	}

	required := []struct {
		path  string
		block *Block
	}{
		{"topics.environmental.energy_climate", env.EnergyClimate},
		{"topics.environmental.water", env.Water},
		{"topics.environmental.waste", env.Waste},
		{"topics.social.workforce", soc.Workforce},
		{"topics.social.health_safety", soc.HealthSafety},
		{"topics.social.training", soc.Training},
		{"topics.governance.ethics_anticorruption", gov.EthicsAnticorruption},
		{"topics.governance.data_privacy_security", gov.DataPrivacySecurity},
		{"topics.governance.board_governance", gov.BoardGovernance},
		{"topics.governance.supply_chain", gov.SupplyChain},
	}
	for _, r := range required {
		if r.block == nil {
			return missing(r.path)
		}
	}

	return nil
}
