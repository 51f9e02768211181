package scoring_test

import (
	"testing"

	"github.com/esgbuddy/esgbuddy/pkg/esg"
	"github.com/esgbuddy/esgbuddy/pkg/scoring"
)

func TestTopicPerformance(t *testing.T) {
	tests := []struct {
		name   string
		topic  scoring.Topic
		mutate func(*esg.Topics)
		want   float64
	}{
		{
			name:  "energy at boundary",
			topic: scoring.EnergyTopic{},
			want:  82, // 0.4*80 + 0.4*100 + 0.2*50
		},
		{
			name:  "energy intensity floors at zero",
			topic: scoring.EnergyTopic{},
			mutate: func(tp *esg.Topics) {
				tp.Environmental.EnergyClimate.Metrics["energy_intensity_kwh_per_eur_revenue"] = esg.Number(1)
			},
			want: 50,
		},
		{
			name:  "health and safety with zero rates",
			topic: scoring.HealthSafetyTopic{},
			want:  92,
		},
		{
			name:  "privacy breach penalty",
			topic: scoring.PrivacyComplianceTopic{},
			want:  50,
		},
		{
			name:  "privacy certifications must be true booleans",
			topic: scoring.PrivacyComplianceTopic{},
			mutate: func(tp *esg.Topics) {
				m := tp.Governance.DataPrivacySecurity.Metrics
				m["data_breaches"] = esg.Number(0)
				m["iso_27001_certified"] = esg.Text("true")
				m["gdpr_compliant"] = esg.Number(1)
			},
			want: 80,
		},
		{
			name:  "ethics without incidents",
			topic: scoring.AntiCorruptionTopic{},
			want:  95,
		},
		{
			name:  "ethics clamps before the fine penalty",
			topic: scoring.AntiCorruptionTopic{},
			mutate: func(tp *esg.Topics) {
				m := tp.Governance.EthicsAnticorruption.Metrics
				m["employees_trained_anti_corruption_pct"] = esg.Number(150)
				m["legal_fines_eur"] = esg.Number(1000)
			},
			want: 70,
		},
		{
			name:  "supplier baseline deduction",
			topic: scoring.SupplierAssessmentTopic{},
			want:  63, // 0.6*80 + 0.4*50 - 5
		},
		{
			name:  "supplier unremediated violations",
			topic: scoring.SupplierAssessmentTopic{},
			mutate: func(tp *esg.Topics) {
				tp.Governance.SupplyChain.Metrics["supplier_esg_violations"] = esg.Number(3)
			},
			want: 48,
		},
		{
			name:  "supplier remediated violations",
			topic: scoring.SupplierAssessmentTopic{},
			mutate: func(tp *esg.Topics) {
				m := tp.Governance.SupplyChain.Metrics
				m["supplier_esg_violations"] = esg.Number(3)
				m["supplier_esg_violations_remediated"] = esg.Number(1)
			},
			want: 63,
		},
		{
			name:  "training hours saturate",
			topic: scoring.TrainingTopic{},
			mutate: func(tp *esg.Topics) {
				m := tp.Social.Training.Metrics
				m["avg_training_hours_per_employee"] = esg.Number(50)
				m["employees_reviewed_pct"] = esg.Number(100)
			},
			want: 100,
		},
		{
			name:  "diversity without pay gap",
			topic: scoring.DiversityTopic{},
			mutate: func(tp *esg.Topics) {
				tp.Social.DiversityEquity.Metrics["gender_pay_gap_pct"] = esg.Number(0)
			},
			want: 0.6*50 + 0.4*100, // 20% women in management, 40% saturates
		},
		{
			name:  "diversity without pay gap block",
			topic: scoring.DiversityTopic{},
			mutate: func(tp *esg.Topics) {
				tp.Social.DiversityEquity = nil
			},
			want: 0.6*50 + 0.4*85,
		},
		{
			name:  "diversity with zero headcount",
			topic: scoring.DiversityTopic{},
			mutate: func(tp *esg.Topics) {
				tp.Social.Workforce.Metrics["total_headcount"] = esg.Number(0)
			},
			want: 0.4 * 94,
		},
		{
			name:  "board",
			topic: scoring.GovernanceTopic{},
			want:  0.4*50 + 0.4*40 + 0.2*90,
		},
		{
			name:  "waste",
			topic: scoring.WasteTopic{},
			want:  0.8*80 + 0.2*60,
		},
		{
			name:  "water with recycling",
			topic: scoring.WaterTopic{},
			want:  0.5*55 + 0.3*50 + 0.2*70,
		},
		{
			name:  "water without recycling",
			topic: scoring.WaterTopic{},
			mutate: func(tp *esg.Topics) {
				delete(tp.Environmental.Water.Metrics, "water_recycled_m3")
			},
			want: 0.5*55 + 0.3*50 + 0.2*40,
		},
		{
			name:  "emissions",
			topic: scoring.EmissionsTopic{},
			want:  0.7*60 + 0.3*55,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := testDocument()
			if tt.mutate != nil {
				tt.mutate(doc.Topics)
			}
			got := tt.topic.Performance(scoring.NewInputs(doc))
			if !approx(got, tt.want) {
				t.Errorf("Performance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultTopics(t *testing.T) {
	topics := scoring.DefaultTopics()
	if len(topics) != len(wantTopicOrder) {
		t.Fatalf("got %d topics, want %d", len(topics), len(wantTopicOrder))
	}
	for i, tp := range topics {
		if tp.Code() != wantTopicOrder[i] {
			t.Errorf("topic %d = %s, want %s", i, tp.Code(), wantTopicOrder[i])
		}
		if tp.Name() == "" || len(tp.Disclosures()) == 0 {
			t.Errorf("%s: missing name or fallback disclosures", tp.Code())
		}
	}
}

func TestInputsNormalization(t *testing.T) {
	doc := testDocument()
	in := scoring.NewInputs(doc)
	if in.RevenueMEUR != 0 || in.Headcount != 0 {
		t.Errorf("missing profile should normalize to zero, got %v, %v", in.RevenueMEUR, in.Headcount)
	}

	doc.CompanyProfile = &esg.CompanyProfile{
		FinancialMetrics: &esg.FinancialMetrics{AnnualRevenue: 52_000_000},
		WorkforceProfile: &esg.WorkforceProfile{TotalEmployees: 410},
	}
	in = scoring.NewInputs(doc)
	if in.RevenueMEUR != 52 || in.Headcount != 410 {
		t.Errorf("got revenue %v, headcount %v", in.RevenueMEUR, in.Headcount)
	}
}
