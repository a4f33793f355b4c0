package emotions

import "testing"

func TestRiskLevelBoundaries(t *testing.T) {
	cases := []struct {
		similarity float64
		want       string
	}{
		{1.0, RiskCritical},
		{0.95, RiskCritical},
		{0.9499, RiskHigh},
		{0.85, RiskHigh},
		{0.8499, RiskModerate},
		{0.75, RiskModerate},
		{0.7499, RiskLow},
		{0, RiskLow},
	}
	for _, tc := range cases {
		if got := riskLevel(tc.similarity); got != tc.want {
			t.Fatalf("riskLevel(%v): want=%q got=%q", tc.similarity, tc.want, got)
		}
	}
}

func TestCohortAlertLevelPriority(t *testing.T) {
	cases := []struct {
		name    string
		profile map[string]float64
		want    string
	}{
		{"crisis outranks anger", map[string]float64{"crisis": 0.8, "anger": 0.9}, AlertUrgent},
		{"anger warning", map[string]float64{"anger": 0.76}, AlertWarning},
		{"burnout warning", map[string]float64{"burnout": 0.76}, AlertWarning},
		{"anxiety monitor", map[string]float64{"anxiety": 0.71}, AlertMonitor},
		{"crisis at boundary is not urgent", map[string]float64{"crisis": 0.7}, AlertStable},
		{"anger at boundary is not warning", map[string]float64{"anger": 0.75}, AlertStable},
		{"anxiety at boundary is not monitor", map[string]float64{"anxiety": 0.7}, AlertStable},
		{"empty profile", map[string]float64{}, AlertStable},
	}
	for _, tc := range cases {
		if got := cohortAlertLevel(tc.profile); got != tc.want {
			t.Fatalf("%s: want=%q got=%q", tc.name, tc.want, got)
		}
	}
}
