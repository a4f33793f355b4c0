package emotions

const (
	RiskCritical = "CRITICAL"
	RiskHigh     = "HIGH"
	RiskModerate = "MODERATE"
	RiskLow      = "LOW"
)

const (
	AlertUrgent  = "URGENT"
	AlertWarning = "WARNING"
	AlertMonitor = "MONITOR"
	AlertStable  = "STABLE"
)

// riskLevel buckets an individual similarity score.
func riskLevel(similarity float64) string {
	switch {
	case similarity >= 0.95:
		return RiskCritical
	case similarity >= 0.85:
		return RiskHigh
	case similarity >= 0.75:
		return RiskModerate
	default:
		return RiskLow
	}
}

// cohortAlertLevel classifies a cohort's emotion profile. Crisis
// concentration outranks anger/burnout, which outrank anxiety.
func cohortAlertLevel(profile map[string]float64) string {
	switch {
	case profile["crisis"] > 0.7:
		return AlertUrgent
	case profile["anger"] > 0.75 || profile["burnout"] > 0.75:
		return AlertWarning
	case profile["anxiety"] > 0.7:
		return AlertMonitor
	default:
		return AlertStable
	}
}
