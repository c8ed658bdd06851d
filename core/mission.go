package core

import (
	"time"

	"github.com/signalsfoundry/cosmopulse/model"
)

// Fixed recommendations per mission status.
const (
	recommendCritical = "Immediate action required. Review all high-risk conjunctions."
	recommendElevated = "Monitor closely. Prepare contingency plans."
	recommendModerate = "Routine monitoring. No immediate action required."
	recommendNormal   = "All systems nominal. Continue standard operations."
)

// SummarizeMissionImpact reduces an alert list into one overall status and
// recommendation. An empty alert list means a zero average risk and status
// NORMAL.
func SummarizeMissionImpact(alerts []model.Alert, catalogSize int, now time.Time) model.MissionImpactReport {
	highRisk := 0
	mediumRisk := 0
	total := 0.0
	for _, a := range alerts {
		switch a.Severity {
		case string(model.ThreatHigh), string(model.ThreatCritical):
			highRisk++
		case string(model.ThreatMedium):
			mediumRisk++
		}
		total += a.RiskScore
	}

	avg := 0.0
	if len(alerts) > 0 {
		avg = total / float64(len(alerts))
	}

	var status model.MissionStatus
	var recommendation string
	switch {
	case avg >= 75 || highRisk > 3:
		status = model.MissionCritical
		recommendation = recommendCritical
	case avg >= 50 || highRisk > 0:
		status = model.MissionElevated
		recommendation = recommendElevated
	case avg >= 25:
		status = model.MissionModerate
		recommendation = recommendModerate
	default:
		status = model.MissionNormal
		recommendation = recommendNormal
	}

	return model.MissionImpactReport{
		OverallStatus:   status,
		TotalObjects:    catalogSize,
		HighRiskCount:   highRisk,
		MediumRiskCount: mediumRisk,
		AverageRisk:     round2(avg),
		Recommendation:  recommendation,
		GeneratedAt:     now,
	}
}
