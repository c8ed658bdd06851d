package core

import (
	"testing"
	"time"

	"github.com/signalsfoundry/cosmopulse/model"
)

func TestSummarizeMissionImpact_EmptyAlerts(t *testing.T) {
	now := time.Now()
	report := SummarizeMissionImpact(nil, 12, now)

	if report.OverallStatus != model.MissionNormal {
		t.Errorf("OverallStatus = %v, want NORMAL", report.OverallStatus)
	}
	if report.AverageRisk != 0 {
		t.Errorf("AverageRisk = %v, want 0", report.AverageRisk)
	}
	if report.TotalObjects != 12 {
		t.Errorf("TotalObjects = %v, want 12", report.TotalObjects)
	}
	if want := "All systems nominal. Continue standard operations."; report.Recommendation != want {
		t.Errorf("Recommendation = %q, want %q", report.Recommendation, want)
	}
	if !report.GeneratedAt.Equal(now) {
		t.Errorf("GeneratedAt = %v, want %v", report.GeneratedAt, now)
	}
}

func alertWith(severity string, risk float64) model.Alert {
	return model.Alert{Type: model.AlertConjunction, Severity: severity, RiskScore: risk}
}

func TestSummarizeMissionImpact_StatusThresholds(t *testing.T) {
	cases := []struct {
		name   string
		alerts []model.Alert
		status model.MissionStatus
	}{
		{
			"low average, no high severity",
			[]model.Alert{alertWith("LOW", 30), alertWith("LOW", 30)},
			model.MissionModerate,
		},
		{
			"single high severity dominates a low average",
			[]model.Alert{alertWith("HIGH", 30)},
			model.MissionElevated,
		},
		{
			"high average without high severities",
			[]model.Alert{alertWith("MEDIUM", 55), alertWith("MEDIUM", 60)},
			model.MissionElevated,
		},
		{
			"more than three high severities",
			[]model.Alert{alertWith("HIGH", 30), alertWith("HIGH", 30), alertWith("CRITICAL", 30), alertWith("HIGH", 30)},
			model.MissionCritical,
		},
		{
			"critical average",
			[]model.Alert{alertWith("MEDIUM", 80), alertWith("MEDIUM", 75)},
			model.MissionCritical,
		},
		{
			"quiet",
			[]model.Alert{alertWith("LOW", 10)},
			model.MissionNormal,
		},
	}
	for _, tc := range cases {
		report := SummarizeMissionImpact(tc.alerts, 5, time.Now())
		if report.OverallStatus != tc.status {
			t.Errorf("%s: OverallStatus = %v, want %v", tc.name, report.OverallStatus, tc.status)
		}
	}
}

func TestSummarizeMissionImpact_Counts(t *testing.T) {
	alerts := []model.Alert{
		alertWith("HIGH", 80),
		alertWith("CRITICAL", 90),
		alertWith("MEDIUM", 40),
		alertWith("LOW", 10),
	}
	report := SummarizeMissionImpact(alerts, 3, time.Now())
	if report.HighRiskCount != 2 {
		t.Errorf("HighRiskCount = %d, want 2", report.HighRiskCount)
	}
	if report.MediumRiskCount != 1 {
		t.Errorf("MediumRiskCount = %d, want 1", report.MediumRiskCount)
	}
	if report.AverageRisk != 55.0 {
		t.Errorf("AverageRisk = %v, want 55.0", report.AverageRisk)
	}
}

func TestSummarizeMissionImpact_AverageRounded(t *testing.T) {
	alerts := []model.Alert{
		alertWith("LOW", 10),
		alertWith("LOW", 10),
		alertWith("LOW", 11),
	}
	report := SummarizeMissionImpact(alerts, 1, time.Now())
	if report.AverageRisk != 10.33 {
		t.Errorf("AverageRisk = %v, want 10.33", report.AverageRisk)
	}
}
