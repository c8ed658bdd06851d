package model

import "time"

// ThreatLevel grades the severity of a predicted close approach.
type ThreatLevel string

const (
	ThreatLow      ThreatLevel = "LOW"
	ThreatMedium   ThreatLevel = "MEDIUM"
	ThreatHigh     ThreatLevel = "HIGH"
	ThreatCritical ThreatLevel = "CRITICAL"
)

// DebrisRisk is the per-object debris classification.
type DebrisRisk string

const (
	DebrisRiskLow      DebrisRisk = "LOW DEBRIS RISK"
	DebrisRiskModerate DebrisRisk = "MODERATE DEBRIS RISK"
	DebrisRiskHigh     DebrisRisk = "HIGH DEBRIS RISK"
)

// ConjunctionEvent records one predicted close approach between two tracked
// objects. Read-only after creation.
type ConjunctionEvent struct {
	ObjectA     string
	ObjectB     string
	NoradA      uint32
	NoradB      uint32
	Epoch       time.Time
	DistanceKm  float64
	RelSpeedKmS float64
	RiskScore   float64 // 0..100
	ThreatLevel ThreatLevel
}

// AlertType distinguishes the source of an alert.
type AlertType string

const (
	AlertConjunction  AlertType = "CONJUNCTION"
	AlertSpaceWeather AlertType = "SPACE_WEATHER"
	AlertDebris       AlertType = "DEBRIS"
)

// Alert is one prioritized operator notification. Alerts are ephemeral and
// regenerated on every assessment cycle.
type Alert struct {
	Type      AlertType
	Severity  string
	Message   string
	RiskScore float64 // 0..100
	Timestamp time.Time
}

// MissionStatus is the overall operational posture derived from the alert set.
type MissionStatus string

const (
	MissionNormal   MissionStatus = "NORMAL"
	MissionModerate MissionStatus = "MODERATE"
	MissionElevated MissionStatus = "ELEVATED"
	MissionCritical MissionStatus = "CRITICAL"
)

// MissionImpactReport summarizes one assessment cycle for reporting.
type MissionImpactReport struct {
	OverallStatus   MissionStatus
	TotalObjects    int
	HighRiskCount   int
	MediumRiskCount int
	AverageRisk     float64
	Recommendation  string
	GeneratedAt     time.Time
}
