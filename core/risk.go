package core

import (
	"math"

	"github.com/signalsfoundry/cosmopulse/model"
)

// Distance bands for the proximity score, in kilometres. These thresholds
// and the 0.6/0.3/0.1 component weights are a fixed scoring contract; the
// golden-value tests pin them bit-for-bit.
const (
	criticalThresholdKm  = 2.0
	collisionThresholdKm = 5.0
	warningThresholdKm   = 10.0
)

// CollisionRisk is the scored outcome for one close approach.
type CollisionRisk struct {
	RiskScore   float64 // 0..100
	ThreatLevel model.ThreatLevel

	DistanceKm  float64
	RelSpeedKmS float64

	ProximityScore float64
	VelocityScore  float64
	SizeScore      float64
}

// ScoreCollisionRisk converts distance, relative velocity and the two radar
// cross-sections into a bounded risk score and threat level. The function is
// deterministic and every produced score lies in [0, 100].
func ScoreCollisionRisk(distanceKm, relVelocityKmS, rcs1M2, rcs2M2 float64) CollisionRisk {
	var proximity float64
	var level model.ThreatLevel
	switch {
	case distanceKm <= criticalThresholdKm:
		proximity = 100
		level = model.ThreatCritical
	case distanceKm <= collisionThresholdKm:
		proximity = 80
		level = model.ThreatHigh
	case distanceKm <= warningThresholdKm:
		proximity = 50 * (1 - (distanceKm-collisionThresholdKm)/(warningThresholdKm-collisionThresholdKm))
		level = model.ThreatMedium
	default:
		proximity = 20 * math.Exp(-(distanceKm-warningThresholdKm)/10)
		level = model.ThreatLow
	}

	velocityScore := math.Min(100, relVelocityKmS*10)
	sizeScore := math.Min(100, (rcs1M2+rcs2M2)*500)

	risk := 0.6*proximity + 0.3*velocityScore + 0.1*sizeScore

	return CollisionRisk{
		RiskScore:      round2(clampScore(risk)),
		ThreatLevel:    level,
		DistanceKm:     distanceKm,
		RelSpeedKmS:    relVelocityKmS,
		ProximityScore: round2(proximity),
		VelocityScore:  round2(velocityScore),
		SizeScore:      round2(sizeScore),
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func clampScore(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 100 {
		return 100
	}
	return x
}
