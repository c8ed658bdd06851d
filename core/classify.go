package core

import "github.com/signalsfoundry/cosmopulse/model"

// Debris classification inputs and thresholds. Small cross-sections,
// congested LEO altitude bands, and high velocity each contribute risk
// factors; the classification is a pure function of the three inputs.
const (
	debrisRCSThresholdM2      = 0.02
	debrisVelocityThreshold   = 7.8
	debrisHighFactorThreshold = 4
	debrisModFactorThreshold  = 2
)

// ClassifyDebrisRisk accumulates risk factors for one object: +2 for a
// debris-sized cross-section, +2 for an altitude inside the congested
// 400-600 or 800-1000 km bands, +1 for velocity above 7.8 km/s.
func ClassifyDebrisRisk(rcsM2, altitudeKm, velocityKmS float64) model.DebrisRisk {
	factors := 0
	if rcsM2 < debrisRCSThresholdM2 {
		factors += 2
	}
	if (altitudeKm >= 400 && altitudeKm <= 600) || (altitudeKm >= 800 && altitudeKm <= 1000) {
		factors += 2
	}
	if velocityKmS > debrisVelocityThreshold {
		factors++
	}

	switch {
	case factors >= debrisHighFactorThreshold:
		return model.DebrisRiskHigh
	case factors >= debrisModFactorThreshold:
		return model.DebrisRiskModerate
	default:
		return model.DebrisRiskLow
	}
}

// ClassifyObject derives a coarse object class from the radar signature.
// Objects without radar data are Unknown.
func ClassifyObject(o *model.TrackedObject) model.ObjectClass {
	if o.Radar == nil {
		return model.ObjectClassUnknown
	}
	switch {
	case o.Radar.CrossSectionM2 < debrisRCSThresholdM2:
		return model.ObjectClassDebris
	case o.Radar.RangeKm > 1000:
		return model.ObjectClassHighOrbit
	case o.Radar.RangeKm > 500:
		return model.ObjectClassMediumOrbit
	default:
		return model.ObjectClassLowOrbit
	}
}

// ClassifyCatalog applies ClassifyObject across a snapshot. Each record is
// classified independently of the others.
func ClassifyCatalog(objects []*model.TrackedObject) {
	for _, o := range objects {
		o.Classification = ClassifyObject(o)
	}
}
