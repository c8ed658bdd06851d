package core

import (
	"math"
	"testing"

	"github.com/signalsfoundry/cosmopulse/model"
)

func TestScoreCollisionRisk_Golden(t *testing.T) {
	// 3.5 km falls in the 80-point proximity band; velocity 0.5 km/s scores
	// 5; combined cross-section 0.13 m² scores 65.
	risk := ScoreCollisionRisk(3.5, 0.5, 0.05, 0.08)

	if got, want := risk.RiskScore, 56.0; got != want {
		t.Errorf("RiskScore = %v, want %v", got, want)
	}
	if risk.ThreatLevel != model.ThreatHigh {
		t.Errorf("ThreatLevel = %v, want HIGH", risk.ThreatLevel)
	}
	if got, want := risk.ProximityScore, 80.0; got != want {
		t.Errorf("ProximityScore = %v, want %v", got, want)
	}
	if got, want := risk.VelocityScore, 5.0; got != want {
		t.Errorf("VelocityScore = %v, want %v", got, want)
	}
	if got, want := risk.SizeScore, 65.0; got != want {
		t.Errorf("SizeScore = %v, want %v", got, want)
	}
}

func TestScoreCollisionRisk_ProximityBands(t *testing.T) {
	cases := []struct {
		distanceKm float64
		level      model.ThreatLevel
	}{
		{0, model.ThreatCritical},
		{2.0, model.ThreatCritical},
		{2.0001, model.ThreatHigh},
		{5.0, model.ThreatHigh},
		{7.5, model.ThreatMedium},
		{10.0, model.ThreatMedium},
		{10.0001, model.ThreatLow},
		{50, model.ThreatLow},
	}
	for _, tc := range cases {
		risk := ScoreCollisionRisk(tc.distanceKm, 0, 0, 0)
		if risk.ThreatLevel != tc.level {
			t.Errorf("distance %v km: level = %v, want %v", tc.distanceKm, risk.ThreatLevel, tc.level)
		}
	}
}

func TestScoreCollisionRisk_ProximityDecreasesWithinBands(t *testing.T) {
	// The linear band and the exponential tail are each decreasing. The two
	// are checked separately: the piecewise formula jumps upward across the
	// 10 km boundary and that discontinuity is part of the contract.
	bands := [][]float64{
		{5.5, 6, 8, 9.9, 10},
		{10.1, 12, 20, 100},
	}
	for _, band := range bands {
		prev := math.Inf(1)
		for _, d := range band {
			risk := ScoreCollisionRisk(d, 0, 0, 0)
			if risk.ProximityScore > prev {
				t.Fatalf("proximity score increased at %v km: %v > %v", d, risk.ProximityScore, prev)
			}
			prev = risk.ProximityScore
		}
	}
}

func TestScoreCollisionRisk_ExponentialTail(t *testing.T) {
	// At 12 km the proximity term is 20·e^(−0.2); with no velocity or size
	// contribution the total is 0.6 of that.
	risk := ScoreCollisionRisk(12, 0, 0, 0)
	if got, want := risk.RiskScore, 9.82; got != want {
		t.Errorf("RiskScore = %v, want %v", got, want)
	}
	if risk.ThreatLevel != model.ThreatLow {
		t.Errorf("ThreatLevel = %v, want LOW", risk.ThreatLevel)
	}
}

func TestScoreCollisionRisk_ComponentClamping(t *testing.T) {
	// Extreme inputs saturate every component at 100, never beyond.
	risk := ScoreCollisionRisk(1, 1000, 1000, 1000)
	if got, want := risk.RiskScore, 100.0; got != want {
		t.Errorf("RiskScore = %v, want %v", got, want)
	}
	if risk.VelocityScore != 100 || risk.SizeScore != 100 {
		t.Errorf("components not clamped: velocity=%v size=%v", risk.VelocityScore, risk.SizeScore)
	}
}

func TestScoreCollisionRisk_AlwaysBounded(t *testing.T) {
	for _, d := range []float64{0, 1, 5, 10, 100, 10000} {
		for _, v := range []float64{0, 7.5, 500} {
			risk := ScoreCollisionRisk(d, v, 0.5, 0.5)
			if risk.RiskScore < 0 || risk.RiskScore > 100 {
				t.Fatalf("risk out of bounds for d=%v v=%v: %v", d, v, risk.RiskScore)
			}
		}
	}
}
