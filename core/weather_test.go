package core

import (
	"testing"
	"time"

	"github.com/signalsfoundry/cosmopulse/model"
)

func TestAssessSpaceWeather_EmptyHistory(t *testing.T) {
	impact := AssessSpaceWeather(nil)
	if impact.Level != model.ImpactUnknown {
		t.Errorf("Level = %v, want UNKNOWN", impact.Level)
	}
	if impact.Score != 0 {
		t.Errorf("Score = %v, want 0", impact.Score)
	}
	if len(impact.Factors) != 0 {
		t.Errorf("Factors = %v, want none", impact.Factors)
	}
}

func TestAssessSpaceWeather_Golden(t *testing.T) {
	// flare C: 50·0.4 = 20, kp 4: 44·0.3 = 13.2, wind 500: 40·0.2 = 8,
	// density 1e-11: 1·0.1 = 0.1.
	snap := model.SpaceWeatherSnapshot{
		Timestamp:          time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		FlareClass:         model.FlareClassC,
		KpIndex:            4,
		SolarWindSpeedKmS:  500,
		AtmosphericDensity: 1e-11,
	}
	impact := AssessSpaceWeather([]model.SpaceWeatherSnapshot{snap})

	if got, want := impact.Score, 41.3; got != want {
		t.Errorf("Score = %v, want %v", got, want)
	}
	if impact.Level != model.ImpactModerate {
		t.Errorf("Level = %v, want MODERATE", impact.Level)
	}
	if !impact.Timestamp.Equal(snap.Timestamp) {
		t.Errorf("Timestamp = %v, want %v", impact.Timestamp, snap.Timestamp)
	}
}

func TestAssessSpaceWeather_UsesLatestSnapshot(t *testing.T) {
	quiet := model.SpaceWeatherSnapshot{FlareClass: model.FlareClassA, SolarWindSpeedKmS: 300}
	storm := model.SpaceWeatherSnapshot{FlareClass: model.FlareClassX, KpIndex: 9, SolarWindSpeedKmS: 800}

	impact := AssessSpaceWeather([]model.SpaceWeatherSnapshot{storm, quiet})
	if impact.Level != model.ImpactLow {
		t.Errorf("Level = %v, want LOW from the latest quiet snapshot", impact.Level)
	}

	impact = AssessSpaceWeather([]model.SpaceWeatherSnapshot{quiet, storm})
	// flare X: 100·0.4 = 40, kp 9: 99·0.3 = 29.7, wind 800: 100·0.2 = 20.
	if got, want := impact.Score, 89.7; got != want {
		t.Errorf("Score = %v, want %v", got, want)
	}
	if impact.Level != model.ImpactSevere {
		t.Errorf("Level = %v, want SEVERE", impact.Level)
	}
}

func TestAssessSpaceWeather_UnknownFlareClassScoresAsQuiet(t *testing.T) {
	known := AssessSpaceWeather([]model.SpaceWeatherSnapshot{{FlareClass: model.FlareClassA}})
	unknown := AssessSpaceWeather([]model.SpaceWeatherSnapshot{{FlareClass: model.FlareClass("Z")}})
	if known.Score != unknown.Score {
		t.Errorf("unrecognized flare class score = %v, want A-class %v", unknown.Score, known.Score)
	}
}

func TestAssessSpaceWeather_LevelThresholds(t *testing.T) {
	cases := []struct {
		kp    int
		flare model.FlareClass
		wind  float64
		level model.ImpactLevel
	}{
		{0, model.FlareClassA, 300, model.ImpactLow},      // 4.0
		{3, model.FlareClassB, 450, model.ImpactModerate}, // 10 + 9.9 + 6 = 25.9
		{6, model.FlareClassM, 550, model.ImpactHigh},     // 30 + 19.8 + 10 = 59.8
		{9, model.FlareClassX, 800, model.ImpactSevere},   // 40 + 29.7 + 20 = 89.7
	}
	for _, tc := range cases {
		impact := AssessSpaceWeather([]model.SpaceWeatherSnapshot{{
			FlareClass:        tc.flare,
			KpIndex:           tc.kp,
			SolarWindSpeedKmS: tc.wind,
		}})
		if impact.Level != tc.level {
			t.Errorf("flare %s kp %d wind %v: level = %v (score %v), want %v",
				tc.flare, tc.kp, tc.wind, impact.Level, impact.Score, tc.level)
		}
	}
}

func TestAssessSpaceWeather_FactorsDescribeInputs(t *testing.T) {
	impact := AssessSpaceWeather([]model.SpaceWeatherSnapshot{{
		FlareClass:        model.FlareClassM,
		KpIndex:           5,
		SolarWindSpeedKmS: 612.3,
	}})
	want := []string{
		"Solar Flare: M-class",
		"Kp Index: 5",
		"Solar Wind: 612.3 km/s",
	}
	if len(impact.Factors) != len(want) {
		t.Fatalf("Factors = %v, want %v", impact.Factors, want)
	}
	for i := range want {
		if impact.Factors[i] != want[i] {
			t.Errorf("Factors[%d] = %q, want %q", i, impact.Factors[i], want[i])
		}
	}
}
