package core

import (
	"fmt"
	"math"
	"time"

	"github.com/signalsfoundry/cosmopulse/model"
)

// WeatherImpact is the scored operational impact of the current space
// weather.
type WeatherImpact struct {
	Level     model.ImpactLevel
	Score     float64 // 0..100
	Factors   []string
	Timestamp time.Time
}

// flareScores maps solar flare classes onto their impact contribution.
// Unrecognized classes score as A-class.
var flareScores = map[model.FlareClass]float64{
	model.FlareClassA: 10,
	model.FlareClassB: 25,
	model.FlareClassC: 50,
	model.FlareClassM: 75,
	model.FlareClassX: 100,
}

// AssessSpaceWeather scores the most recent snapshot in history. An empty
// history is not a failure: it yields {UNKNOWN, 0} so downstream consumers
// can render a gap rather than abort the cycle.
func AssessSpaceWeather(history []model.SpaceWeatherSnapshot) WeatherImpact {
	if len(history) == 0 {
		return WeatherImpact{Level: model.ImpactUnknown, Score: 0}
	}
	latest := history[len(history)-1]

	flare, ok := flareScores[latest.FlareClass]
	if !ok {
		flare = flareScores[model.FlareClassA]
	}
	kp := math.Min(100, float64(latest.KpIndex)*11)
	wind := math.Max(0, math.Min(100, (latest.SolarWindSpeedKmS-300)/5))
	density := math.Min(100, latest.AtmosphericDensity*1e11)

	score := round2(clampScore(0.4*flare + 0.3*kp + 0.2*wind + 0.1*density))

	var level model.ImpactLevel
	switch {
	case score >= 75:
		level = model.ImpactSevere
	case score >= 50:
		level = model.ImpactHigh
	case score >= 25:
		level = model.ImpactModerate
	default:
		level = model.ImpactLow
	}

	return WeatherImpact{
		Level: level,
		Score: score,
		Factors: []string{
			fmt.Sprintf("Solar Flare: %s-class", latest.FlareClass),
			fmt.Sprintf("Kp Index: %d", latest.KpIndex),
			fmt.Sprintf("Solar Wind: %.1f km/s", latest.SolarWindSpeedKmS),
		},
		Timestamp: latest.Timestamp,
	}
}
