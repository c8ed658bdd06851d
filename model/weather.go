package model

import "time"

// FlareClass is the standard solar flare classification letter.
type FlareClass string

const (
	FlareClassA FlareClass = "A"
	FlareClassB FlareClass = "B"
	FlareClassC FlareClass = "C"
	FlareClassM FlareClass = "M"
	FlareClassX FlareClass = "X"
)

// SpaceWeatherSnapshot is one observation from the space-weather feed.
// Supplied externally; never mutated by the engine.
type SpaceWeatherSnapshot struct {
	Timestamp          time.Time
	FlareClass         FlareClass
	KpIndex            int     // 0..9
	SolarWindSpeedKmS  float64
	AtmosphericDensity float64 // kg/m³
}

// ImpactLevel grades the operational impact of space weather.
type ImpactLevel string

const (
	ImpactUnknown  ImpactLevel = "UNKNOWN"
	ImpactLow      ImpactLevel = "LOW"
	ImpactModerate ImpactLevel = "MODERATE"
	ImpactHigh     ImpactLevel = "HIGH"
	ImpactSevere   ImpactLevel = "SEVERE"
)
