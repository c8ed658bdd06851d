package core

// EarthRadiusKm is the mean Earth radius used for all simple geometry
// calculations in this package (kilometres).
const EarthRadiusKm = 6371.0

// CelestialBody is the reference body for geometry and orbit derivations.
type CelestialBody struct {
	Name     string
	RadiusKm float64
	MuKm3S2  float64 // standard gravitational parameter, km³/s²
}

var (
	// Earth uses the mean radius and WGS-84 gravitational parameter.
	Earth = CelestialBody{Name: "Earth", RadiusKm: EarthRadiusKm, MuKm3S2: 398600.4418}

	// Mars supports the illustrative circular-orbit model only; there is
	// no SGP4-class propagation for Mars orbiters.
	Mars = CelestialBody{Name: "Mars", RadiusKm: 3389.5, MuKm3S2: 42828.0}
)
