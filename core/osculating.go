package core

import (
	"math"

	"github.com/signalsfoundry/cosmopulse/model"
)

// OsculatingElementsFromState derives instantaneous Keplerian elements from
// a single state vector, treating the orbit as an unperturbed ellipse around
// body at that instant.
//
// Degenerate geometry is not an error here: zero orbital energy (parabolic
// escape), non-positive semi-major axis, and zero angular momentum all yield
// the documented zero sentinels, because they describe physically valid
// trajectories.
func OsculatingElementsFromState(sv model.StateVector, body CelestialBody) model.OsculatingElements {
	mu := body.MuKm3S2
	r := sv.Position.Norm()
	v := sv.Velocity.Norm()
	if r == 0 {
		// State at the body's centre carries no orbital information.
		return model.OsculatingElements{}
	}

	energy := v*v/2 - mu/r

	a := 0.0
	if energy != 0 {
		a = -mu / (2 * energy)
	}

	h := sv.Position.Cross(sv.Velocity)
	hMag := h.Norm()

	// e_vec = ((v² − μ/r)·r − (r·v)·v) / μ
	rv := sv.Position.Dot(sv.Velocity)
	eVec := sv.Position.Scale(v*v - mu/r).Sub(sv.Velocity.Scale(rv)).Scale(1 / mu)
	e := eVec.Norm()

	inclDeg := 0.0
	if hMag > 0 {
		inclDeg = math.Acos(h.Z/hMag) * radToDeg
	}

	periodMin := 0.0
	if a > 0 {
		periodMin = 2 * math.Pi * math.Sqrt(a*a*a/mu) / 60
	}

	return model.OsculatingElements{
		SemiMajorAxisKm:    a,
		Eccentricity:       e,
		InclinationDeg:     inclDeg,
		PeriodMinutes:      periodMin,
		ApogeeKm:           a*(1+e) - body.RadiusKm,
		PerigeeKm:          a*(1-e) - body.RadiusKm,
		SpecificEnergy:     energy,
		AngularMomentumKm2: hMag,
	}
}
