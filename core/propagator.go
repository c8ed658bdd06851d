package core

import (
	"fmt"
	"math"
	"time"

	satellite "github.com/joshuaferrara/go-satellite"

	"github.com/signalsfoundry/cosmopulse/model"
)

// maxSaneRadiusKm bounds the geocentric distance a propagated state may
// report before it is treated as numerical divergence. Generous enough for
// highly eccentric orbits, far below anything SGP4 can model credibly.
const maxSaneRadiusKm = 200000.0

// PropagationCode identifies the class of propagation failure. Callers
// branch on the code: debris classification treats a decayed orbit
// differently from a diverging one.
type PropagationCode int

const (
	// PropagationCodeMeanMotion: mean motion is zero or negative.
	PropagationCodeMeanMotion PropagationCode = iota + 1
	// PropagationCodeEccentricity: eccentricity outside [0, 1).
	PropagationCodeEccentricity
	// PropagationCodeDecayed: the computed position is at or below the
	// reference body's surface; the object has likely re-entered.
	PropagationCodeDecayed
	// PropagationCodeDiverged: the model produced NaN/Inf output or a
	// position magnitude beyond any credible orbit.
	PropagationCodeDiverged
)

func (c PropagationCode) String() string {
	switch c {
	case PropagationCodeMeanMotion:
		return "mean_motion"
	case PropagationCodeEccentricity:
		return "eccentricity"
	case PropagationCodeDecayed:
		return "decayed"
	case PropagationCodeDiverged:
		return "diverged"
	default:
		return "unknown"
	}
}

// PropagationError is a numerical failure of the propagation model. The
// caller skips the affected sample; it never substitutes a default state.
type PropagationError struct {
	Code   PropagationCode
	Detail string
}

func (e *PropagationError) Error() string {
	return fmt.Sprintf("propagation failed (%s): %s", e.Code, e.Detail)
}

// StatePropagator produces a state vector for an instant. Implemented by
// SGP4Propagator; the interface exists so the sampler and engine can be
// tested against synthetic propagators.
type StatePropagator interface {
	StateAt(t time.Time) (model.StateVector, error)
}

// SGP4Propagator advances a parsed element set to arbitrary instants using
// the SGP4 analytic model. Accuracy degrades with distance from the element
// epoch; no long-horizon guarantee is made.
type SGP4Propagator struct {
	sat      satellite.Satellite
	elements *model.OrbitalElementSet
}

// NewSGP4Propagator initializes the SGP4 model for one element set. Element
// sets that cannot support propagation at all (non-positive mean motion,
// eccentricity outside [0,1), sub-orbital epoch elements) are rejected here
// with a typed *PropagationError rather than failing on every StateAt call.
func NewSGP4Propagator(set *model.OrbitalElementSet) (*SGP4Propagator, error) {
	if set == nil {
		return nil, &PropagationError{Code: PropagationCodeDiverged, Detail: "nil element set"}
	}
	if set.MeanMotionRevDay <= 0 {
		return nil, &PropagationError{
			Code:   PropagationCodeMeanMotion,
			Detail: fmt.Sprintf("mean motion %v rev/day", set.MeanMotionRevDay),
		}
	}
	if set.Eccentricity < 0 || set.Eccentricity >= 1 {
		return nil, &PropagationError{
			Code:   PropagationCodeEccentricity,
			Detail: fmt.Sprintf("eccentricity %v outside [0,1)", set.Eccentricity),
		}
	}

	sat := satellite.TLEToSat(set.Line1, set.Line2, satellite.GravityWGS72)
	if sat.Error != 0 {
		return nil, &PropagationError{
			Code:   codeFromSGP4(int(sat.Error)),
			Detail: fmt.Sprintf("sgp4 init code %d: %s", sat.Error, sat.ErrorStr),
		}
	}

	return &SGP4Propagator{sat: sat, elements: set}, nil
}

// Elements returns the element set this propagator was built from.
func (p *SGP4Propagator) Elements() *model.OrbitalElementSet { return p.elements }

// StateAt propagates to t and returns the resulting state vector in
// inertial coordinates (km, km/s). Failures carry a distinguishable
// *PropagationError code.
//
// satellite.Propagate takes the Satellite by value, so error codes set
// during propagation are not visible here; runtime failures are detected
// from the output instead.
func (p *SGP4Propagator) StateAt(t time.Time) (model.StateVector, error) {
	t = t.UTC()
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	pos, vel := satellite.Propagate(p.sat, year, int(month), day, hour, min, sec)

	if !finite(pos.X, pos.Y, pos.Z, vel.X, vel.Y, vel.Z) {
		return model.StateVector{}, &PropagationError{
			Code:   PropagationCodeDiverged,
			Detail: "output is NaN or Inf",
		}
	}

	r := math.Sqrt(pos.X*pos.X + pos.Y*pos.Y + pos.Z*pos.Z)
	if r <= EarthRadiusKm {
		return model.StateVector{}, &PropagationError{
			Code:   PropagationCodeDecayed,
			Detail: fmt.Sprintf("position magnitude %.1f km at or below surface", r),
		}
	}
	if r > maxSaneRadiusKm {
		return model.StateVector{}, &PropagationError{
			Code:   PropagationCodeDiverged,
			Detail: fmt.Sprintf("position magnitude %.1f km beyond model validity", r),
		}
	}

	return model.StateVector{
		Epoch:    t,
		Position: model.Vec3{X: pos.X, Y: pos.Y, Z: pos.Z},
		Velocity: model.Vec3{X: vel.X, Y: vel.Y, Z: vel.Z},
	}, nil
}

// codeFromSGP4 maps the library's Vallado-style init error codes onto the
// engine's taxonomy.
func codeFromSGP4(code int) PropagationCode {
	switch code {
	case 1, 3, 4:
		// mean/perturbed eccentricity or semi-latus rectum out of range
		return PropagationCodeEccentricity
	case 2:
		return PropagationCodeMeanMotion
	case 5, 6:
		// epoch elements sub-orbital, or satellite decayed
		return PropagationCodeDecayed
	default:
		return PropagationCodeDiverged
	}
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
