package model

// OrbitalElementSet holds the raw two-line element record alongside the
// orbital parameters parsed from it. Immutable once parsed.
type OrbitalElementSet struct {
	Line1 string
	Line2 string

	InclinationDeg   float64
	RAANDeg          float64
	Eccentricity     float64 // unitless, 0..1
	ArgPerigeeDeg    float64
	MeanAnomalyDeg   float64
	MeanMotionRevDay float64
}

// PeriodMinutes derives the orbital period from the mean motion.
// A non-positive mean motion yields 0, a sentinel rather than an error.
func (e *OrbitalElementSet) PeriodMinutes() float64 {
	if e.MeanMotionRevDay <= 0 {
		return 0
	}
	return 1440.0 / e.MeanMotionRevDay
}

// OsculatingElements are instantaneous Keplerian parameters derived from a
// single state vector, as if the orbit were an unperturbed ellipse at that
// instant. Degenerate cases (parabolic energy, zero angular momentum) are
// represented by zero-valued fields, never by errors.
type OsculatingElements struct {
	SemiMajorAxisKm    float64
	Eccentricity       float64
	InclinationDeg     float64
	PeriodMinutes      float64
	ApogeeKm           float64
	PerigeeKm          float64
	SpecificEnergy     float64 // km²/s²
	AngularMomentumKm2 float64 // km²/s
}
