package model

import "time"

// StateVector is a propagated position/velocity pair at a single epoch.
// Positions are kilometres, velocities km/s. Produced only by the orbit
// propagator and never mutated afterwards.
type StateVector struct {
	Epoch    time.Time
	Position Vec3
	Velocity Vec3
}

// TrajectorySample is a state vector with the scalars the display and risk
// layers care about.
type TrajectorySample struct {
	StateVector
	AltitudeKm float64
	SpeedKmS   float64
}

// Trajectory is a time-increasing sequence of samples for one object. It may
// be shorter than the requested sample count: steps that fail to propagate
// are skipped, not replaced.
type Trajectory []TrajectorySample

// GroundTrackPoint is a trajectory sample projected to geodetic coordinates
// using a spherical Earth approximation.
type GroundTrackPoint struct {
	Time         time.Time
	LatitudeDeg  float64
	LongitudeDeg float64
	AltitudeKm   float64
}

// CloseApproach is the minimum separation found between two trajectories.
type CloseApproach struct {
	Time       time.Time
	DistanceKm float64
	PositionA  Vec3
	PositionB  Vec3
}
