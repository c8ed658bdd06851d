package core

import (
	"math"
	"time"

	"github.com/signalsfoundry/cosmopulse/model"
)

// CircularOrbit samples an idealized circular orbit of the given altitude
// and inclination around body. This is the engine's only non-Earth orbit
// model: a single two-body special case (typically Mars), not a multi-body
// solver. The orbital plane is inclined about the X axis and the period
// follows Kepler's third law.
func CircularOrbit(body CelestialBody, altitudeKm, inclinationDeg float64, start time.Time, duration time.Duration, steps int) model.Trajectory {
	if steps <= 0 {
		return nil
	}

	radius := body.RadiusKm + altitudeKm
	periodSec := 2 * math.Pi * math.Sqrt(radius*radius*radius/body.MuKm3S2)
	omega := 2 * math.Pi / periodSec
	inclRad := inclinationDeg * math.Pi / 180
	speed := math.Sqrt(body.MuKm3S2 / radius)

	cosI, sinI := math.Cos(inclRad), math.Sin(inclRad)
	stepSize := duration / time.Duration(steps)

	traj := make(model.Trajectory, 0, steps)
	for i := 0; i < steps; i++ {
		at := start.Add(time.Duration(i) * stepSize)
		angle := omega * float64(i) * stepSize.Seconds()
		cosA, sinA := math.Cos(angle), math.Sin(angle)

		pos := model.Vec3{
			X: radius * cosA,
			Y: radius * sinA * cosI,
			Z: radius * sinA * sinI,
		}
		vel := model.Vec3{
			X: -speed * sinA,
			Y: speed * cosA * cosI,
			Z: speed * cosA * sinI,
		}
		traj = append(traj, model.TrajectorySample{
			StateVector: model.StateVector{Epoch: at, Position: pos, Velocity: vel},
			AltitudeKm:  altitudeKm,
			SpeedKmS:    speed,
		})
	}
	return traj
}
