package core

import (
	"context"
	"time"

	"github.com/signalsfoundry/cosmopulse/internal/logging"
	"github.com/signalsfoundry/cosmopulse/model"
)

// Sampler drives a StatePropagator over a time window to build an ordered
// trajectory.
type Sampler struct {
	Log logging.Logger
}

// Sample computes steps evenly spaced instants across duration starting at
// start and propagates at each. Instants that fail to propagate are skipped,
// so the returned trajectory may be shorter than steps, possibly empty.
// Callers must not assume a fixed length; skipped steps are never replaced
// with placeholder samples.
func (s Sampler) Sample(ctx context.Context, p StatePropagator, start time.Time, duration time.Duration, steps int) model.Trajectory {
	if steps <= 0 {
		return nil
	}
	log := s.Log
	if log == nil {
		log = logging.Noop()
	}

	stepSize := duration / time.Duration(steps)
	traj := make(model.Trajectory, 0, steps)
	for i := 0; i < steps; i++ {
		at := start.Add(time.Duration(i) * stepSize)
		sv, err := p.StateAt(at)
		if err != nil {
			log.Debug(ctx, "trajectory step skipped",
				logging.String("at", at.Format(time.RFC3339)),
				logging.String("error", err.Error()),
			)
			continue
		}
		traj = append(traj, NewTrajectorySample(sv))
	}
	return traj
}

// NewTrajectorySample derives the altitude and speed scalars for a state
// vector, using the mean Earth radius as the altitude reference.
func NewTrajectorySample(sv model.StateVector) model.TrajectorySample {
	return model.TrajectorySample{
		StateVector: sv,
		AltitudeKm:  sv.Position.Norm() - EarthRadiusKm,
		SpeedKmS:    sv.Velocity.Norm(),
	}
}
