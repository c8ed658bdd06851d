package core

import (
	"math"
	"sort"
	"time"

	"github.com/signalsfoundry/cosmopulse/model"
)

// DefaultConjunctionThresholdKm is the separation below which a pair of
// objects counts as a conjunction.
const DefaultConjunctionThresholdKm = 10.0

// defaultRCSM2 stands in for the radar cross-section of objects without a
// radar observation when scoring a pair.
const defaultRCSM2 = 0.05

// FindConjunctions scans a catalog snapshot for every unordered pair whose
// separation is below thresholdKm and scores each one. The scan is O(n²)
// over the snapshot by design; catalogs are at most a few hundred objects
// per cycle. Events come back sorted by risk score descending, ties kept in
// pair order.
//
// Separation uses the true 3-D distance between propagated states when both
// objects carry one; otherwise it falls back to the absolute difference of
// the radar ranges. Pairs with neither source are skipped.
func FindConjunctions(objects []*model.TrackedObject, thresholdKm float64, now time.Time) []model.ConjunctionEvent {
	if thresholdKm <= 0 {
		thresholdKm = DefaultConjunctionThresholdKm
	}

	var events []model.ConjunctionEvent
	for i := 0; i < len(objects); i++ {
		for j := i + 1; j < len(objects); j++ {
			a, b := objects[i], objects[j]

			dist, relSpeed, ok := pairSeparation(a, b)
			if !ok || dist >= thresholdKm {
				continue
			}

			risk := ScoreCollisionRisk(dist, relSpeed, objectRCS(a), objectRCS(b))
			events = append(events, model.ConjunctionEvent{
				ObjectA:     a.Name,
				ObjectB:     b.Name,
				NoradA:      a.NoradID,
				NoradB:      b.NoradID,
				Epoch:       now,
				DistanceKm:  dist,
				RelSpeedKmS: relSpeed,
				RiskScore:   risk.RiskScore,
				ThreatLevel: risk.ThreatLevel,
			})
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].RiskScore > events[j].RiskScore
	})
	return events
}

func pairSeparation(a, b *model.TrackedObject) (distanceKm, relSpeedKmS float64, ok bool) {
	if a.State != nil && b.State != nil {
		return a.State.Position.DistanceTo(b.State.Position),
			a.State.Velocity.Sub(b.State.Velocity).Norm(),
			true
	}
	if a.Radar != nil && b.Radar != nil {
		// Scalar range proxy: coarse, but usable when propagation is
		// unavailable for either object.
		return math.Abs(a.Radar.RangeKm - b.Radar.RangeKm),
			math.Abs(a.Radar.VelocityKmS - b.Radar.VelocityKmS),
			true
	}
	return 0, 0, false
}

func objectRCS(o *model.TrackedObject) float64 {
	if o.Radar == nil {
		return defaultRCSM2
	}
	return o.Radar.CrossSectionM2
}

// ClosestApproach returns the minimum separation between two trajectories,
// compared sample-by-sample; the trajectories are assumed to share their
// sampling instants. Returns false when either trajectory is empty.
func ClosestApproach(a, b model.Trajectory) (model.CloseApproach, bool) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return model.CloseApproach{}, false
	}

	best := model.CloseApproach{DistanceKm: math.Inf(1)}
	for i := 0; i < n; i++ {
		d := a[i].Position.DistanceTo(b[i].Position)
		if d < best.DistanceKm {
			best = model.CloseApproach{
				Time:       a[i].Epoch,
				DistanceKm: d,
				PositionA:  a[i].Position,
				PositionB:  b[i].Position,
			}
		}
	}
	return best, true
}
