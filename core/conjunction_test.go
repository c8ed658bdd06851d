package core

import (
	"math"
	"testing"
	"time"

	"github.com/signalsfoundry/cosmopulse/model"
)

func objectWithState(name string, pos, vel model.Vec3, rcs float64) *model.TrackedObject {
	return &model.TrackedObject{
		ID:    name,
		Name:  name,
		State: &model.StateVector{Position: pos, Velocity: vel},
		Radar: &model.RadarSignature{CrossSectionM2: rcs},
	}
}

func TestFindConjunctions_UsesPropagatedStates(t *testing.T) {
	now := time.Now()
	a := objectWithState("A", model.Vec3{X: 7000}, model.Vec3{Y: 7.5}, 0.1)
	b := objectWithState("B", model.Vec3{X: 7003}, model.Vec3{Y: 7.6}, 0.1)
	far := objectWithState("FAR", model.Vec3{X: 8000}, model.Vec3{Y: 7.0}, 0.1)

	events := FindConjunctions([]*model.TrackedObject{a, b, far}, 10, now)
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	e := events[0]
	if e.ObjectA != "A" || e.ObjectB != "B" {
		t.Errorf("pair = %s/%s, want A/B", e.ObjectA, e.ObjectB)
	}
	if math.Abs(e.DistanceKm-3) > 1e-9 {
		t.Errorf("DistanceKm = %v, want 3", e.DistanceKm)
	}
	if math.Abs(e.RelSpeedKmS-0.1) > 1e-9 {
		t.Errorf("RelSpeedKmS = %v, want 0.1", e.RelSpeedKmS)
	}
	if e.ThreatLevel != model.ThreatHigh {
		t.Errorf("ThreatLevel = %v, want HIGH", e.ThreatLevel)
	}
	if !e.Epoch.Equal(now) {
		t.Errorf("Epoch = %v, want %v", e.Epoch, now)
	}
}

func TestFindConjunctions_RadarRangeFallback(t *testing.T) {
	a := &model.TrackedObject{ID: "a", Name: "a",
		Radar: &model.RadarSignature{RangeKm: 500, VelocityKmS: 7.5, CrossSectionM2: 0.1}}
	b := &model.TrackedObject{ID: "b", Name: "b",
		Radar: &model.RadarSignature{RangeKm: 504, VelocityKmS: 7.9, CrossSectionM2: 0.1}}

	events := FindConjunctions([]*model.TrackedObject{a, b}, 10, time.Now())
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	if events[0].DistanceKm != 4 {
		t.Errorf("DistanceKm = %v, want 4 from range difference", events[0].DistanceKm)
	}
	if math.Abs(events[0].RelSpeedKmS-0.4) > 1e-9 {
		t.Errorf("RelSpeedKmS = %v, want 0.4", events[0].RelSpeedKmS)
	}
}

func TestFindConjunctions_SkipsPairsWithoutData(t *testing.T) {
	a := &model.TrackedObject{ID: "a", Name: "a"}
	b := &model.TrackedObject{ID: "b", Name: "b",
		Radar: &model.RadarSignature{RangeKm: 500, VelocityKmS: 7.5}}

	events := FindConjunctions([]*model.TrackedObject{a, b}, 10, time.Now())
	if len(events) != 0 {
		t.Fatalf("len(events) = %d, want 0 for pairs with no usable separation", len(events))
	}
}

func TestFindConjunctions_SortedByRiskDescending(t *testing.T) {
	now := time.Now()
	// Cluster of three: distances 1 (a-b), 7 (a-c), 6 (b-c).
	a := objectWithState("a", model.Vec3{X: 7000}, model.Vec3{Y: 7.5}, 0.1)
	b := objectWithState("b", model.Vec3{X: 7001}, model.Vec3{Y: 7.5}, 0.1)
	c := objectWithState("c", model.Vec3{X: 7007}, model.Vec3{Y: 7.5}, 0.1)

	events := FindConjunctions([]*model.TrackedObject{a, b, c}, 10, now)
	if len(events) != 3 {
		t.Fatalf("len(events) = %d, want 3", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].RiskScore > events[i-1].RiskScore {
			t.Fatalf("events not sorted by risk: %v before %v", events[i-1].RiskScore, events[i].RiskScore)
		}
	}
	if events[0].DistanceKm != 1 {
		t.Errorf("closest pair should rank first, got distance %v", events[0].DistanceKm)
	}
}

func TestFindConjunctions_ThresholdIsExclusive(t *testing.T) {
	a := objectWithState("a", model.Vec3{X: 7000}, model.Vec3{}, 0.1)
	b := objectWithState("b", model.Vec3{X: 7010}, model.Vec3{}, 0.1)

	events := FindConjunctions([]*model.TrackedObject{a, b}, 10, time.Now())
	if len(events) != 0 {
		t.Fatalf("separation exactly at the threshold must not count, got %d events", len(events))
	}
}

func TestClosestApproach(t *testing.T) {
	epoch := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	var a, b model.Trajectory
	// Separation shrinks to 2 km at the third sample, then grows.
	gaps := []float64{10, 5, 2, 6, 12}
	for i, gap := range gaps {
		at := epoch.Add(time.Duration(i) * time.Minute)
		a = append(a, trajectorySampleAt(at, model.Vec3{X: 7000}, model.Vec3{Y: 7.5}))
		b = append(b, trajectorySampleAt(at, model.Vec3{X: 7000 + gap}, model.Vec3{Y: 7.5}))
	}

	ca, ok := ClosestApproach(a, b)
	if !ok {
		t.Fatal("expected a closest approach")
	}
	if ca.DistanceKm != 2 {
		t.Errorf("DistanceKm = %v, want 2", ca.DistanceKm)
	}
	if want := epoch.Add(2 * time.Minute); !ca.Time.Equal(want) {
		t.Errorf("Time = %v, want %v", ca.Time, want)
	}
}

func TestClosestApproach_EmptyTrajectory(t *testing.T) {
	traj := model.Trajectory{trajectorySampleAt(time.Now(), model.Vec3{X: 7000}, model.Vec3{})}
	if _, ok := ClosestApproach(nil, traj); ok {
		t.Fatal("expected ok=false for an empty trajectory")
	}
}

// trajectorySampleAt builds a sample for geometry-only tests.
func trajectorySampleAt(at time.Time, pos, vel model.Vec3) model.TrajectorySample {
	return NewTrajectorySample(model.StateVector{Epoch: at, Position: pos, Velocity: vel})
}
