package model

import "time"

// ObjectClass is a coarse classification of a tracked object derived from
// its radar signature and orbit regime.
type ObjectClass string

const (
	ObjectClassUnknown     ObjectClass = "Unknown"
	ObjectClassDebris      ObjectClass = "Debris"
	ObjectClassLowOrbit    ObjectClass = "Satellite (Low Orbit)"
	ObjectClassMediumOrbit ObjectClass = "Satellite (Medium Orbit)"
	ObjectClassHighOrbit   ObjectClass = "Satellite (High Orbit)"
)

// RadarSignature carries the radar-derived tracking attributes of an object.
// A nil signature means no radar observation is available.
type RadarSignature struct {
	RangeKm        float64
	VelocityKmS    float64
	CrossSectionM2 float64
	ObservedAt     time.Time
}

// TrackedObject is one catalog entry: identity, the element record it was
// created from, the latest radar observation, and the most recently
// propagated state vector.
type TrackedObject struct {
	ID      string
	Name    string
	NoradID uint32

	Elements *OrbitalElementSet
	Radar    *RadarSignature

	// State is the latest propagated state, nil until the first successful
	// propagation. Owned by the catalog; refreshed each assessment cycle.
	State *StateVector

	Classification ObjectClass
}
