package catalog

import (
	"fmt"
	"sync"

	"github.com/signalsfoundry/cosmopulse/model"
)

// EventType indicates what kind of change happened in the catalog.
type EventType int

const (
	EventObjectUpdated EventType = iota
)

// Event is emitted to subscribers when a tracked object changes.
type Event struct {
	Type   EventType
	Object model.TrackedObject
}

// Store is an in-memory, thread-safe catalog of tracked objects plus the
// rolling space-weather history. Snapshots handed out by List are fresh
// slices; the stored objects themselves are shared pointers so state
// refreshes are visible to all readers of the same cycle.
type Store struct {
	mu sync.RWMutex

	objects map[string]*model.TrackedObject
	order   []string // insertion order, keeps snapshots deterministic

	weather []model.SpaceWeatherSnapshot

	subs []func(Event)
}

// NewStore constructs an empty catalog.
func NewStore() *Store {
	return &Store{
		objects: make(map[string]*model.TrackedObject),
	}
}

// AddObject adds a new tracked object. It returns an error if the ID
// already exists.
func (s *Store) AddObject(o *model.TrackedObject) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.objects[o.ID]; exists {
		return fmt.Errorf("object with ID %q already exists", o.ID)
	}
	// store pointer so the engine can refresh propagated state in place
	s.objects[o.ID] = o
	s.order = append(s.order, o.ID)
	return nil
}

// GetObject returns the object with the given ID, or nil if not found.
func (s *Store) GetObject(id string) *model.TrackedObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.objects[id]
}

// List returns a snapshot slice of all tracked objects in insertion order.
func (s *Store) List() []*model.TrackedObject {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]*model.TrackedObject, 0, len(s.order))
	for _, id := range s.order {
		res = append(res, s.objects[id])
	}
	return res
}

// Size returns the number of tracked objects.
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

// UpdateObjectState replaces an object's propagated state and notifies
// subscribers.
func (s *Store) UpdateObjectState(id string, sv model.StateVector) error {
	s.mu.Lock()
	o, ok := s.objects[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("object with ID %q not found", id)
	}
	state := sv
	o.State = &state
	event := Event{
		Type:   EventObjectUpdated,
		Object: *o, // copy for safety
	}
	subs := append([]func(Event){}, s.subs...)
	s.mu.Unlock()

	// Notify subscribers outside the lock to avoid deadlocks.
	for _, sub := range subs {
		sub(event)
	}
	return nil
}

// RecordWeather appends a space-weather snapshot to the history.
func (s *Store) RecordWeather(snap model.SpaceWeatherSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weather = append(s.weather, snap)
}

// WeatherHistory returns a snapshot of the recorded weather series, oldest
// first.
func (s *Store) WeatherHistory() []model.SpaceWeatherSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]model.SpaceWeatherSnapshot, len(s.weather))
	copy(res, s.weather)
	return res
}

// Subscribe registers a callback for catalog events. It returns an
// unsubscribe function.
func (s *Store) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
	idx := len(s.subs) - 1

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if idx < 0 || idx >= len(s.subs) {
			return
		}
		s.subs = append(s.subs[:idx], s.subs[idx+1:]...)
		idx = -1
	}
}
