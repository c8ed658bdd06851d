package timectrl

import (
	"sync"
	"time"
)

// Mode describes how the Controller advances assessment time.
type Mode int

const (
	// RealTime advances according to wall-clock time.
	RealTime Mode = iota
	// Accelerated advances as quickly as the loop can run while still
	// stepping by Tick, for demos and batch reprocessing.
	Accelerated
)

func (m Mode) String() string {
	if m == Accelerated {
		return "accelerated"
	}
	return "real-time"
}

// Controller drives the assessment cadence and notifies registered
// listeners on every tick.
type Controller struct {
	mu        sync.RWMutex
	StartTime time.Time
	Tick      time.Duration
	Mode      Mode

	// currentTime tracks the current assessment time. It is updated as
	// the controller advances.
	currentTime time.Time

	listeners []func(time.Time)
}

// NewController constructs a controller.
func NewController(start time.Time, tick time.Duration, mode Mode) *Controller {
	return &Controller{
		StartTime:   start,
		Tick:        tick,
		Mode:        mode,
		currentTime: start,
	}
}

// Now returns the current assessment time.
func (c *Controller) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentTime
}

// AddListener registers a callback invoked on every tick.
func (c *Controller) AddListener(fn func(time.Time)) {
	c.listeners = append(c.listeners, fn)
}

// Start runs the controller for the specified duration in a separate
// goroutine. It returns a channel that is closed when the controller
// finishes.
func (c *Controller) Start(duration time.Duration) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)

		c.mu.Lock()
		simTime := c.StartTime
		c.currentTime = simTime
		c.mu.Unlock()

		elapsed := time.Duration(0)

		var ticker *time.Ticker
		if c.Mode == RealTime {
			ticker = time.NewTicker(c.Tick)
			defer ticker.Stop()
		}

		for {
			if duration > 0 && elapsed >= duration {
				return
			}

			if ticker != nil {
				<-ticker.C
			}
			simTime = simTime.Add(c.Tick)
			elapsed += c.Tick

			c.mu.Lock()
			c.currentTime = simTime
			c.mu.Unlock()

			for _, fn := range c.listeners {
				fn(simTime)
			}
		}
	}()
	return done
}
