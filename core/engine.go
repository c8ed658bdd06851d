package core

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/signalsfoundry/cosmopulse/internal/logging"
	"github.com/signalsfoundry/cosmopulse/internal/observability"
	"github.com/signalsfoundry/cosmopulse/model"
)

// CatalogSource is what the engine needs from the catalog store: a
// read-only snapshot of objects and weather, plus the state write-back.
type CatalogSource interface {
	List() []*model.TrackedObject
	UpdateObjectState(id string, sv model.StateVector) error
	WeatherHistory() []model.SpaceWeatherSnapshot
}

// AssessmentConfig carries the engine's tunables and ambient dependencies.
// Zero values are usable: default threshold, noop logging, no metrics.
type AssessmentConfig struct {
	ThresholdKm float64
	Log         logging.Logger
	Metrics     *observability.EngineCollector
	Tracer      trace.Tracer
}

// CycleResult is the complete output of one assessment cycle. Each cycle
// produces a fresh result set; nothing is carried over or mutated in place.
type CycleResult struct {
	Conjunctions  []model.ConjunctionEvent
	WeatherImpact WeatherImpact
	Alerts        []model.Alert
	Report        model.MissionImpactReport
}

// Engine runs assessment cycles over a catalog: propagate every object to
// the cycle instant, scan for conjunctions, assess space weather, and
// reduce everything to alerts and a mission impact report.
type Engine struct {
	catalog     CatalogSource
	thresholdKm float64
	log         logging.Logger
	metrics     *observability.EngineCollector
	tracer      trace.Tracer

	mu sync.Mutex
	// propagators caches one propagator per object ID. A nil entry marks
	// an element set that was rejected at init; propagation is
	// deterministic, so retrying would change nothing.
	propagators map[string]StatePropagator
}

// NewEngine constructs an engine over the given catalog.
func NewEngine(cat CatalogSource, cfg AssessmentConfig) *Engine {
	if cfg.ThresholdKm <= 0 {
		cfg.ThresholdKm = DefaultConjunctionThresholdKm
	}
	if cfg.Log == nil {
		cfg.Log = logging.Noop()
	}
	if cfg.Tracer == nil {
		cfg.Tracer = otel.Tracer("cosmopulse/core")
	}
	return &Engine{
		catalog:     cat,
		thresholdKm: cfg.ThresholdKm,
		log:         cfg.Log,
		metrics:     cfg.Metrics,
		tracer:      cfg.Tracer,
		propagators: make(map[string]StatePropagator),
	}
}

// RunCycle executes one assessment cycle at the given instant. Catalog and
// weather inputs are read-only for the duration of the cycle; the only
// write-back is the refreshed per-object state.
func (e *Engine) RunCycle(ctx context.Context, now time.Time) CycleResult {
	started := time.Now()
	ctx, log := logging.WithCycleLogger(ctx, e.log)
	ctx, span := e.tracer.Start(ctx, "assessment_cycle")
	defer span.End()

	objects := e.catalog.List()
	e.propagateAll(ctx, log, objects, now)
	ClassifyCatalog(objects)

	scanStart := time.Now()
	conjunctions := FindConjunctions(objects, e.thresholdKm, now)
	e.metrics.ObserveScan(time.Since(scanStart))

	weather := AssessSpaceWeather(e.catalog.WeatherHistory())
	alerts := AggregateAlerts(conjunctions, weather, objects, now)
	report := SummarizeMissionImpact(alerts, len(objects), now)

	e.metrics.SetCycleCounts(len(objects), len(conjunctions), len(alerts), missionStatusLevel(report.OverallStatus))
	e.metrics.ObserveCycle(time.Since(started))

	span.SetAttributes(
		attribute.Int("catalog.objects", len(objects)),
		attribute.Int("conjunctions", len(conjunctions)),
		attribute.Int("alerts", len(alerts)),
		attribute.String("mission.status", string(report.OverallStatus)),
	)

	log.Info(ctx, "assessment cycle complete",
		logging.Int("objects", len(objects)),
		logging.Int("conjunctions", len(conjunctions)),
		logging.Int("alerts", len(alerts)),
		logging.String("status", string(report.OverallStatus)),
		logging.Float64("avg_risk", report.AverageRisk),
	)

	return CycleResult{
		Conjunctions:  conjunctions,
		WeatherImpact: weather,
		Alerts:        alerts,
		Report:        report,
	}
}

// propagateAll advances every object to now, fanning out one goroutine per
// object. Pairs and objects are independent, so the only coordination is
// the final wait; failed objects keep their previous state.
func (e *Engine) propagateAll(ctx context.Context, log logging.Logger, objects []*model.TrackedObject, now time.Time) {
	type outcome struct {
		id    string
		state model.StateVector
		err   error
	}
	outcomes := make([]outcome, len(objects))

	var wg sync.WaitGroup
	for i, o := range objects {
		p := e.propagatorFor(ctx, log, o)
		if p == nil {
			outcomes[i] = outcome{id: o.ID, err: errSkipped}
			continue
		}
		wg.Add(1)
		go func(i int, id string, p StatePropagator) {
			defer wg.Done()
			sv, err := p.StateAt(now)
			outcomes[i] = outcome{id: id, state: sv, err: err}
		}(i, o.ID, p)
	}
	wg.Wait()

	for _, out := range outcomes {
		switch {
		case out.err == errSkipped:
			// counted when the propagator was first rejected
		case out.err != nil:
			e.metrics.RecordPropagation(false, propagationCodeOf(out.err))
			log.Debug(ctx, "propagation failed",
				logging.String("object", out.id),
				logging.String("error", out.err.Error()),
			)
		default:
			e.metrics.RecordPropagation(true, "")
			if err := e.catalog.UpdateObjectState(out.id, out.state); err != nil {
				log.Warn(ctx, "state update failed",
					logging.String("object", out.id),
					logging.String("error", err.Error()),
				)
			}
		}
	}
}

var errSkipped = errors.New("object has no usable propagator")

// propagatorFor returns the cached propagator for an object, initializing
// it on first sight. Objects whose element sets are rejected are cached as
// nil and reported once.
func (e *Engine) propagatorFor(ctx context.Context, log logging.Logger, o *model.TrackedObject) StatePropagator {
	e.mu.Lock()
	defer e.mu.Unlock()

	if p, seen := e.propagators[o.ID]; seen {
		return p
	}

	if o.Elements == nil {
		e.propagators[o.ID] = nil
		log.Warn(ctx, "object has no element set", logging.String("object", o.ID))
		return nil
	}

	p, err := NewSGP4Propagator(o.Elements)
	if err != nil {
		e.propagators[o.ID] = nil
		e.metrics.RecordPropagation(false, propagationCodeOf(err))
		log.Warn(ctx, "propagator init rejected element set",
			logging.String("object", o.ID),
			logging.String("error", err.Error()),
		)
		return nil
	}
	e.propagators[o.ID] = p
	return p
}

func propagationCodeOf(err error) string {
	var perr *PropagationError
	if errors.As(err, &perr) {
		return perr.Code.String()
	}
	return "unknown"
}

func missionStatusLevel(s model.MissionStatus) int {
	switch s {
	case model.MissionCritical:
		return 3
	case model.MissionElevated:
		return 2
	case model.MissionModerate:
		return 1
	default:
		return 0
	}
}
