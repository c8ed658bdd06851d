package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// EngineCollector bundles Prometheus metrics for the assessment engine and
// provides a ready-to-serve /metrics handler.
type EngineCollector struct {
	gatherer prometheus.Gatherer

	PropagationsTotal *prometheus.CounterVec
	CycleDuration     prometheus.Histogram
	ScanDuration      prometheus.Histogram

	CatalogObjects     prometheus.Gauge
	ActiveAlerts       prometheus.Gauge
	ConjunctionsFound  prometheus.Gauge
	MissionStatusLevel prometheus.Gauge
}

// NewEngineCollector registers engine Prometheus metrics against the
// provided registerer, defaulting to the global Prometheus registry when
// nil.
func NewEngineCollector(reg prometheus.Registerer) (*EngineCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	propagations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "engine_propagations_total",
		Help: "Total number of per-object propagations, labeled by result and failure code.",
	}, []string{"result", "code"})
	propagations, err := registerCounterVec(reg, propagations, "engine_propagations_total")
	if err != nil {
		return nil, err
	}

	cycleDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "engine_cycle_duration_seconds",
		Help:    "Duration of one full assessment cycle in seconds.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	})
	cycleDuration, err = registerHistogram(reg, cycleDuration, "engine_cycle_duration_seconds")
	if err != nil {
		return nil, err
	}

	scanDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "engine_conjunction_scan_duration_seconds",
		Help:    "Duration of the pairwise conjunction scan in seconds.",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	})
	scanDuration, err = registerHistogram(reg, scanDuration, "engine_conjunction_scan_duration_seconds")
	if err != nil {
		return nil, err
	}

	objects, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "engine_catalog_objects",
		Help: "Number of tracked objects in the current catalog snapshot.",
	}), "engine_catalog_objects")
	if err != nil {
		return nil, err
	}
	alerts, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "engine_active_alerts",
		Help: "Number of alerts produced by the latest assessment cycle.",
	}), "engine_active_alerts")
	if err != nil {
		return nil, err
	}
	conjunctions, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "engine_conjunctions_detected",
		Help: "Number of conjunction events found in the latest assessment cycle.",
	}), "engine_conjunctions_detected")
	if err != nil {
		return nil, err
	}
	status, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "engine_mission_status_level",
		Help: "Overall mission status of the latest cycle: 0=NORMAL 1=MODERATE 2=ELEVATED 3=CRITICAL.",
	}), "engine_mission_status_level")
	if err != nil {
		return nil, err
	}

	return &EngineCollector{
		gatherer:           gatherer,
		PropagationsTotal:  propagations,
		CycleDuration:      cycleDuration,
		ScanDuration:       scanDuration,
		CatalogObjects:     objects,
		ActiveAlerts:       alerts,
		ConjunctionsFound:  conjunctions,
		MissionStatusLevel: status,
	}, nil
}

// RecordPropagation counts one per-object propagation attempt. code is the
// failure code string; pass "" for a success.
func (c *EngineCollector) RecordPropagation(ok bool, code string) {
	if c == nil || c.PropagationsTotal == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "error"
	}
	c.PropagationsTotal.WithLabelValues(result, code).Inc()
}

// ObserveCycle records the duration of one assessment cycle.
func (c *EngineCollector) ObserveCycle(d time.Duration) {
	if c == nil || c.CycleDuration == nil {
		return
	}
	c.CycleDuration.Observe(d.Seconds())
}

// ObserveScan records the duration of one conjunction scan.
func (c *EngineCollector) ObserveScan(d time.Duration) {
	if c == nil || c.ScanDuration == nil {
		return
	}
	c.ScanDuration.Observe(d.Seconds())
}

// SetCycleCounts drives the per-cycle gauges directly from the engine.
func (c *EngineCollector) SetCycleCounts(objects, conjunctions, alerts, statusLevel int) {
	if c == nil {
		return
	}
	if c.CatalogObjects != nil {
		c.CatalogObjects.Set(float64(objects))
	}
	if c.ConjunctionsFound != nil {
		c.ConjunctionsFound.Set(float64(conjunctions))
	}
	if c.ActiveAlerts != nil {
		c.ActiveAlerts.Set(float64(alerts))
	}
	if c.MissionStatusLevel != nil {
		c.MissionStatusLevel.Set(float64(statusLevel))
	}
}

// Handler exposes a ready-to-use /metrics handler.
func (c *EngineCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
