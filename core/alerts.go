package core

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/signalsfoundry/cosmopulse/model"
)

// Alert volume bounds. The per-source filters and the overall cap are part
// of the contract: downstream consumers rely on a bounded list.
const (
	maxAlerts            = 10
	maxConjunctionAlerts = 5
	alertRiskFloor       = 50.0
	debrisAlertRisk      = 70.0
)

// AggregateAlerts merges conjunction, space-weather, and per-object debris
// signals into one ranked alert list: at most five conjunction alerts with
// risk above 50, one weather alert when the impact score exceeds 50, and
// one debris alert per object classified HIGH. The merged list is sorted by
// risk score descending (stable) and truncated to ten entries.
func AggregateAlerts(conjunctions []model.ConjunctionEvent, weather WeatherImpact, objects []*model.TrackedObject, now time.Time) []model.Alert {
	var alerts []model.Alert

	taken := 0
	for _, conj := range conjunctions {
		if taken == maxConjunctionAlerts {
			break
		}
		if conj.RiskScore <= alertRiskFloor {
			continue
		}
		alerts = append(alerts, model.Alert{
			Type:     model.AlertConjunction,
			Severity: string(conj.ThreatLevel),
			Message: fmt.Sprintf("Close approach: %s & %s (%.2f km)",
				conj.ObjectA, conj.ObjectB, conj.DistanceKm),
			RiskScore: conj.RiskScore,
			Timestamp: conj.Epoch,
		})
		taken++
	}

	if weather.Score > alertRiskFloor {
		ts := weather.Timestamp
		if ts.IsZero() {
			ts = now
		}
		alerts = append(alerts, model.Alert{
			Type:      model.AlertSpaceWeather,
			Severity:  string(weather.Level),
			Message:   "Elevated space weather activity: " + strings.Join(weather.Factors, ", "),
			RiskScore: weather.Score,
			Timestamp: ts,
		})
	}

	for _, o := range objects {
		var rcs, altitude, velocity float64
		if o.Radar != nil {
			rcs = o.Radar.CrossSectionM2
			altitude = o.Radar.RangeKm
			velocity = o.Radar.VelocityKmS
		}
		risk := ClassifyDebrisRisk(rcs, altitude, velocity)
		if risk != model.DebrisRiskHigh {
			continue
		}
		alerts = append(alerts, model.Alert{
			Type:      model.AlertDebris,
			Severity:  string(model.ThreatHigh),
			Message:   fmt.Sprintf("%s: %s", o.Name, risk),
			RiskScore: debrisAlertRisk,
			Timestamp: now,
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].RiskScore > alerts[j].RiskScore
	})
	if len(alerts) > maxAlerts {
		alerts = alerts[:maxAlerts]
	}
	return alerts
}
