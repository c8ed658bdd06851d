// Package mockdata generates deterministic synthetic catalogs: tracked
// objects with valid two-line element records plus space-weather series.
// The same seed always yields the same catalog, which keeps demo runs and
// tests reproducible.
package mockdata

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/signalsfoundry/cosmopulse/core"
	"github.com/signalsfoundry/cosmopulse/model"
)

// Generator produces synthetic catalog and weather data from a seeded
// random source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator constructs a generator with an explicit seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Catalog generates n tracked objects with parsed element sets and radar
// signatures. Roughly one in four objects is debris-like: small radar
// cross-section, slightly higher relative velocity.
func (g *Generator) Catalog(n int, epoch time.Time) ([]*model.TrackedObject, error) {
	objects := make([]*model.TrackedObject, 0, n)
	for i := 0; i < n; i++ {
		o, err := g.Object(i, epoch)
		if err != nil {
			return nil, err
		}
		objects = append(objects, o)
	}
	return objects, nil
}

// Object generates the i-th tracked object for the given epoch.
func (g *Generator) Object(i int, epoch time.Time) (*model.TrackedObject, error) {
	noradID := 40000 + i
	debris := g.rng.Intn(4) == 0

	name := fmt.Sprintf("COSMO-SAT %03d", i+1)
	if debris {
		name = fmt.Sprintf("COSMO-DEB %03d", i+1)
	}

	line1, line2 := g.ElementLines(noradID, epoch)
	elements, err := core.ParseElementSet(line1, line2)
	if err != nil {
		return nil, fmt.Errorf("generate object %d: %w", i, err)
	}

	rcs := 0.05 + g.rng.Float64()*0.45
	if debris {
		rcs = 0.001 + g.rng.Float64()*0.018
	}
	radar := &model.RadarSignature{
		RangeKm:        400 + g.rng.Float64()*800,
		VelocityKmS:    7.2 + g.rng.Float64()*0.8,
		CrossSectionM2: rcs,
		ObservedAt:     epoch,
	}

	return &model.TrackedObject{
		ID:       fmt.Sprintf("obj-%05d", noradID),
		Name:     name,
		NoradID:  uint32(noradID),
		Elements: elements,
		Radar:    radar,
	}, nil
}

// ElementLines generates a standards-shaped two-line element record for a
// randomized low-orbit object. Both lines are 69 characters with valid
// modulo-10 checksums.
func (g *Generator) ElementLines(noradID int, epoch time.Time) (line1, line2 string) {
	utc := epoch.UTC()
	epochYY := utc.Year() % 100
	dayFraction := float64(utc.Hour())/24 +
		float64(utc.Minute())/1440 +
		float64(utc.Second())/86400
	epochDay := float64(utc.YearDay()) + dayFraction

	inclination := 40 + g.rng.Float64()*58
	raan := g.rng.Float64() * 360
	eccentricity := g.rng.Float64() * 0.02
	argPerigee := g.rng.Float64() * 360
	meanAnomaly := g.rng.Float64() * 360
	// 14 to 15.8 rev/day keeps everything in the low orbit regime.
	meanMotion := 14 + g.rng.Float64()*1.8
	launchYY := 98 + g.rng.Intn(2)
	launchNum := 1 + g.rng.Intn(120)

	line1 = fmt.Sprintf("1 %05dU %02d%03d%-3s %02d%012.8f  .00000000  00000-0  00000-0 0 %4d",
		noradID, launchYY, launchNum, "A", epochYY, epochDay, 999)
	line1 += strconv.Itoa(tleChecksum(line1))

	line2 = fmt.Sprintf("2 %05d %8.4f %8.4f %07d %8.4f %8.4f %11.8f%5d",
		noradID, inclination, raan, int(eccentricity*1e7+0.5),
		argPerigee, meanAnomaly, meanMotion, 1)
	line2 += strconv.Itoa(tleChecksum(line2))

	return line1, line2
}

// WeatherSeries generates n space-weather snapshots starting at start,
// spaced by step.
func (g *Generator) WeatherSeries(n int, start time.Time, step time.Duration) []model.SpaceWeatherSnapshot {
	series := make([]model.SpaceWeatherSnapshot, 0, n)
	for i := 0; i < n; i++ {
		series = append(series, g.WeatherSnapshot(start.Add(time.Duration(i)*step)))
	}
	return series
}

// WeatherSnapshot generates one space-weather observation. Flare classes
// are weighted towards the quiet end, as real solar activity is.
func (g *Generator) WeatherSnapshot(at time.Time) model.SpaceWeatherSnapshot {
	classes := []model.FlareClass{
		model.FlareClassA, model.FlareClassA, model.FlareClassB, model.FlareClassB,
		model.FlareClassC, model.FlareClassC, model.FlareClassM, model.FlareClassX,
	}
	return model.SpaceWeatherSnapshot{
		Timestamp:          at,
		FlareClass:         classes[g.rng.Intn(len(classes))],
		KpIndex:            g.rng.Intn(10),
		SolarWindSpeedKmS:  300 + g.rng.Float64()*450,
		AtmosphericDensity: 1e-12 + g.rng.Float64()*2e-11,
	}
}

// tleChecksum computes the modulo-10 line checksum: digits count as their
// value, minus signs count as 1, everything else as 0.
func tleChecksum(line string) int {
	sum := 0
	for _, ch := range line {
		switch {
		case ch >= '0' && ch <= '9':
			sum += int(ch - '0')
		case ch == '-':
			sum++
		}
	}
	return sum % 10
}
