package core

import (
	"math"

	"github.com/signalsfoundry/cosmopulse/model"
)

const radToDeg = 180.0 / math.Pi

// LatLonFromPosition projects a Cartesian position onto geodetic latitude
// and longitude, both in degrees. This is a spherical approximation: no
// oblateness or geoid correction is applied.
func LatLonFromPosition(pos model.Vec3) (latDeg, lonDeg float64) {
	r := pos.Norm()
	if r == 0 {
		return 0, 0
	}
	latDeg = math.Asin(pos.Z/r) * radToDeg
	lonDeg = math.Atan2(pos.Y, pos.X) * radToDeg
	return latDeg, lonDeg
}

// GroundTrack projects a trajectory to a sequence of ground-track points.
func GroundTrack(traj model.Trajectory) []model.GroundTrackPoint {
	track := make([]model.GroundTrackPoint, 0, len(traj))
	for _, sample := range traj {
		lat, lon := LatLonFromPosition(sample.Position)
		track = append(track, model.GroundTrackPoint{
			Time:         sample.Epoch,
			LatitudeDeg:  lat,
			LongitudeDeg: lon,
			AltitudeKm:   sample.AltitudeKm,
		})
	}
	return track
}
