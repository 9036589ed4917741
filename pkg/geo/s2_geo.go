package geo

import (
	"github.com/lintang-b-s/routetracker/pkg/datastructure"

	"github.com/golang/geo/s2"
)

// EarthDistanceM returns the great circle distance in meters between two
// geographic coordinates.
func EarthDistanceM(from, to datastructure.Coordinate) float64 {
	fromLatLng := s2.LatLngFromDegrees(from.Lat, from.Lon)
	toLatLng := s2.LatLngFromDegrees(to.Lat, to.Lon)
	return fromLatLng.Distance(toLatLng).Radians() * earthRadiusM
}
