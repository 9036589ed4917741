package geo

import (
	"math"

	"github.com/lintang-b-s/routetracker/pkg/datastructure"
)

const (
	mercatorMinBound = -180.0
	mercatorMaxBound = 180.0

	// meters to degrees along a meridian, 40008245 m is the polar circumference.
	degreeInMeters = 360.0 / 40008245.0

	minCosLat = 0.00001
)

func clampDegree(d float64) float64 {
	return math.Max(mercatorMinBound, math.Min(mercatorMaxBound, d))
}

func latToY(lat float64) float64 {
	lat = math.Max(-90.0, math.Min(90.0, lat))
	sinLat := math.Sin(degreeToRadians(lat))
	y := radiansToDegree(math.Log((1.0+sinLat)/(1.0-sinLat)) / 2.0)
	return clampDegree(y)
}

func yToLat(y float64) float64 {
	return radiansToDegree(2.0 * math.Atan(math.Tanh(0.5*degreeToRadians(y))))
}

// FromLatLon projects a geographic coordinate onto the mercator plane.
func FromLatLon(lat, lon float64) datastructure.Point {
	return datastructure.NewPoint(clampDegree(lon), latToY(lat))
}

// ToLatLon is the inverse of FromLatLon.
func ToLatLon(p datastructure.Point) datastructure.Coordinate {
	return datastructure.NewCoordinate(yToLat(p.Y), p.X)
}

// MetersToXY builds the mercator rect spanning halfWidthM meters in every
// direction around (lat, lon). The longitude offset is corrected by the
// cosine of the farthest latitude, so the rect never collapses near the poles.
func MetersToXY(lat, lon, halfWidthM float64) datastructure.Rect {
	latDegreeOffset := halfWidthM * degreeInMeters
	minLat := math.Max(-90.0, lat-latDegreeOffset)
	maxLat := math.Min(90.0, lat+latDegreeOffset)

	cosL := math.Max(math.Cos(degreeToRadians(math.Max(math.Abs(minLat), math.Abs(maxLat)))), minCosLat)
	lonDegreeOffset := halfWidthM * degreeInMeters / cosL
	minLon := math.Max(-180.0, lon-lonDegreeOffset)
	maxLon := math.Min(180.0, lon+lonDegreeOffset)

	bottomLeft := FromLatLon(minLat, minLon)
	topRight := FromLatLon(maxLat, maxLon)
	return datastructure.NewRect(bottomLeft.X, bottomLeft.Y, topRight.X, topRight.Y)
}

// MetersToMercator converts a ground distance in meters to mercator units,
// exact on the equator and shrinking towards the poles.
func MetersToMercator(m float64) float64 {
	return m * degreeInMeters
}

// DistanceOnEarth returns the great circle distance in meters between two
// mercator plane points.
func DistanceOnEarth(p1, p2 datastructure.Point) float64 {
	return EarthDistanceM(ToLatLon(p1), ToLatLon(p2))
}

func radiansToDegree(angle float64) float64 {
	return angle * (180.0 / math.Pi)
}
