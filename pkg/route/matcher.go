package route

import (
	"math"

	"github.com/lintang-b-s/routetracker/pkg/datastructure"
	"github.com/lintang-b-s/routetracker/pkg/geo"
)

// MoveIterator advances the matched position for a new fix. When the previous
// fix is fresh (younger than locationTimeThreshold) and the new one carries a
// speed, the projection prefers candidates at the predicted travel distance,
// which keeps the follower on the right leg of overlapping geometry. The
// search box around the fix grows with the reported horizontal accuracy.
// Returns whether a projection inside the box was found.
func (r *Route) MoveIterator(info datastructure.GpsInfo) bool {
	predictDistance := -1.0
	if r.currentTime > 0.0 && info.HasSpeed() {
		deltaT := info.Timestamp - r.currentTime
		if deltaT > 0.0 && deltaT < locationTimeThreshold {
			predictDistance = info.Speed * deltaT
		}
	}

	rect := geo.MetersToXY(info.Lat, info.Lon,
		math.Max(r.settings.MatchingThresholdM, info.HorizontalAccuracy))
	res := r.poly.UpdateProjectionByPrediction(rect, predictDistance)
	if r.simplifiedPoly.IsValid() {
		r.simplifiedPoly.UpdateProjectionByPrediction(rect, predictDistance)
	}

	if res.IsValid() {
		r.currentTime = info.Timestamp
	}
	return res.IsValid()
}

// MatchLocationToRoute snaps a fix onto the route for display. When the fix
// is within the matching threshold of the follower, its lat/lon are replaced
// by the projected position, the bearing follows the route segment when the
// profile allows it, and routeMatchingInfo receives the rendering snapshot.
// A fix farther away is left untouched.
func (r *Route) MatchLocationToRoute(location *datastructure.GpsInfo,
	routeMatchingInfo *datastructure.RouteMatchingInfo) {
	if !r.poly.IsValid() {
		return
	}

	iter := r.poly.GetCurrentIter()
	locationMerc := geo.FromLatLon(location.Lat, location.Lon)
	distFromRouteM := geo.DistanceOnEarth(iter.Point, locationMerc)
	if distFromRouteM >= r.settings.MatchingThresholdM {
		return
	}

	matched := geo.ToLatLon(iter.Point)
	location.Lat = matched.Lat
	location.Lon = matched.Lon
	if r.settings.MatchBearing {
		location.Bearing = geo.AngleToBearing(r.GetPolySegAngle(iter.Index))
	}

	routeMatchingInfo.Set(iter.Point, iter.Index, r.GetMercatorDistanceFromBegin())
}

// GetPolySegAngle returns the plane angle in degrees of the first segment at
// or after ind with distinct endpoints. Zero length segments left over from
// graph unpacking are skipped.
func (r *Route) GetPolySegAngle(ind int) float64 {
	polySz := r.poly.GetSize()
	if ind+1 >= polySz {
		return 0
	}

	p1 := r.poly.GetPoint(ind)
	i := ind + 1
	p2 := r.poly.GetPoint(i)
	for p1.AlmostEqual(p2, pointEqualityEps) {
		i++
		if i >= polySz {
			break
		}
		p2 = r.poly.GetPoint(i)
	}
	if i == polySz {
		return 0
	}
	return geo.PlaneAngle(p1, p2)
}

// GetCurrentPosition exposes the matched point and its segment index.
func (r *Route) GetCurrentPosition() (datastructure.Point, int) {
	iter := r.poly.GetCurrentIter()
	return iter.Point, iter.Index
}
