package geo

import (
	"math"

	"github.com/lintang-b-s/routetracker/pkg/datastructure"
)

// PlaneAngle returns the angle in degrees of the segment p1 -> p2 on the
// projected plane, counterclockwise from the positive x axis.
func PlaneAngle(p1, p2 datastructure.Point) float64 {
	return radiansToDegree(math.Atan2(p2.Y-p1.Y, p2.X-p1.X))
}

// AngleToBearing converts a plane angle in degrees to a compass bearing,
// clockwise from north in [0, 360).
func AngleToBearing(angle float64) float64 {
	bearing := math.Mod(90.0-angle, 360.0)
	if bearing < 0 {
		bearing += 360.0
	}
	return bearing
}
