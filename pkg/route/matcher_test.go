package route_test

import (
	"testing"

	"github.com/lintang-b-s/routetracker/pkg/datastructure"
	"github.com/lintang-b-s/routetracker/pkg/geo"
	"github.com/lintang-b-s/routetracker/pkg/route"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchLocationSnapsOntoRoute(t *testing.T) {
	rt := testRoute()

	// 22m north of the route start, inside the 50m car threshold
	fix := datastructure.NewGpsInfo(1000, 0.0002, 110.000, 10, -1, 0)
	var rmi datastructure.RouteMatchingInfo
	rt.MatchLocationToRoute(&fix, &rmi)

	assert.InDelta(t, 0.0, fix.Lat, 1e-9)
	assert.InDelta(t, 110.000, fix.Lon, 1e-9)
	// the car profile replaces the bearing with the segment heading, due east
	assert.InDelta(t, 90.0, fix.Bearing, 1e-9)

	require.True(t, rmi.HasMatchingInfo)
	assert.Equal(t, 0, rmi.IndexInRoute)
	assert.InDelta(t, 110.000, rmi.MatchedPoint.X, 1e-9)
	assert.InDelta(t, 0.0, rmi.DistFromStartMerc, 1e-12)
}

func TestMatchLocationFarFromRouteUntouched(t *testing.T) {
	rt := testRoute()

	// 1.1km north of the route
	fix := datastructure.NewGpsInfo(1000, 0.01, 110.000, 10, -1, 7.0)
	var rmi datastructure.RouteMatchingInfo
	rt.MatchLocationToRoute(&fix, &rmi)

	assert.InDelta(t, 0.01, fix.Lat, 1e-12)
	assert.InDelta(t, 7.0, fix.Bearing, 1e-12)
	assert.False(t, rmi.HasMatchingInfo)
}

func TestMatchLocationKeepsBearingForPedestrians(t *testing.T) {
	rt := testRoute()
	rt.SetRoutingSettings(route.PedestrianRoutingSettings())

	// 11m north, inside the 20m pedestrian threshold
	fix := datastructure.NewGpsInfo(1000, 0.0001, 110.000, 10, -1, 255)
	var rmi datastructure.RouteMatchingInfo
	rt.MatchLocationToRoute(&fix, &rmi)

	assert.InDelta(t, 0.0, fix.Lat, 1e-9)
	assert.InDelta(t, 255.0, fix.Bearing, 1e-12)
	assert.True(t, rmi.HasMatchingInfo)
}

func TestMatchLocationInvalidRoute(t *testing.T) {
	rt := route.NewRoute("car-router", equatorLine(110.0), "single point")

	fix := datastructure.NewGpsInfo(1000, 0.0001, 110.000, 10, -1, 0)
	var rmi datastructure.RouteMatchingInfo
	rt.MatchLocationToRoute(&fix, &rmi)

	assert.InDelta(t, 0.0001, fix.Lat, 1e-12)
	assert.False(t, rmi.HasMatchingInfo)
}

func TestMoveIteratorAdvances(t *testing.T) {
	rt := testRoute()

	ok := rt.MoveIterator(datastructure.NewGpsInfo(1000, 0.0001, 110.0015, 10, -1, 0))
	require.True(t, ok)
	_, ind := rt.GetCurrentPosition()
	assert.Equal(t, 1, ind)
	assert.InDelta(t, 1.5*lonStepM, rt.GetCurrentDistanceFromBeginMeters(), 1.0)

	ok = rt.MoveIterator(datastructure.NewGpsInfo(1010, 0, 110.0025, 10, -1, 0))
	require.True(t, ok)
	_, ind = rt.GetCurrentPosition()
	assert.Equal(t, 2, ind)
}

func TestMoveIteratorOffRouteKeepsPosition(t *testing.T) {
	rt := testRoute()
	mustMove(t, rt, 1000, 0, 110.0015)

	// 1.1km north, outside every search box candidate
	ok := rt.MoveIterator(datastructure.NewGpsInfo(1010, 0.01, 110.002, 10, -1, 0))
	assert.False(t, ok)
	_, ind := rt.GetCurrentPosition()
	assert.Equal(t, 1, ind)
}

// out and back along the equator: the return leg runs 5.5m north of the
// outbound leg, so a fix between the legs is ambiguous by pure distance.
func hairpinRoute() *route.Route {
	points := []datastructure.Point{
		geo.FromLatLon(0, 110.000),
		geo.FromLatLon(0, 110.002),
		geo.FromLatLon(0.00005, 110.000),
	}
	return route.NewRoute("car-router", points, "out and back")
}

func TestMoveIteratorPredictionPicksReturnLeg(t *testing.T) {
	plain := hairpinRoute()
	require.True(t, plain.MoveIterator(datastructure.NewGpsInfo(1000, 0, 110.0005, 10, -1, 0)))
	require.True(t, plain.MoveIterator(datastructure.NewGpsInfo(1003, 0.000005, 110.001, 10, -1, 0)))
	_, ind := plain.GetCurrentPosition()
	assert.Equal(t, 0, ind)

	// 111m/s for 3s predicts ~333m of travel, which lands on the return leg
	predicted := hairpinRoute()
	require.True(t, predicted.MoveIterator(datastructure.NewGpsInfo(1000, 0, 110.0005, 10, -1, 0)))
	require.True(t, predicted.MoveIterator(datastructure.NewGpsInfo(1003, 0.000005, 110.001, 10, lonStepM, 0)))
	_, ind = predicted.GetCurrentPosition()
	assert.Equal(t, 1, ind)
}

func TestMoveIteratorStaleFixSkipsPrediction(t *testing.T) {
	rt := hairpinRoute()
	require.True(t, rt.MoveIterator(datastructure.NewGpsInfo(1000, 0, 110.0005, 10, -1, 0)))

	// 61s since the previous fix, the speed is ignored
	require.True(t, rt.MoveIterator(datastructure.NewGpsInfo(1061, 0.000005, 110.001, 10, lonStepM, 0)))
	_, ind := rt.GetCurrentPosition()
	assert.Equal(t, 0, ind)
}

func TestGetPolySegAngleSkipsDuplicatePoints(t *testing.T) {
	points := []datastructure.Point{
		geo.FromLatLon(0, 110.000),
		geo.FromLatLon(0, 110.000),
		geo.FromLatLon(0.001, 110.000),
	}
	rt := route.NewRoute("car-router", points, "bridge ramp")

	// the zero length first segment is skipped, the heading is due north
	assert.InDelta(t, 90.0, rt.GetPolySegAngle(0), 1e-9)
	assert.Equal(t, 0.0, rt.GetPolySegAngle(2))
}
