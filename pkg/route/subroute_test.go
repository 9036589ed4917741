package route_test

import (
	"testing"

	"github.com/lintang-b-s/routetracker/pkg/datastructure"
	"github.com/lintang-b-s/routetracker/pkg/route"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSubrouteCount(t *testing.T) {
	assert.Equal(t, 1, testRoute().GetSubrouteCount())
	assert.Equal(t, 0, route.NewRoute("car-router", nil, "no geometry").GetSubrouteCount())
}

func TestGetSubrouteInfo(t *testing.T) {
	rt := testRoute()
	rt.SetAltitudes([]int16{100, 105, 110, 115, 120})
	rt.SetTraffic([]datastructure.SpeedGroup{
		datastructure.SpeedGroupFree,
		datastructure.SpeedGroupNormal,
		datastructure.SpeedGroupSlow,
		datastructure.SpeedGroupHeavy,
	})

	segments := rt.GetSubrouteInfo(0)
	require.Len(t, segments, 4)

	// no turn is announced at the first junction
	assert.False(t, segments[0].Turn.IsValid())
	assert.Equal(t, int16(105), segments[0].Altitude)
	assert.Equal(t, datastructure.SpeedGroupFree, segments[0].Traffic)
	assert.InDelta(t, lonStepM, segments[0].DistFromStartMeters, 1.0)
	assert.InDelta(t, 0.001, segments[0].DistFromStartMerc, 1e-9)
	assert.Equal(t, 0.0, segments[0].TimeFromStartS)

	assert.Equal(t, datastructure.NewTurnItem(2, datastructure.TURN_RIGHT), segments[1].Turn)
	assert.Equal(t, 20.0, segments[1].TimeFromStartS)
	assert.Equal(t, datastructure.SpeedGroupNormal, segments[1].Traffic)

	assert.False(t, segments[2].Turn.IsValid())
	assert.Equal(t, 20.0, segments[2].TimeFromStartS)

	last := segments[3]
	assert.Equal(t, datastructure.NewTurnItem(4, datastructure.FINISH), last.Turn)
	assert.Equal(t, int16(120), last.Altitude)
	assert.Equal(t, datastructure.SpeedGroupHeavy, last.Traffic)
	assert.Equal(t, 35.0, last.TimeFromStartS)
	assert.InDelta(t, 4*lonStepM, last.DistFromStartMeters, 1.0)
	assert.InDelta(t, 0.004, last.DistFromStartMerc, 1e-9)

	points := rt.GetPolyline().GetPoints()
	for i, seg := range segments {
		assert.Equal(t, points[i+1], seg.Junction)
	}
}

func TestGetSubrouteInfoWithoutOptionalTracks(t *testing.T) {
	rt := testRoute()

	segments := rt.GetSubrouteInfo(0)
	require.Len(t, segments, 4)
	for _, seg := range segments {
		assert.Equal(t, datastructure.InvalidAltitude, seg.Altitude)
		assert.Equal(t, datastructure.SpeedGroupUnknown, seg.Traffic)
	}
}

func TestGetSubrouteInfoTwoPointRoute(t *testing.T) {
	rt := route.NewRoute("car-router", equatorLine(110.000, 110.001), "short hop")
	rt.SetTurnInstructions([]datastructure.TurnItem{
		datastructure.NewTurnItem(1, datastructure.FINISH),
	})
	rt.SetSectionTimes([]datastructure.TimeItem{
		datastructure.NewTimeItem(1, 12),
	})

	segments := rt.GetSubrouteInfo(0)
	require.Len(t, segments, 1)
	assert.Equal(t, datastructure.FINISH, segments[0].Turn.Turn)
	assert.Equal(t, 12.0, segments[0].TimeFromStartS)
	assert.InDelta(t, lonStepM, segments[0].DistFromStartMeters, 1.0)
}

func TestGetSubrouteInfoBeforeFirstTimedPoint(t *testing.T) {
	rt := testRoute()
	rt.SetSectionTimes([]datastructure.TimeItem{
		datastructure.NewTimeItem(2, 20),
		datastructure.NewTimeItem(4, 35),
	})

	segments := rt.GetSubrouteInfo(0)
	require.Len(t, segments, 4)
	// nothing is known about the first segment yet
	assert.Equal(t, 0.0, segments[0].TimeFromStartS)
	assert.Equal(t, 20.0, segments[1].TimeFromStartS)
}

func TestGetSubrouteInfoPanics(t *testing.T) {
	t.Run("index out of range", func(t *testing.T) {
		assert.Panics(t, func() { testRoute().GetSubrouteInfo(1) })
	})

	t.Run("invalid route", func(t *testing.T) {
		rt := route.NewRoute("car-router", nil, "no geometry")
		assert.Panics(t, func() { rt.GetSubrouteInfo(0) })
	})

	t.Run("missing turns", func(t *testing.T) {
		rt := testRoute()
		rt.SetTurnInstructions(nil)
		assert.Panics(t, func() { rt.GetSubrouteInfo(0) })
	})

	t.Run("unsorted turns", func(t *testing.T) {
		rt := testRoute()
		rt.SetTurnInstructions([]datastructure.TurnItem{
			datastructure.NewTurnItem(3, datastructure.TURN_RIGHT),
			datastructure.NewTurnItem(2, datastructure.TURN_LEFT),
		})
		assert.Panics(t, func() { rt.GetSubrouteInfo(0) })
	})

	t.Run("time index beyond geometry", func(t *testing.T) {
		rt := testRoute()
		rt.SetSectionTimes([]datastructure.TimeItem{datastructure.NewTimeItem(7, 20)})
		assert.Panics(t, func() { rt.GetSubrouteInfo(0) })
	})

	t.Run("altitude track length mismatch", func(t *testing.T) {
		rt := testRoute()
		rt.SetAltitudes([]int16{100, 105})
		assert.Panics(t, func() { rt.GetSubrouteInfo(0) })
	})

	t.Run("traffic track length mismatch", func(t *testing.T) {
		rt := testRoute()
		rt.SetTraffic([]datastructure.SpeedGroup{datastructure.SpeedGroupFree})
		assert.Panics(t, func() { rt.GetSubrouteInfo(0) })
	})
}

func TestSubrouteSettingsAndUid(t *testing.T) {
	rt := testRoute()

	ss := rt.GetSubrouteSettings(0)
	assert.Equal(t, "car-router", ss.Router)
	assert.Equal(t, route.CarRoutingSettings(), ss.Settings)
	assert.Equal(t, route.InvalidSubrouteUID, ss.UID)

	rt.SetSubrouteUid(0, 42)
	assert.Equal(t, uint64(42), rt.GetSubrouteSettings(0).UID)

	assert.Panics(t, func() { rt.SetSubrouteUid(1, 7) })
	assert.Panics(t, func() { rt.GetSubrouteSettings(2) })
}
