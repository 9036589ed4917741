package route_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/lintang-b-s/routetracker/pkg/datastructure"
	"github.com/lintang-b-s/routetracker/pkg/route"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// first leg of a two leg trip: three points ending at 110.002, 20s long
func firstLeg() *route.Route {
	rt := route.NewRoute("car-router", equatorLine(110.000, 110.001, 110.002), "first leg")
	rt.SetTurnInstructions([]datastructure.TurnItem{
		datastructure.NewTurnItem(2, datastructure.FINISH),
	})
	rt.SetSectionTimes([]datastructure.TimeItem{
		datastructure.NewTimeItem(0, 0),
		datastructure.NewTimeItem(2, 20),
	})
	rt.SetStreetNames([]datastructure.StreetItem{
		datastructure.NewStreetItem(0, "Jalan Slamet Riyadi"),
	})
	return rt
}

// second leg starting where the first ends, 15s long
func secondLeg() *route.Route {
	rt := route.NewRoute("car-router", equatorLine(110.002, 110.003), "second leg")
	rt.SetTurnInstructions([]datastructure.TurnItem{
		datastructure.NewTurnItem(1, datastructure.FINISH),
	})
	rt.SetSectionTimes([]datastructure.TimeItem{
		datastructure.NewTimeItem(0, 0),
		datastructure.NewTimeItem(1, 15),
	})
	rt.SetStreetNames([]datastructure.StreetItem{
		datastructure.NewStreetItem(1, "Jalan Adi Sucipto"),
	})
	return rt
}

func TestAppendRoute(t *testing.T) {
	combined := firstLeg()
	combined.AppendRoute(secondLeg())

	require.True(t, combined.IsValid())
	assert.Equal(t, 4, combined.GetPolyline().GetSize())
	assert.InDelta(t, 3*lonStepM, combined.GetTotalDistanceMeters(), 1.0)

	// the intermediate arrival is gone, the final one moved behind the splice
	assert.Equal(t, []datastructure.TurnItem{
		datastructure.NewTurnItem(3, datastructure.FINISH),
	}, combined.GetTurns())

	// the second leg's times are shifted by the first leg's 20s
	assert.Equal(t, []datastructure.TimeItem{
		datastructure.NewTimeItem(0, 0),
		datastructure.NewTimeItem(3, 35),
	}, combined.GetTimes())
	assert.Equal(t, 35.0, combined.GetTotalTimeSec())

	assert.Equal(t, []datastructure.StreetItem{
		datastructure.NewStreetItem(0, "Jalan Slamet Riyadi"),
		datastructure.NewStreetItem(3, "Jalan Adi Sucipto"),
	}, combined.GetStreets())
}

func TestAppendRouteToEmpty(t *testing.T) {
	combined := route.NewRoute("car-router", nil, "rebuilt")
	require.False(t, combined.IsValid())

	combined.AppendRoute(secondLeg())

	require.True(t, combined.IsValid())
	assert.Equal(t, 2, combined.GetPolyline().GetSize())
	assert.Equal(t, []datastructure.TurnItem{
		datastructure.NewTurnItem(1, datastructure.FINISH),
	}, combined.GetTurns())
	assert.Equal(t, []datastructure.TimeItem{
		datastructure.NewTimeItem(1, 15),
	}, combined.GetTimes())
}

func TestAppendRouteInvalidOtherIgnored(t *testing.T) {
	combined := firstLeg()
	combined.AppendRoute(route.NewRoute("car-router", equatorLine(110.002), "stub"))

	assert.Equal(t, 3, combined.GetPolyline().GetSize())
	assert.Equal(t, 20.0, combined.GetTotalTimeSec())
	assert.Len(t, combined.GetTurns(), 1)
}

func TestAppendRouteTrafficBackfill(t *testing.T) {
	withTraffic := firstLeg()
	withTraffic.SetTraffic([]datastructure.SpeedGroup{
		datastructure.SpeedGroupFree,
		datastructure.SpeedGroupNormal,
	})
	withTraffic.AppendRoute(secondLeg())

	assert.Equal(t, []datastructure.SpeedGroup{
		datastructure.SpeedGroupFree,
		datastructure.SpeedGroupNormal,
		datastructure.SpeedGroupUnknown,
	}, withTraffic.GetTraffic())

	withoutTraffic := firstLeg()
	tail := secondLeg()
	tail.SetTraffic([]datastructure.SpeedGroup{datastructure.SpeedGroupSlow})
	withoutTraffic.AppendRoute(tail)

	assert.Equal(t, []datastructure.SpeedGroup{
		datastructure.SpeedGroupUnknown,
		datastructure.SpeedGroupUnknown,
		datastructure.SpeedGroupSlow,
	}, withoutTraffic.GetTraffic())
}

func TestAppendRouteAltitudeBackfill(t *testing.T) {
	climb := firstLeg()
	climb.SetAltitudes([]int16{100, 110, 120})
	climb.AppendRoute(secondLeg())

	assert.Equal(t, []int16{100, 110, datastructure.InvalidAltitude, datastructure.InvalidAltitude},
		climb.GetAltitudes())

	flat := firstLeg()
	tail := secondLeg()
	tail.SetAltitudes([]int16{120, 130})
	flat.AppendRoute(tail)

	assert.Equal(t, []int16{datastructure.InvalidAltitude, datastructure.InvalidAltitude, 120, 130},
		flat.GetAltitudes())
}

func TestAppendRoutePanics(t *testing.T) {
	t.Run("gap between routes", func(t *testing.T) {
		combined := firstLeg()
		detached := route.NewRoute("car-router", equatorLine(110.0025, 110.0035), "detached")
		detached.SetTurnInstructions([]datastructure.TurnItem{
			datastructure.NewTurnItem(1, datastructure.FINISH),
		})
		detached.SetSectionTimes([]datastructure.TimeItem{
			datastructure.NewTimeItem(1, 10),
		})
		assert.Panics(t, func() { combined.AppendRoute(detached) })
	})

	t.Run("no arrival turn", func(t *testing.T) {
		combined := firstLeg()
		combined.SetTurnInstructions([]datastructure.TurnItem{
			datastructure.NewTurnItem(2, datastructure.TURN_RIGHT),
		})
		assert.Panics(t, func() { combined.AppendRoute(secondLeg()) })
	})

	t.Run("no section times", func(t *testing.T) {
		combined := firstLeg()
		combined.SetSectionTimes(nil)
		assert.Panics(t, func() { combined.AppendRoute(secondLeg()) })
	})
}

func TestAppendRouteChainInvariants(t *testing.T) {
	rand.Seed(uint64(time.Now().UnixNano()))

	for trial := 0; trial < 20; trial++ {
		legCount := 2 + rand.Intn(4)
		lon := 110.000
		totalSegments := 0
		totalTime := 0.0

		var combined *route.Route
		for leg := 0; leg < legCount; leg++ {
			segments := 1 + rand.Intn(5)
			lons := make([]float64, 0, segments+1)
			for j := 0; j <= segments; j++ {
				lons = append(lons, lon+float64(j)*0.001)
			}

			times := []datastructure.TimeItem{datastructure.NewTimeItem(0, 0)}
			legTime := 0.0
			for j := 1; j <= segments; j++ {
				legTime += 5 + rand.Float64()*10
				times = append(times, datastructure.NewTimeItem(uint32(j), legTime))
			}

			rt := route.NewRoute("car-router", equatorLine(lons...), fmt.Sprintf("leg %d", leg))
			rt.SetTurnInstructions([]datastructure.TurnItem{
				datastructure.NewTurnItem(uint32(segments), datastructure.FINISH),
			})
			rt.SetSectionTimes(times)

			if combined == nil {
				combined = rt
			} else {
				combined.AppendRoute(rt)
			}

			lon += float64(segments) * 0.001
			totalSegments += segments
			totalTime += legTime
		}

		require.True(t, combined.IsValid())
		polySz := combined.GetPolyline().GetSize()
		assert.Equal(t, totalSegments+1, polySz)
		assert.InDelta(t, totalTime, combined.GetTotalTimeSec(), 1e-9)

		turns := combined.GetTurns()
		require.Len(t, turns, 1)
		assert.Equal(t, datastructure.FINISH, turns[0].Turn)
		assert.Equal(t, uint32(polySz-1), turns[0].Index)

		times := combined.GetTimes()
		for i := 1; i < len(times); i++ {
			assert.Less(t, times[i-1].Index, times[i].Index)
			assert.LessOrEqual(t, times[i-1].Time, times[i].Time)
		}
		assert.Equal(t, uint32(polySz-1), times[len(times)-1].Index)

		segments := combined.GetSubrouteInfo(0)
		require.Len(t, segments, polySz-1)
		for i := 1; i < len(segments); i++ {
			assert.LessOrEqual(t, segments[i-1].DistFromStartMeters, segments[i].DistFromStartMeters)
		}
		assert.InDelta(t, totalTime, segments[len(segments)-1].TimeFromStartS, 1e-9)
	}
}
