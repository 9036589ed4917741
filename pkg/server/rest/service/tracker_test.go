package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/lintang-b-s/routetracker/pkg/datastructure"
	"github.com/lintang-b-s/routetracker/pkg/geo"
	"github.com/lintang-b-s/routetracker/pkg/kv"
	"github.com/lintang-b-s/routetracker/pkg/route"
	"github.com/lintang-b-s/routetracker/pkg/server"
	"github.com/lintang-b-s/routetracker/pkg/snap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// all fixture routes run east along a street in Surakarta
const fixtureLat = -7.5561

func openTestBook(t *testing.T) *kv.KVDB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()))
	require.NoError(t, err)
	kvDB := kv.NewKVDB(db)
	t.Cleanup(kvDB.Close)
	return kvDB
}

func newTestService(t *testing.T) *TrackerService {
	t.Helper()
	return NewTrackerService(openTestBook(t), snap.NewRouteSnapper())
}

func lineCoords(lons ...float64) []datastructure.Coordinate {
	coords := make([]datastructure.Coordinate, len(lons))
	for i, lon := range lons {
		coords[i] = datastructure.NewCoordinate(fixtureLat, lon)
	}
	return coords
}

// registerCommute registers a 3 point route with every annotation track set:
// a right turn onto Jalan Adi Sucipto at point 1 and arrival at point 2.
func registerCommute(t *testing.T, ts *TrackerService, id string, startLon float64) RouteSummary {
	t.Helper()
	summary, err := ts.RegisterRoute(context.Background(), id, "morning commute", "car-router", "car",
		lineCoords(startLon, startLon+0.001, startLon+0.002),
		[]datastructure.TurnItem{
			datastructure.NewTurnItem(1, datastructure.TURN_RIGHT),
			datastructure.NewTurnItem(2, datastructure.FINISH),
		},
		[]datastructure.TimeItem{
			datastructure.NewTimeItem(0, 0),
			datastructure.NewTimeItem(2, 20),
		},
		[]datastructure.StreetItem{
			datastructure.NewStreetItem(0, "Jalan Slamet Riyadi"),
			datastructure.NewStreetItem(1, "Jalan Adi Sucipto"),
		},
		[]datastructure.SpeedGroup{datastructure.SpeedGroupNormal, datastructure.SpeedGroupSlow},
		[]int16{92, 95, 96},
		[]string{"Jawa Timur"})
	require.NoError(t, err)
	return summary
}

func requireCode(t *testing.T, err error, code server.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	var svcErr *server.Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, code, svcErr.Code())
}

func TestRegisterRouteSummary(t *testing.T) {
	ts := newTestService(t)
	summary := registerCommute(t, ts, "commute-1", 110.790)

	assert.Equal(t, "commute-1", summary.ID)
	assert.Equal(t, "morning commute", summary.Name)
	assert.Equal(t, "car-router", summary.Router)
	assert.Equal(t, ProfileCar, summary.Profile)
	assert.Equal(t, 3, summary.PointCount)
	assert.Equal(t, 20.0, summary.TotalTimeS)

	pts := toMercator(lineCoords(110.790, 110.791, 110.792))
	wantDist := geo.DistanceOnEarth(pts[0], pts[1]) + geo.DistanceOnEarth(pts[1], pts[2])
	assert.InDelta(t, wantDist, summary.TotalDistanceM, 1e-9)

	decoded, err := datastructure.DecodePolyline(summary.Polyline)
	require.NoError(t, err)
	require.Len(t, decoded, 3)
	assert.InDelta(t, fixtureLat, decoded[0].Lat, 1e-4)
	assert.InDelta(t, 110.792, decoded[2].Lon, 1e-4)

	assert.Equal(t, 1, ts.ActiveRouteCount())

	_, err = ts.RegisterRoute(context.Background(), "commute-1", "again", "car-router", "car",
		lineCoords(110.790, 110.791), nil, nil, nil, nil, nil, nil)
	requireCode(t, err, server.ErrConflict)
}

func TestRegisterRouteValidation(t *testing.T) {
	ts := newTestService(t)
	ctx := context.Background()
	coords := lineCoords(110.790, 110.791, 110.792)

	_, err := ts.RegisterRoute(ctx, "", "x", "car-router", "car", coords, nil, nil, nil, nil, nil, nil)
	requireCode(t, err, server.ErrBadParamInput)

	_, err = ts.RegisterRoute(ctx, "r", "x", "car-router", "car", lineCoords(110.790), nil, nil, nil, nil, nil, nil)
	requireCode(t, err, server.ErrBadParamInput)

	_, err = ts.RegisterRoute(ctx, "r", "x", "car-router", "bicycle", coords, nil, nil, nil, nil, nil, nil)
	requireCode(t, err, server.ErrBadParamInput)

	unsorted := []datastructure.TurnItem{
		datastructure.NewTurnItem(2, datastructure.FINISH),
		datastructure.NewTurnItem(1, datastructure.TURN_LEFT),
	}
	_, err = ts.RegisterRoute(ctx, "r", "x", "car-router", "car", coords, unsorted, nil, nil, nil, nil, nil)
	requireCode(t, err, server.ErrBadParamInput)

	beyond := []datastructure.TurnItem{datastructure.NewTurnItem(9, datastructure.FINISH)}
	_, err = ts.RegisterRoute(ctx, "r", "x", "car-router", "car", coords, beyond, nil, nil, nil, nil, nil)
	requireCode(t, err, server.ErrBadParamInput)

	shortTraffic := []datastructure.SpeedGroup{datastructure.SpeedGroupFree}
	_, err = ts.RegisterRoute(ctx, "r", "x", "car-router", "car", coords, nil, nil, nil, shortTraffic, nil, nil)
	requireCode(t, err, server.ErrBadParamInput)

	shortAltitudes := []int16{92, 95}
	_, err = ts.RegisterRoute(ctx, "r", "x", "car-router", "car", coords, nil, nil, nil, nil, shortAltitudes, nil)
	requireCode(t, err, server.ErrBadParamInput)

	assert.Equal(t, 0, ts.ActiveRouteCount())
}

func TestUpdatePositionOnRoute(t *testing.T) {
	ts := newTestService(t)
	registerCommute(t, ts, "commute-1", 110.790)
	ctx := context.Background()

	fix := datastructure.NewGpsInfo(1000, fixtureLat, 110.7915, 10, -1, 0)
	pu, err := ts.UpdatePosition(ctx, "commute-1", fix)
	require.NoError(t, err)

	assert.True(t, pu.OnRoute)
	assert.True(t, pu.Snapped)
	assert.InDelta(t, fixtureLat, pu.Lat, 1e-9)
	assert.InDelta(t, 110.7915, pu.Lon, 1e-9)
	assert.InDelta(t, 90.0, pu.Bearing, 0.5)
	assert.Equal(t, 1, pu.SegmentIndex)
	assert.Equal(t, "Jalan Adi Sucipto", pu.CurrentStreet)
	assert.False(t, pu.OnEnd)

	pts := toMercator(lineCoords(110.790, 110.791, 110.792))
	halfway := geo.FromLatLon(fixtureLat, 110.7915)
	wantFromStart := geo.DistanceOnEarth(pts[0], pts[1]) + geo.DistanceOnEarth(pts[1], halfway)
	assert.InDelta(t, wantFromStart, pu.DistFromStartM, 1e-6)
	assert.InDelta(t, 5.0, pu.TimeToEndS, 0.01)

	// a fix far off the street leaves the follower where it was
	offRoute := datastructure.NewGpsInfo(1002, -7.60, 110.7915, 10, -1, 0)
	pu, err = ts.UpdatePosition(ctx, "commute-1", offRoute)
	require.NoError(t, err)
	assert.False(t, pu.OnRoute)
	assert.False(t, pu.Snapped)
	assert.InDelta(t, -7.60, pu.Lat, 1e-9)
	assert.InDelta(t, wantFromStart, pu.DistFromStartM, 1e-6)
}

func TestProgressAndDirection(t *testing.T) {
	ts := newTestService(t)
	registerCommute(t, ts, "commute-1", 110.790)
	ctx := context.Background()

	info, err := ts.Progress(ctx, "commute-1")
	require.NoError(t, err)
	assert.Equal(t, 20.0, info.TotalTimeS)
	assert.Equal(t, 20.0, info.TimeToEndS)
	assert.Equal(t, 0.0, info.DistFromStartM)
	assert.Equal(t, "Jalan Slamet Riyadi", info.CurrentStreet)

	fix := datastructure.NewGpsInfo(1000, fixtureLat, 110.7915, 10, -1, 0)
	_, err = ts.UpdatePosition(ctx, "commute-1", fix)
	require.NoError(t, err)

	info, err = ts.Progress(ctx, "commute-1")
	require.NoError(t, err)
	assert.InDelta(t, 5.0, info.TimeToEndS, 0.01)
	assert.False(t, info.OnEnd)
	require.True(t, info.HasDirection)
	assert.InDelta(t, fixtureLat, info.DirectionLat, 1e-6)
	assert.InDelta(t, 110.792, info.DirectionLon, 1e-6)

	arrival := datastructure.NewGpsInfo(1010, fixtureLat, 110.792, 10, -1, 0)
	_, err = ts.UpdatePosition(ctx, "commute-1", arrival)
	require.NoError(t, err)
	info, err = ts.Progress(ctx, "commute-1")
	require.NoError(t, err)
	assert.True(t, info.OnEnd)
}

func TestAppendLeg(t *testing.T) {
	ts := newTestService(t)
	registerCommute(t, ts, "commute-1", 110.790)
	ctx := context.Background()

	summary, err := ts.AppendLeg(ctx, "commute-1", lineCoords(110.792, 110.793),
		[]datastructure.TurnItem{datastructure.NewTurnItem(1, datastructure.FINISH)},
		[]datastructure.TimeItem{
			datastructure.NewTimeItem(0, 0),
			datastructure.NewTimeItem(1, 15),
		},
		nil, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.PointCount)
	assert.Equal(t, 35.0, summary.TotalTimeS)

	detail, err := ts.GetRoute(ctx, "commute-1")
	require.NoError(t, err)
	assert.Equal(t, []datastructure.TurnItem{
		datastructure.NewTurnItem(1, datastructure.TURN_RIGHT),
		datastructure.NewTurnItem(3, datastructure.FINISH),
	}, detail.Turns)
	assert.Equal(t, []datastructure.TimeItem{
		datastructure.NewTimeItem(0, 0),
		datastructure.NewTimeItem(3, 35),
	}, detail.Times)
	assert.Equal(t, []datastructure.SpeedGroup{
		datastructure.SpeedGroupNormal,
		datastructure.SpeedGroupSlow,
		datastructure.SpeedGroupUnknown,
	}, detail.Traffic)
	assert.Equal(t, []int16{92, 95, datastructure.InvalidAltitude, datastructure.InvalidAltitude}, detail.Altitudes)
}

func TestAppendLegRejectsBadLegs(t *testing.T) {
	ts := newTestService(t)
	registerCommute(t, ts, "commute-1", 110.790)
	ctx := context.Background()

	arrival := []datastructure.TurnItem{datastructure.NewTurnItem(1, datastructure.FINISH)}
	times := []datastructure.TimeItem{datastructure.NewTimeItem(1, 15)}

	// detached from the route end
	_, err := ts.AppendLeg(ctx, "commute-1", lineCoords(110.795, 110.796), arrival, times, nil, nil, nil)
	requireCode(t, err, server.ErrBadParamInput)

	// no arrival turn at the leg end
	noFinish := []datastructure.TurnItem{datastructure.NewTurnItem(1, datastructure.TURN_LEFT)}
	_, err = ts.AppendLeg(ctx, "commute-1", lineCoords(110.792, 110.793), noFinish, times, nil, nil, nil)
	requireCode(t, err, server.ErrBadParamInput)

	// no section times
	_, err = ts.AppendLeg(ctx, "commute-1", lineCoords(110.792, 110.793), arrival, nil, nil, nil, nil)
	requireCode(t, err, server.ErrBadParamInput)

	_, err = ts.AppendLeg(ctx, "missing", lineCoords(110.792, 110.793), arrival, times, nil, nil, nil)
	requireCode(t, err, server.ErrNotFound)
}

func TestNextTurnsInstructions(t *testing.T) {
	ts := newTestService(t)
	registerCommute(t, ts, "commute-1", 110.790)
	ctx := context.Background()

	previews, err := ts.NextTurns(ctx, "commute-1")
	require.NoError(t, err)
	require.Len(t, previews, 2)

	assert.Equal(t, uint32(1), previews[0].Index)
	assert.Equal(t, datastructure.TURN_RIGHT, previews[0].Sign)
	assert.Equal(t, "TURN_RIGHT", previews[0].Type)
	assert.Equal(t, "Turn right onto Jalan Adi Sucipto", previews[0].Instruction)
	assert.Equal(t, "you have arrived at your destination", previews[1].Instruction)
	assert.Less(t, previews[0].DistMeters, previews[1].DistMeters)

	// past the right turn only the arrival remains
	fix := datastructure.NewGpsInfo(1000, fixtureLat, 110.7915, 10, -1, 0)
	_, err = ts.UpdatePosition(ctx, "commute-1", fix)
	require.NoError(t, err)

	previews, err = ts.NextTurns(ctx, "commute-1")
	require.NoError(t, err)
	require.Len(t, previews, 1)
	assert.Equal(t, datastructure.FINISH, previews[0].Sign)
}

func TestSubrouteDetail(t *testing.T) {
	ts := newTestService(t)
	registerCommute(t, ts, "commute-1", 110.790)
	ctx := context.Background()

	detail, err := ts.Subroute(ctx, "commute-1", 0)
	require.NoError(t, err)

	assert.Equal(t, "car-router", detail.Router)
	assert.Equal(t, route.InvalidSubrouteUID, detail.UID)
	assert.Equal(t, 50.0, detail.MatchingThresholdM)
	require.Len(t, detail.Segments, 2)

	first := detail.Segments[0]
	assert.Equal(t, uint32(1), first.Index)
	assert.Equal(t, datastructure.TURN_RIGHT, first.Turn)
	assert.Equal(t, "TURN_RIGHT", first.TurnType)
	assert.InDelta(t, fixtureLat, first.Lat, 1e-6)
	assert.InDelta(t, 110.791, first.Lon, 1e-6)
	assert.Equal(t, int16(95), first.AltitudeM)
	assert.True(t, first.HasAltitude)
	assert.Equal(t, "NORMAL", first.Traffic)
	assert.Equal(t, 0.0, first.TimeFromStartS)

	last := detail.Segments[1]
	assert.Equal(t, datastructure.FINISH, last.Turn)
	assert.Equal(t, "SLOW", last.Traffic)
	assert.Equal(t, 20.0, last.TimeFromStartS)
	assert.Greater(t, last.DistFromStartM, first.DistFromStartM)

	_, err = ts.Subroute(ctx, "commute-1", 1)
	requireCode(t, err, server.ErrBadParamInput)

	require.NoError(t, ts.SetSubrouteUID(ctx, "commute-1", 0, 42))
	detail, err = ts.Subroute(ctx, "commute-1", 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), detail.UID)
}

func TestSubrouteNeedsAnnotations(t *testing.T) {
	ts := newTestService(t)
	ctx := context.Background()

	_, err := ts.RegisterRoute(ctx, "bare", "bare line", "car-router", "car",
		lineCoords(110.790, 110.791), nil, nil, nil, nil, nil, nil)
	require.NoError(t, err)

	_, err = ts.Subroute(ctx, "bare", 0)
	requireCode(t, err, server.ErrBadParamInput)
}

func TestNearbyAndStartingNear(t *testing.T) {
	ts := newTestService(t)
	registerCommute(t, ts, "commute-1", 110.790)
	registerCommute(t, ts, "school-run", 110.820)
	ctx := context.Background()

	summaries, err := ts.NearbyRoutes(ctx, fixtureLat, 110.7905, 200)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "commute-1", summaries[0].ID)

	summaries, err = ts.NearbyRoutes(ctx, -7.0, 110.0, 500)
	require.NoError(t, err)
	assert.Empty(t, summaries)

	_, err = ts.NearbyRoutes(ctx, fixtureLat, 110.7905, 0)
	requireCode(t, err, server.ErrBadParamInput)

	starting, err := ts.RoutesStartingNear(ctx, fixtureLat, 110.790)
	require.NoError(t, err)
	require.Len(t, starting, 1)
	assert.Equal(t, "commute-1", starting[0].ID)

	_, err = ts.RoutesStartingNear(ctx, -7.0, 110.0)
	requireCode(t, err, server.ErrNotFound)
}

func TestDeleteRouteLifecycle(t *testing.T) {
	ts := newTestService(t)
	registerCommute(t, ts, "commute-1", 110.790)
	ctx := context.Background()

	require.NoError(t, ts.DeleteRoute(ctx, "commute-1"))
	assert.Equal(t, 0, ts.ActiveRouteCount())

	_, err := ts.Progress(ctx, "commute-1")
	requireCode(t, err, server.ErrNotFound)

	err = ts.DeleteRoute(ctx, "commute-1")
	requireCode(t, err, server.ErrNotFound)

	summaries, err := ts.NearbyRoutes(ctx, fixtureLat, 110.7905, 200)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestSetProfileSwitchesMatching(t *testing.T) {
	ts := newTestService(t)
	registerCommute(t, ts, "commute-1", 110.790)
	ctx := context.Background()

	summary, err := ts.SetProfile(ctx, "commute-1", "pedestrian")
	require.NoError(t, err)
	assert.Equal(t, ProfilePedestrian, summary.Profile)

	// pedestrians keep the bearing their device reported
	fix := datastructure.NewGpsInfo(1000, fixtureLat, 110.7915, 10, -1, 255)
	pu, err := ts.UpdatePosition(ctx, "commute-1", fix)
	require.NoError(t, err)
	assert.True(t, pu.Snapped)
	assert.InDelta(t, 255.0, pu.Bearing, 1e-9)

	_, err = ts.SetProfile(ctx, "commute-1", "boat")
	requireCode(t, err, server.ErrBadParamInput)
}

func TestSessionRebuildAfterRestart(t *testing.T) {
	kvDB := openTestBook(t)
	ctx := context.Background()

	first := NewTrackerService(kvDB, snap.NewRouteSnapper())
	_, err := first.RegisterRoute(ctx, "commute-1", "morning commute", "car-router", "pedestrian",
		lineCoords(110.790, 110.791, 110.792),
		[]datastructure.TurnItem{datastructure.NewTurnItem(2, datastructure.FINISH)},
		[]datastructure.TimeItem{datastructure.NewTimeItem(2, 20)},
		[]datastructure.StreetItem{datastructure.NewStreetItem(0, "Jalan Slamet Riyadi")},
		nil, nil, []string{"Jawa Timur"})
	require.NoError(t, err)

	// a fresh service over the same book, as after a process restart
	second := NewTrackerService(kvDB, snap.NewRouteSnapper())
	require.NoError(t, second.Warm(ctx))

	summaries, err := second.NearbyRoutes(ctx, fixtureLat, 110.7905, 200)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, ProfilePedestrian, summaries[0].Profile)

	detail, err := second.GetRoute(ctx, "commute-1")
	require.NoError(t, err)
	assert.Equal(t, "morning commute", detail.Summary.Name)
	assert.Equal(t, []string{"Jawa Timur"}, detail.AbsentRegions)

	info, err := second.Progress(ctx, "commute-1")
	require.NoError(t, err)
	assert.Equal(t, "Jalan Slamet Riyadi", info.CurrentStreet)
	assert.InDelta(t, 20.0, info.TimeToEndS, 1e-9)
}

func TestWarmSurvivesEmptyBook(t *testing.T) {
	ts := newTestService(t)
	require.NoError(t, ts.Warm(context.Background()))

	_, err := ts.Progress(context.Background(), "missing")
	requireCode(t, err, server.ErrNotFound)
	assert.True(t, errors.Is(err, kv.ErrRouteNotFound))
}
