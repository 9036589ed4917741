package route_test

import (
	"testing"

	"github.com/lintang-b-s/routetracker/pkg/datastructure"
	"github.com/lintang-b-s/routetracker/pkg/route"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalDistanceAndTime(t *testing.T) {
	rt := testRoute()

	assert.InDelta(t, 4*lonStepM, rt.GetTotalDistanceMeters(), 1.0)
	assert.Equal(t, 35.0, rt.GetTotalTimeSec())
	assert.InDelta(t, 0.0, rt.GetCurrentDistanceFromBeginMeters(), 1e-9)
	assert.InDelta(t, rt.GetTotalDistanceMeters(), rt.GetCurrentDistanceToEndMeters(), 1e-9)
}

func TestDistancesAfterMove(t *testing.T) {
	rt := testRoute()
	mustMove(t, rt, 1000, 0, 110.0015)

	assert.InDelta(t, 1.5*lonStepM, rt.GetCurrentDistanceFromBeginMeters(), 1.0)
	assert.InDelta(t, 2.5*lonStepM, rt.GetCurrentDistanceToEndMeters(), 1.0)
	assert.InDelta(t, rt.GetTotalDistanceMeters(),
		rt.GetCurrentDistanceFromBeginMeters()+rt.GetCurrentDistanceToEndMeters(), 1e-6)
	assert.InDelta(t, 0.0015, rt.GetMercatorDistanceFromBegin(), 1e-7)
}

func TestTimeToEndAtStart(t *testing.T) {
	rt := testRoute()
	assert.InDelta(t, 35.0, rt.GetCurrentTimeToEndSec(), 1e-9)
}

func TestTimeToEndInterpolatesWithinSection(t *testing.T) {
	rt := testRoute()

	// a quarter into the 15s section from index 2 to 4 leaves 11.25s of it
	mustMove(t, rt, 1000, 0, 110.0025)
	assert.InDelta(t, 11.25, rt.GetCurrentTimeToEndSec(), 0.1)
}

func TestTimeToEndDecreasesAlongRoute(t *testing.T) {
	rt := testRoute()

	samples := []float64{rt.GetCurrentTimeToEndSec()}
	for _, lon := range []float64{110.0015, 110.0025, 110.0035} {
		mustMove(t, rt, 1000+lon, 0, lon)
		samples = append(samples, rt.GetCurrentTimeToEndSec())
	}

	for i := 1; i < len(samples); i++ {
		assert.Less(t, samples[i], samples[i-1])
	}
	assert.InDelta(t, 20.0, samples[1], 0.1)
	assert.InDelta(t, 3.75, samples[3], 0.1)
}

func TestTimeToEndPastLastTimedPoint(t *testing.T) {
	rt := testRoute()
	rt.SetSectionTimes([]datastructure.TimeItem{
		datastructure.NewTimeItem(0, 0),
		datastructure.NewTimeItem(2, 20),
	})

	mustMove(t, rt, 1000, 0, 110.0035)
	assert.Equal(t, 0.0, rt.GetCurrentTimeToEndSec())
}

func TestTimeToEndWithoutTimes(t *testing.T) {
	rt := route.NewRoute("car-router", equatorLine(110.000, 110.001), "bare geometry")
	assert.Equal(t, 0.0, rt.GetCurrentTimeToEndSec())
	assert.Equal(t, 0.0, rt.GetTotalTimeSec())
}

func TestIsCurrentOnEnd(t *testing.T) {
	rt := testRoute()
	require.False(t, rt.IsCurrentOnEnd())

	mustMove(t, rt, 1000, 0, 110.004)
	assert.True(t, rt.IsCurrentOnEnd())
}
