package route

import (
	"math"
	"sort"

	"github.com/lintang-b-s/routetracker/pkg/geo"
)

func (r *Route) GetTotalDistanceMeters() float64 {
	if !r.poly.IsValid() {
		return 0.0
	}
	return r.poly.GetTotalDistanceM()
}

func (r *Route) GetCurrentDistanceFromBeginMeters() float64 {
	if !r.poly.IsValid() {
		return 0.0
	}
	return r.poly.GetDistanceFromBeginM()
}

func (r *Route) GetCurrentDistanceToEndMeters() float64 {
	if !r.poly.IsValid() {
		return 0.0
	}
	return r.poly.GetDistanceToEndM()
}

func (r *Route) GetMercatorDistanceFromBegin() float64 {
	return r.poly.GetMercatorDistanceFromBegin()
}

// GetTotalTimeSec returns the estimated travel time of the whole route, the
// cumulative seconds of the last time item. Zero when the track is missing.
func (r *Route) GetTotalTimeSec() float64 {
	if len(r.times) == 0 {
		return 0
	}
	return r.times[len(r.times)-1].Time
}

// GetCurrentTimeToEndSec estimates the remaining travel time from the matched
// position. The time between the two section times bracketing the position is
// scaled by the remaining share of the bracket's ground distance. Zero once
// the follower passed the last timed point or when the track is missing.
func (r *Route) GetCurrentTimeToEndSec() float64 {
	polySz := r.poly.GetSize()
	if len(r.times) == 0 || polySz == 0 {
		return 0
	}

	curIter := r.poly.GetCurrentIter()
	if !curIter.IsValid() {
		return 0
	}

	// first time item strictly after the current segment index
	idx := sort.Search(len(r.times), func(i int) bool {
		return uint32(curIter.Index) < r.times[i].Index
	})
	if idx == len(r.times) {
		return 0
	}

	time := r.times[idx].Time
	if idx > 0 {
		time -= r.times[idx-1].Time
	}

	distFn := func(start, end int) float64 {
		return r.poly.GetDistanceM(r.poly.GetIterToIndex(start), r.poly.GetIterToIndex(end))
	}

	bracketStart := 0
	if idx > 0 {
		bracketStart = int(r.times[idx-1].Index)
	}
	dist := distFn(bracketStart, int(r.times[idx].Index))

	if math.Abs(dist) > distanceEqualityEps {
		distRemain := distFn(curIter.Index, int(r.times[idx].Index)) -
			geo.DistanceOnEarth(curIter.Point, r.poly.GetPoint(curIter.Index))
		return (r.GetTotalTimeSec() - r.times[idx].Time) + time*(distRemain/dist)
	}
	return r.GetTotalTimeSec() - r.times[idx].Time
}

// IsCurrentOnEnd reports whether the follower is within arrival tolerance of
// the route end.
func (r *Route) IsCurrentOnEnd() bool {
	return r.poly.GetDistanceToEndM() < onEndToleranceM
}
