package route

import (
	"sort"

	"github.com/lintang-b-s/routetracker/pkg/datastructure"
	"github.com/lintang-b-s/routetracker/pkg/geo"
)

// GetSubrouteCount reports how many subroutes the route consists of. A valid
// route is a single subroute, an invalid one has none.
func (r *Route) GetSubrouteCount() int {
	if r.IsValid() {
		return 1
	}
	return 0
}

// GetSubrouteInfo flattens the subroute into one record per segment, pairing
// every point after the first with the annotations that apply at it: the turn
// announced there (invalid turn if none), the altitude, cumulative meter and
// mercator distances and the section time of the last annotated point at or
// before it. Record i-1 describes the segment ending at point i, so a route of
// n points yields n-1 records. The annotation tracks must be consistent with
// the geometry, a route assembled through the setters and AppendRoute always
// is. Inconsistent tracks panic.
func (r *Route) GetSubrouteInfo(subrouteIdx int) []datastructure.SegmentInfo {
	if subrouteIdx >= r.GetSubrouteCount() {
		panic("route: subroute index out of range")
	}
	if !r.IsValid() {
		panic("route: subroute info of an invalid route")
	}

	points := r.poly.GetPoints()
	polySz := r.poly.GetSize()

	if len(r.turns) == 0 {
		panic("route: subroute info without turns")
	}
	if !sort.SliceIsSorted(r.turns, func(i, j int) bool { return r.turns[i].Index < r.turns[j].Index }) {
		panic("route: turns are not sorted by index")
	}
	if int(r.turns[len(r.turns)-1].Index) >= polySz {
		panic("route: turn index beyond the route geometry")
	}

	if len(r.altitudes) != 0 && len(r.altitudes) != polySz {
		panic("route: altitude track does not cover the route geometry")
	}

	if len(r.times) == 0 {
		panic("route: subroute info without section times")
	}
	if !sort.SliceIsSorted(r.times, func(i, j int) bool { return r.times[i].Index < r.times[j].Index }) {
		panic("route: section times are not sorted by index")
	}
	if int(r.times[len(r.times)-1].Index) >= polySz {
		panic("route: section time index beyond the route geometry")
	}

	if len(r.traffic) != 0 && len(r.traffic)+1 != polySz {
		panic("route: traffic track does not cover the route geometry")
	}

	// the first point has no segment ending at it
	turnIdx := 0
	if r.turns[0].Index == 0 {
		turnIdx = 1
	}
	timeIdx := -1

	segments := make([]datastructure.SegmentInfo, 0, polySz-1)
	distMeters := 0.0
	distMerc := 0.0
	for i := 1; i < polySz; i++ {
		turn := datastructure.NewTurnItem(uint32(i), datastructure.UNKNOWN)
		if turnIdx != len(r.turns) && int(r.turns[turnIdx].Index) == i {
			turn = r.turns[turnIdx]
			turnIdx++
		}
		for timeIdx+1 != len(r.times) && int(r.times[timeIdx+1].Index) <= i {
			timeIdx++
		}
		timeFromStart := 0.0
		if timeIdx >= 0 {
			timeFromStart = r.times[timeIdx].Time
		}

		altitude := datastructure.InvalidAltitude
		if len(r.altitudes) != 0 {
			altitude = r.altitudes[i]
		}
		traffic := datastructure.SpeedGroupUnknown
		if len(r.traffic) != 0 {
			traffic = r.traffic[i-1]
		}

		distMeters += geo.DistanceOnEarth(points[i-1], points[i])
		distMerc += points[i-1].DistanceTo(points[i])

		segments = append(segments, datastructure.NewSegmentInfo(turn, points[i],
			altitude, distMeters, distMerc, timeFromStart, traffic))
	}
	return segments
}

// GetSubrouteSettings reports the routing settings, router id and uid of the
// subroute.
func (r *Route) GetSubrouteSettings(subrouteIdx int) SubrouteSettings {
	if subrouteIdx >= r.GetSubrouteCount() {
		panic("route: subroute index out of range")
	}
	return NewSubrouteSettings(r.settings, r.router, r.subrouteUID)
}

// SetSubrouteUid tags the subroute with an identifier handed out by the
// route book.
func (r *Route) SetSubrouteUid(subrouteIdx int, uid uint64) {
	if subrouteIdx >= r.GetSubrouteCount() {
		panic("route: subroute index out of range")
	}
	r.subrouteUID = uid
}
