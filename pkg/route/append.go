package route

import (
	"github.com/lintang-b-s/routetracker/pkg/datastructure"
	"github.com/lintang-b-s/routetracker/pkg/geo"
)

// AppendRoute splices a continuation onto this route. The first point of rhs
// must coincide with the last point of this route within AppendJoinToleranceM.
// The duplicated junction point, this route's arrival turn and its final
// section time are dropped, the continuation's annotation indices are shifted
// behind the existing geometry and its section times are shifted by this
// route's estimated total. Afterwards the route is revalidated and the
// follower rewinds to the start. Violated preconditions panic, splicing
// mismatched routes would corrupt every annotation track.
func (r *Route) AppendRoute(rhs *Route) {
	if !rhs.IsValid() {
		return
	}

	estimatedTime := 0.0
	if len(r.times) != 0 {
		estimatedTime = r.times[len(r.times)-1].Time
	}

	if r.poly.GetSize() != 0 {
		if len(r.turns) == 0 {
			panic("route: append on a route without turns")
		}
		if len(r.times) == 0 {
			panic("route: append on a route without section times")
		}
		if len(r.streets) != 0 && int(r.streets[len(r.streets)-1].Index)+1 >= r.poly.GetSize() {
			panic("route: street span starts at the last route point")
		}

		joinGap := geo.DistanceOnEarth(r.poly.End().Point, rhs.poly.Begin().Point)
		if joinGap >= AppendJoinToleranceM {
			panic("route: appended route does not continue this one")
		}

		// remove the duplicated junction point, the arrival turn and the
		// final section time
		r.poly.PopBack()
		if r.turns[len(r.turns)-1].Turn != datastructure.FINISH {
			panic("route: append on a route without arrival turn")
		}
		r.turns = r.turns[:len(r.turns)-1]
		r.times = r.times[:len(r.times)-1]
	}

	indexOffset := uint32(r.poly.GetSize())

	for _, t := range rhs.turns {
		if t.Index == 0 {
			continue
		}
		t.Index += indexOffset
		r.turns = append(r.turns, t)
	}

	for _, s := range rhs.streets {
		if s.Index == 0 {
			continue
		}
		s.Index += indexOffset
		r.streets = append(r.streets, s)
	}

	for _, t := range rhs.times {
		if t.Index == 0 {
			continue
		}
		t.Index += indexOffset
		t.Time += estimatedTime
		r.times = append(r.times, t)
	}

	r.appendTraffic(rhs)
	r.appendAltitudes(rhs)

	r.poly.Append(rhs.poly)
	if len(r.traffic) != 0 && len(r.traffic)+1 != r.poly.GetSize() {
		panic("route: traffic track out of sync after append")
	}
	r.Update()
}

// appendTraffic merges the traffic tracks. Missing data on either side is
// backfilled with SpeedGroupUnknown so the merged track stays one entry per
// segment. Called after the junction point was popped, so the own point count
// equals the own pre-append segment count.
func (r *Route) appendTraffic(rhs *Route) {
	if !rhs.IsValid() {
		panic("route: appending traffic of an invalid route")
	}

	if len(r.traffic) == 0 && len(rhs.traffic) == 0 {
		return
	}

	if !r.IsValid() {
		r.traffic = append([]datastructure.SpeedGroup{}, rhs.traffic...)
		return
	}

	if len(r.traffic) == 0 {
		for i := 0; i < r.poly.GetSize(); i++ {
			r.traffic = append(r.traffic, datastructure.SpeedGroupUnknown)
		}
	}
	if len(r.traffic) != r.poly.GetSize() {
		panic("route: traffic track does not cover the trimmed geometry")
	}

	if len(rhs.traffic) == 0 {
		for i := 0; i < rhs.poly.GetSize()-1; i++ {
			r.traffic = append(r.traffic, datastructure.SpeedGroupUnknown)
		}
	} else {
		r.traffic = append(r.traffic, rhs.traffic...)
	}
}

// appendAltitudes merges the altitude tracks positionally, dropping the
// duplicated junction altitude on the own side and backfilling missing data
// with InvalidAltitude.
func (r *Route) appendAltitudes(rhs *Route) {
	if len(r.altitudes) == 0 && len(rhs.altitudes) == 0 {
		return
	}

	ownLen := r.poly.GetSize()
	if len(r.altitudes) == 0 {
		for i := 0; i < ownLen; i++ {
			r.altitudes = append(r.altitudes, datastructure.InvalidAltitude)
		}
	} else if len(r.altitudes) > ownLen {
		r.altitudes = r.altitudes[:ownLen]
	}

	if len(rhs.altitudes) == 0 {
		for i := 0; i < rhs.poly.GetSize(); i++ {
			r.altitudes = append(r.altitudes, datastructure.InvalidAltitude)
		}
	} else {
		r.altitudes = append(r.altitudes, rhs.altitudes...)
	}
}
