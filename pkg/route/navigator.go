package route

import (
	"sort"

	"github.com/lintang-b-s/routetracker/pkg/datastructure"
)

// currentTurnIdx returns the position in the turns track of the first turn
// strictly after the current segment index, or len(turns) when there is none.
func (r *Route) currentTurnIdx() int {
	cur := uint32(r.poly.GetCurrentIter().Index)
	return sort.Search(len(r.turns), func(i int) bool {
		return cur < r.turns[i].Index
	})
}

// GetCurrentTurn returns the next maneuver ahead of the matched position and
// its distance in meters along the route. ok is false when the route carries
// no turns ahead, which only happens on routes without annotation tracks.
func (r *Route) GetCurrentTurn() (distanceToTurnMeters float64, turn datastructure.TurnItem, ok bool) {
	it := r.currentTurnIdx()
	if it == len(r.turns) {
		return 0, datastructure.TurnItem{}, false
	}

	turn = r.turns[it]
	distanceToTurnMeters = r.poly.GetDistanceM(r.poly.GetCurrentIter(),
		r.poly.GetIterToIndex(int(turn.Index)))
	return distanceToTurnMeters, turn, true
}

// GetNextTurn returns the maneuver after the current one. ok is false when
// the current turn is the arrival.
func (r *Route) GetNextTurn() (distanceToTurnMeters float64, turn datastructure.TurnItem, ok bool) {
	it := r.currentTurnIdx()
	if it == len(r.turns) || it+1 == len(r.turns) {
		return 0, datastructure.TurnItem{}, false
	}

	turn = r.turns[it+1]
	distanceToTurnMeters = r.poly.GetDistanceM(r.poly.GetCurrentIter(),
		r.poly.GetIterToIndex(int(turn.Index)))
	return distanceToTurnMeters, turn, true
}

// GetNextTurns returns the current turn and, when the route continues past
// it, the one after. Display modes showing "after next" maneuvers use this.
func (r *Route) GetNextTurns() ([]datastructure.TurnItemDist, bool) {
	currentDist, currentTurn, ok := r.GetCurrentTurn()
	if !ok {
		return nil, false
	}

	turns := make([]datastructure.TurnItemDist, 0, 2)
	turns = append(turns, datastructure.NewTurnItemDist(currentTurn, currentDist))

	if nextDist, nextTurn, ok := r.GetNextTurn(); ok {
		turns = append(turns, datastructure.NewTurnItemDist(nextTurn, nextDist))
	}
	return turns, true
}

// GetCurrentStreetName returns the name of the street the follower is on, or
// an empty string when the track has no span covering the position.
func (r *Route) GetCurrentStreetName() string {
	it := r.getCurrentStreetNameIterAfter(r.poly.GetCurrentIter().Index)
	if it == len(r.streets) {
		return ""
	}
	return r.streets[it].Name
}

// GetStreetNameAfterIdx returns the first announceable street name at or
// after the polyline point idx. Unnamed link spans are looked past while the
// named span starts within streetNameLinkMeters of idx.
func (r *Route) GetStreetNameAfterIdx(idx uint32) string {
	polyIter := r.poly.GetIterToIndex(int(idx))
	if !polyIter.IsValid() {
		return ""
	}

	it := r.getCurrentStreetNameIterAfter(polyIter.Index)
	for ; it < len(r.streets); it++ {
		if r.streets[it].Name == "" {
			continue
		}
		nameIdx := int(r.streets[it].Index)
		if nameIdx < polyIter.Index {
			nameIdx = polyIter.Index
		}
		if r.poly.GetDistanceM(polyIter, r.poly.GetIterToIndex(nameIdx)) < streetNameLinkMeters {
			return r.streets[it].Name
		}
		return ""
	}
	return ""
}

// getCurrentStreetNameIterAfter finds the street span covering the segment
// index ind: the span starting exactly at ind, else the one before the first
// span past it. Returns len(streets) when the position is beyond every span.
func (r *Route) getCurrentStreetNameIterAfter(ind int) int {
	if len(r.streets) == 0 {
		return len(r.streets)
	}
	if len(r.streets) == 1 {
		// a single span covers the whole route
		return 0
	}

	prev := 0
	cur := 1
	for int(r.streets[cur].Index) < ind {
		prev++
		cur++
		if cur == len(r.streets) {
			return cur
		}
	}
	if int(r.streets[cur].Index) == ind {
		return cur
	}
	return prev
}

// GetTurnsDistances returns the planar distances from the route start to each
// displayable turn. Turns at the side points of the geometry are skipped,
// they cannot be rendered as approaching maneuvers.
func (r *Route) GetTurnsDistances() []float64 {
	distances := make([]float64, 0, len(r.turns))
	if !r.poly.IsValid() {
		return distances
	}

	mercatorDistance := 0.0
	points := r.poly.GetPoints()
	for i, currentTurn := range r.turns {
		if currentTurn.Index == 0 || int(currentTurn.Index) == r.poly.GetSize()-1 {
			continue
		}

		formerTurnIndex := uint32(0)
		if i > 0 {
			formerTurnIndex = r.turns[i-1].Index
		}

		mercatorDistance += mercatorDistanceAlongPath(int(formerTurnIndex), int(currentTurn.Index), points)
		distances = append(distances, mercatorDistance)
	}
	return distances
}

func mercatorDistanceAlongPath(from, to int, points []datastructure.Point) float64 {
	distance := 0.0
	for i := from; i < to; i++ {
		distance += points[i].DistanceTo(points[i+1])
	}
	return distance
}

// GetCurrentDirectionPoint returns the point direction arrows should aim at.
// Pedestrian profiles read it from the simplified geometry.
func (r *Route) GetCurrentDirectionPoint() (datastructure.Point, bool) {
	if r.settings.KeepPedestrianInfo && r.simplifiedPoly.IsValid() {
		return r.simplifiedPoly.GetCurrentDirectionPoint(onEndToleranceM)
	}
	return r.poly.GetCurrentDirectionPoint(onEndToleranceM)
}
