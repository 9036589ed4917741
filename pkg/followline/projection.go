package followline

import (
	"math"

	"github.com/lintang-b-s/routetracker/pkg/datastructure"
	"github.com/lintang-b-s/routetracker/pkg/geo"
)

const invalidDistance = math.MaxFloat64

// getClosestProjectionInInterval projects the rect center onto every segment
// in [startIdx, endIdx), drops candidates outside the rect and returns the one
// minimizing distFn. The follower is not moved.
func (p *FollowedPolyline) getClosestProjectionInInterval(posRect datastructure.Rect,
	distFn func(Iter) float64, startIdx, endIdx int) Iter {
	nearestIter := InvalidIter()
	minDist := invalidDistance

	currPos := posRect.Center()

	for i := startIdx; i < endIdx; i++ {
		pt, _ := geo.ProjectPointToSegment(p.points[i], p.points[i+1], currPos)
		if !posRect.IsPointInside(pt) {
			continue
		}

		it := NewIter(pt, i)
		dp := distFn(it)
		if dp < minDist {
			nearestIter = it
			minDist = dp
		}
	}
	return nearestIter
}

// UpdateProjection advances the follower to the projection of the rect center
// that is closest to it on the ground, searching from the current segment
// forward. The follower never moves backward. Returns the new position, or an
// invalid Iter when no segment projection falls inside the rect.
func (p *FollowedPolyline) UpdateProjection(posRect datastructure.Rect) Iter {
	if !p.current.IsValid() {
		return InvalidIter()
	}

	currPos := posRect.Center()
	res := p.getClosestProjectionInInterval(posRect,
		func(it Iter) float64 {
			return geo.DistanceOnEarth(it.Point, currPos)
		},
		p.current.Index, len(p.points)-1)

	if res.IsValid() {
		p.current = res
	}
	return res
}

// UpdateProjectionByPrediction behaves like UpdateProjection but prefers the
// candidate whose distance along the route from the current position is
// closest to predictDistance. predictDistance <= 0 disables prediction.
func (p *FollowedPolyline) UpdateProjectionByPrediction(posRect datastructure.Rect, predictDistance float64) Iter {
	if !p.current.IsValid() {
		return InvalidIter()
	}

	if predictDistance <= 0 {
		return p.UpdateProjection(posRect)
	}

	res := p.getClosestProjectionInInterval(posRect,
		func(it Iter) float64 {
			return math.Abs(p.GetDistanceM(p.current, it) - predictDistance)
		},
		p.current.Index, len(p.points)-1)

	if res.IsValid() {
		p.current = res
	}
	return res
}
