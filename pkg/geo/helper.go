package geo

import (
	"container/list"

	"github.com/lintang-b-s/routetracker/pkg/datastructure"
)

// https://cartography-playground.gitlab.io/playgrounds/douglas-peucker-algorithm/

// RamesDouglasPeucker simplifies a polyline on the projected plane. threshold
// is the maximum allowed perpendicular deviation in mercator units. endpoints
// are always kept.
func RamesDouglasPeucker(points []datastructure.Point, threshold float64) []datastructure.Point {
	size := len(points)
	if size < 3 {
		return points
	}

	kepts := make([]bool, size)
	kepts[0] = true
	kepts[size-1] = true

	stack := list.New()
	stack.PushBack([2]int{0, size - 1})

	for stack.Len() > 0 {
		pair := stack.Remove(stack.Back()).([2]int)
		left, right := pair[0], pair[1]
		var maxDist float64
		farthestIndex := left

		// swep over range to find the farthest point from the segment (left,right)
		for i := left + 1; i < right; i++ {
			dist := PointSegmentDistance(points[left], points[right], points[i])
			if dist > maxDist && dist > threshold {
				maxDist = dist
				farthestIndex = i
			}
		}

		if maxDist > threshold {
			// if the perpendicular distance of the farthestIndex point is greater than the threshold
			// we kept this point
			kepts[farthestIndex] = true
			if left < farthestIndex {
				stack.PushBack([2]int{left, farthestIndex})
			}
			if farthestIndex < right {
				stack.PushBack([2]int{farthestIndex, right})
			}
		}
	}

	simplifiedGeometry := make([]datastructure.Point, 0)
	for i, necessary := range kepts {
		if necessary {
			simplifiedGeometry = append(simplifiedGeometry, points[i])
		}
	}
	return simplifiedGeometry
}

// PointSegmentDistance is the planar distance from p to the segment (a, b),
// clamped to the segment endpoints.
func PointSegmentDistance(a, b, p datastructure.Point) float64 {
	proj, _ := ProjectPointToSegment(a, b, p)
	return p.DistanceTo(proj)
}

// ProjectPointToSegment projects p onto the segment (a, b) on the projected
// plane. The returned parameter t is clamped to [0, 1], with 0 at a and 1 at b.
func ProjectPointToSegment(a, b, p datastructure.Point) (datastructure.Point, float64) {
	segLenSquared := a.SquaredDistanceTo(b)
	if segLenSquared == 0 {
		return a, 0
	}

	t := ((p.X-a.X)*(b.X-a.X) + (p.Y-a.Y)*(b.Y-a.Y)) / segLenSquared
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return datastructure.NewPoint(a.X+t*(b.X-a.X), a.Y+t*(b.Y-a.Y)), t
}
