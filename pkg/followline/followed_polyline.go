package followline

import (
	"github.com/lintang-b-s/routetracker/pkg/datastructure"
	"github.com/lintang-b-s/routetracker/pkg/geo"
)

// Iter is a projected position on a followed polyline. Point lies on the
// segment starting at polyline point Index. An Iter with negative Index is
// invalid.
type Iter struct {
	Point datastructure.Point
	Index int
}

func NewIter(point datastructure.Point, index int) Iter {
	return Iter{Point: point, Index: index}
}

func InvalidIter() Iter {
	return Iter{Index: -1}
}

func (it Iter) IsValid() bool {
	return it.Index >= 0
}

// FollowedPolyline is a polyline on the projected plane that tracks the
// position of a follower moving along it. segDistance[i] is the cumulative
// earth distance in meters from the start to point i+1, so its length is
// always len(points)-1 for a valid polyline.
type FollowedPolyline struct {
	points      []datastructure.Point
	segDistance []float64
	current     Iter
}

func NewFollowedPolyline(points []datastructure.Point) *FollowedPolyline {
	p := &FollowedPolyline{
		points: append([]datastructure.Point{}, points...),
	}
	p.update()
	return p
}

// update recomputes the cumulative distances and rewinds the follower to the
// polyline start. called after every structural change.
func (p *FollowedPolyline) update() {
	n := len(p.points)
	if n > 1 {
		n--
		p.segDistance = make([]float64, n)
		dist := 0.0
		for i := 0; i < n; i++ {
			dist += geo.DistanceOnEarth(p.points[i], p.points[i+1])
			p.segDistance[i] = dist
		}
		p.current = NewIter(p.points[0], 0)
	} else {
		p.segDistance = nil
		p.current = InvalidIter()
	}
}

func (p *FollowedPolyline) IsValid() bool {
	return len(p.points) > 1
}

func (p *FollowedPolyline) GetSize() int {
	return len(p.points)
}

func (p *FollowedPolyline) GetPoints() []datastructure.Point {
	return p.points
}

func (p *FollowedPolyline) GetPoint(index int) datastructure.Point {
	return p.points[index]
}

func (p *FollowedPolyline) GetCurrentIter() Iter {
	return p.current
}

func (p *FollowedPolyline) Begin() Iter {
	if len(p.points) == 0 {
		return InvalidIter()
	}
	return NewIter(p.points[0], 0)
}

func (p *FollowedPolyline) End() Iter {
	if len(p.points) == 0 {
		return InvalidIter()
	}
	last := len(p.points) - 1
	return NewIter(p.points[last], last)
}

func (p *FollowedPolyline) GetIterToIndex(index int) Iter {
	if index < 0 || index >= len(p.points) {
		return InvalidIter()
	}
	return NewIter(p.points[index], index)
}

// GetDistanceM returns the distance in meters along the polyline between two
// projected positions. it1 must not lie after it2.
func (p *FollowedPolyline) GetDistanceM(it1, it2 Iter) float64 {
	if !it1.IsValid() || !it2.IsValid() {
		panic("followline: distance between invalid iterators")
	}
	if it1.Index > it2.Index {
		panic("followline: iterators out of order")
	}
	if it1.Index == it2.Index {
		return geo.DistanceOnEarth(it1.Point, it2.Point)
	}

	return geo.DistanceOnEarth(it1.Point, p.points[it1.Index+1]) +
		p.segDistance[it2.Index-1] - p.segDistance[it1.Index] +
		geo.DistanceOnEarth(p.points[it2.Index], it2.Point)
}

func (p *FollowedPolyline) GetTotalDistanceM() float64 {
	if len(p.segDistance) == 0 {
		return 0
	}
	return p.segDistance[len(p.segDistance)-1]
}

func (p *FollowedPolyline) GetDistanceFromBeginM() float64 {
	if !p.current.IsValid() {
		return 0
	}
	dist := 0.0
	if p.current.Index > 0 {
		dist = p.segDistance[p.current.Index-1]
	}
	return dist + geo.DistanceOnEarth(p.points[p.current.Index], p.current.Point)
}

func (p *FollowedPolyline) GetDistanceToEndM() float64 {
	return p.GetTotalDistanceM() - p.GetDistanceFromBeginM()
}

// GetMercatorDistanceFromBegin returns the planar distance travelled from the
// start to the current position, in mercator units.
func (p *FollowedPolyline) GetMercatorDistanceFromBegin() float64 {
	distance := 0.0
	if p.current.IsValid() {
		for i := 1; i <= p.current.Index; i++ {
			distance += p.points[i].DistanceTo(p.points[i-1])
		}
		distance += p.current.Point.DistanceTo(p.points[p.current.Index])
	}
	return distance
}

// Append extends the polyline with another one and rewinds the follower to
// the start. callers splice routes before following them.
func (p *FollowedPolyline) Append(other *FollowedPolyline) {
	p.points = append(p.points, other.points...)
	p.update()
}

func (p *FollowedPolyline) PopBack() {
	if len(p.points) == 0 {
		panic("followline: PopBack on empty polyline")
	}
	p.points = p.points[:len(p.points)-1]
	p.update()
}

func (p *FollowedPolyline) Swap(other *FollowedPolyline) {
	*p, *other = *other, *p
}

// GetCurrentDirectionPoint returns the first polyline point after the current
// position that is farther than toleranceM away from it, for aiming direction
// arrows. Falls back to the last point when the remaining points are close.
func (p *FollowedPolyline) GetCurrentDirectionPoint(toleranceM float64) (datastructure.Point, bool) {
	if !p.IsValid() || !p.current.IsValid() {
		return datastructure.Point{}, false
	}

	currentIndex := p.current.Index + 1
	if currentIndex > len(p.points)-1 {
		currentIndex = len(p.points) - 1
	}
	point := p.points[currentIndex]
	for currentIndex < len(p.points)-1 {
		if geo.DistanceOnEarth(point, p.current.Point) > toleranceM {
			break
		}
		currentIndex++
		point = p.points[currentIndex]
	}
	return point, true
}
