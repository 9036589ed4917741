package datastructure

import "math"

// Point is a position on the projected (mercator) plane. Route geometry is
// stored in this plane; conversion from lat/lon happens once at the edge.
type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) DistanceTo(o Point) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func (p Point) SquaredDistanceTo(o Point) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return dx*dx + dy*dy
}

// AlmostEqual reports whether both coordinates differ by at most eps.
// used to detect degenerate (zero length) segments.
func (p Point) AlmostEqual(o Point, eps float64) bool {
	return math.Abs(p.X-o.X) <= eps && math.Abs(p.Y-o.Y) <= eps
}

// Rect is an axis aligned box on the projected plane.
type Rect struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

func NewRect(minX, minY, maxX, maxY float64) Rect {
	return Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

func (r Rect) IsPointInside(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

func (r Rect) Center() Point {
	return Point{X: (r.MinX + r.MaxX) / 2.0, Y: (r.MinY + r.MaxY) / 2.0}
}
