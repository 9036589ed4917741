package snap

import (
	"fmt"
	"sort"
	"sync"

	"github.com/lintang-b-s/routetracker/pkg/datastructure"
	"github.com/lintang-b-s/routetracker/pkg/geo"

	"github.com/dhconnelly/rtreego"
)

const (
	// boundsPaddingM widens every indexed box so a fix just off the route
	// edge still hits it. Matches the car matching threshold.
	boundsPaddingM = 50.0

	minChildItems = 25
	maxChildItems = 50
)

type routeEntry struct {
	id     string
	bounds rtreego.Rect
}

func (e *routeEntry) Bounds() rtreego.Rect {
	return e.bounds
}

// RouteSnapper indexes the bounding boxes of stored route geometries so a
// position fix can be resolved to the routes it may belong to without loading
// every geometry. Safe for concurrent use.
type RouteSnapper struct {
	mu      sync.RWMutex
	tree    *rtreego.Rtree
	entries map[string]*routeEntry
}

func NewRouteSnapper() *RouteSnapper {
	return &RouteSnapper{
		tree:    rtreego.NewTree(2, minChildItems, maxChildItems),
		entries: make(map[string]*routeEntry),
	}
}

// IndexRoute registers the padded bounding box of a route geometry under id.
// Indexing an id again replaces the previous box.
func (rs *RouteSnapper) IndexRoute(id string, points []datastructure.Point) error {
	if len(points) == 0 {
		return fmt.Errorf("snap: route %s has no geometry", id)
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	pad := geo.MetersToMercator(boundsPaddingM)
	bounds, err := rtreego.NewRect(
		rtreego.Point{minX - pad, minY - pad},
		[]float64{maxX - minX + 2*pad, maxY - minY + 2*pad})
	if err != nil {
		return fmt.Errorf("snap: bounding box of route %s: %w", id, err)
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	if old, ok := rs.entries[id]; ok {
		rs.tree.Delete(old)
	}
	entry := &routeEntry{id: id, bounds: bounds}
	rs.tree.Insert(entry)
	rs.entries[id] = entry
	return nil
}

// NearbyRouteIDs returns the ids of all indexed routes whose padded box
// intersects a square of radiusM meters around the mercator point p, sorted
// for stable output.
func (rs *RouteSnapper) NearbyRouteIDs(p datastructure.Point, radiusM float64) []string {
	query := rtreego.Point{p.X, p.Y}.ToRect(geo.MetersToMercator(radiusM))

	rs.mu.RLock()
	matches := rs.tree.SearchIntersect(query)
	rs.mu.RUnlock()

	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.(*routeEntry).id)
	}
	sort.Strings(ids)
	return ids
}

// RemoveRoute drops a route from the index. Reports whether it was indexed.
func (rs *RouteSnapper) RemoveRoute(id string) bool {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	entry, ok := rs.entries[id]
	if !ok {
		return false
	}
	rs.tree.Delete(entry)
	delete(rs.entries, id)
	return true
}

// GetSize reports how many routes are indexed.
func (rs *RouteSnapper) GetSize() int {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return len(rs.entries)
}
