package route

import (
	"fmt"
	"sort"

	"github.com/lintang-b-s/routetracker/pkg/datastructure"
	"github.com/lintang-b-s/routetracker/pkg/followline"
	"github.com/lintang-b-s/routetracker/pkg/geo"
)

const (
	// locationTimeThreshold caps the age in seconds of the previous fix for
	// speed based position prediction. Older gaps match without prediction.
	locationTimeThreshold = 60.0 * 1.0
	// onEndToleranceM is the remaining distance below which the follower
	// counts as arrived.
	onEndToleranceM = 10.0
	// streetNameLinkMeters is how far ahead a street name may be announced
	// for short link roads without a name of their own.
	streetNameLinkMeters = 400.0

	// simplifyThresholdMerc is the Douglas Peucker deviation for the
	// simplified polyline, in mercator units.
	simplifyThresholdMerc = 1e-4
	// AppendJoinToleranceM is the maximum gap in meters between a route end
	// and the start of a route appended to it.
	AppendJoinToleranceM = 2.0

	pointEqualityEps    = 1e-10
	distanceEqualityEps = 1e-5
)

// Route is a computed route being followed turn by turn. It owns the full
// resolution geometry, an optional simplified copy, and the annotation tracks
// aligned to polyline point indices. A Route is not safe for concurrent use.
type Route struct {
	router   string
	settings RoutingSettings
	name     string

	poly           *followline.FollowedPolyline
	simplifiedPoly *followline.FollowedPolyline

	turns     []datastructure.TurnItem
	times     []datastructure.TimeItem
	streets   []datastructure.StreetItem
	traffic   []datastructure.SpeedGroup
	altitudes []int16

	absentRegions map[string]struct{}

	// currentTime is the timestamp of the most recently matched fix, zero
	// after every structural change.
	currentTime float64
	subrouteUID uint64
}

// NewRoute builds a followable route from the geometry produced by the router
// identified by router. Annotation tracks are attached afterwards through the
// setters. The car profile is the default.
func NewRoute(router string, points []datastructure.Point, name string) *Route {
	r := &Route{
		router:         router,
		settings:       CarRoutingSettings(),
		name:           name,
		poly:           followline.NewFollowedPolyline(points),
		simplifiedPoly: followline.NewFollowedPolyline(nil),
		absentRegions:  make(map[string]struct{}),
		subrouteUID:    InvalidSubrouteUID,
	}
	r.Update()
	return r
}

// Update rebuilds the state derived from the geometry and the settings: the
// simplified polyline is recreated (or dropped when the profile does not keep
// it) and the last fix timestamp is reset. Call it after every structural
// change. Updating an unchanged route is a no-op in observable state.
func (r *Route) Update() {
	if !r.poly.IsValid() {
		return
	}
	if r.settings.KeepPedestrianInfo {
		points := geo.RamesDouglasPeucker(r.poly.GetPoints(), simplifyThresholdMerc)
		followline.NewFollowedPolyline(points).Swap(r.simplifiedPoly)
	} else {
		// free the memory, the profile never reads the simplified geometry
		followline.NewFollowedPolyline(nil).Swap(r.simplifiedPoly)
	}
	r.currentTime = 0.0
}

func (r *Route) IsValid() bool {
	return r.poly.IsValid()
}

// Swap exchanges the followed state of two routes. The router id stays with
// the receiver, matching the lifecycle where a router rebuilds a route it
// issued earlier.
func (r *Route) Swap(rhs *Route) {
	r.settings, rhs.settings = rhs.settings, r.settings
	r.poly.Swap(rhs.poly)
	r.simplifiedPoly.Swap(rhs.simplifiedPoly)
	r.name, rhs.name = rhs.name, r.name
	r.currentTime, rhs.currentTime = rhs.currentTime, r.currentTime
	r.turns, rhs.turns = rhs.turns, r.turns
	r.times, rhs.times = rhs.times, r.times
	r.streets, rhs.streets = rhs.streets, r.streets
	r.absentRegions, rhs.absentRegions = rhs.absentRegions, r.absentRegions
	r.altitudes, rhs.altitudes = rhs.altitudes, r.altitudes
	r.traffic, rhs.traffic = rhs.traffic, r.traffic
	r.subrouteUID, rhs.subrouteUID = rhs.subrouteUID, r.subrouteUID
}

// AddAbsentRegion records a map region the route crosses but whose data was
// missing while routing. Empty names are ignored.
func (r *Route) AddAbsentRegion(name string) {
	if name != "" {
		r.absentRegions[name] = struct{}{}
	}
}

func (r *Route) GetAbsentRegions() []string {
	regions := make([]string, 0, len(r.absentRegions))
	for name := range r.absentRegions {
		regions = append(regions, name)
	}
	sort.Strings(regions)
	return regions
}

func (r *Route) SetTurnInstructions(turns []datastructure.TurnItem) {
	r.turns = turns
}

func (r *Route) SetSectionTimes(times []datastructure.TimeItem) {
	r.times = times
}

func (r *Route) SetStreetNames(streets []datastructure.StreetItem) {
	r.streets = streets
}

func (r *Route) SetAltitudes(altitudes []int16) {
	r.altitudes = altitudes
}

func (r *Route) SetTraffic(traffic []datastructure.SpeedGroup) {
	r.traffic = traffic
}

// SetRoutingSettings switches the following profile and refreshes the derived
// state for it.
func (r *Route) SetRoutingSettings(settings RoutingSettings) {
	r.settings = settings
	r.Update()
}

func (r *Route) GetRouterId() string {
	return r.router
}

func (r *Route) GetName() string {
	return r.name
}

func (r *Route) GetRoutingSettings() RoutingSettings {
	return r.settings
}

func (r *Route) GetPolyline() *followline.FollowedPolyline {
	return r.poly
}

func (r *Route) GetTurns() []datastructure.TurnItem {
	return r.turns
}

func (r *Route) GetTimes() []datastructure.TimeItem {
	return r.times
}

func (r *Route) GetStreets() []datastructure.StreetItem {
	return r.streets
}

func (r *Route) GetTraffic() []datastructure.SpeedGroup {
	return r.traffic
}

func (r *Route) GetAltitudes() []int16 {
	return r.altitudes
}

func (r *Route) String() string {
	return fmt.Sprintf("route %q by %s: %d points, %.1fm",
		r.name, r.router, r.poly.GetSize(), r.GetTotalDistanceMeters())
}
