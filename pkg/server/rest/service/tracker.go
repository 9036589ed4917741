package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/lintang-b-s/routetracker/pkg/concurrent"
	"github.com/lintang-b-s/routetracker/pkg/datastructure"
	"github.com/lintang-b-s/routetracker/pkg/geo"
	"github.com/lintang-b-s/routetracker/pkg/kv"
	"github.com/lintang-b-s/routetracker/pkg/route"
	"github.com/lintang-b-s/routetracker/pkg/server"
)

const (
	ProfileCar        = "car"
	ProfilePedestrian = "pedestrian"
)

// RouteBook is the persistent store follow sessions are rebuilt from after a
// restart.
type RouteBook interface {
	SaveRoute(ctx context.Context, sr kv.StoredRoute) error
	GetRoute(id string) (kv.StoredRoute, error)
	GetRoutes() ([]kv.StoredRoute, error)
	GetRoutesNearPoint(lat, lon float64) ([]kv.StoredRoute, error)
	DeleteRoute(id string) error
}

// RouteIndex answers which registered routes pass near a position.
type RouteIndex interface {
	IndexRoute(id string, points []datastructure.Point) error
	NearbyRouteIDs(p datastructure.Point, radiusM float64) []string
	RemoveRoute(id string) bool
}

// followState is one live follow session. Route is not safe for concurrent
// use, every operation on it holds mu.
type followState struct {
	mu      sync.Mutex
	route   *route.Route
	profile string
}

type TrackerService struct {
	book  RouteBook
	index RouteIndex

	mu     sync.RWMutex
	active map[string]*followState
}

func NewTrackerService(book RouteBook, index RouteIndex) *TrackerService {
	return &TrackerService{
		book:   book,
		index:  index,
		active: make(map[string]*followState),
	}
}

// RouteSummary describes a registered route.
type RouteSummary struct {
	ID             string
	Name           string
	Router         string
	Profile        string
	PointCount     int
	TotalDistanceM float64
	TotalTimeS     float64
	Polyline       string
}

// RouteDetail is a summary plus the annotation tracks.
type RouteDetail struct {
	Summary       RouteSummary
	Turns         []datastructure.TurnItem
	Times         []datastructure.TimeItem
	Streets       []datastructure.StreetItem
	Traffic       []datastructure.SpeedGroup
	Altitudes     []int16
	AbsentRegions []string
}

// PositionUpdate is the follow state right after a gps fix was fed in.
type PositionUpdate struct {
	OnRoute        bool
	Snapped        bool
	Lat            float64
	Lon            float64
	Bearing        float64
	SegmentIndex   int
	DistFromStartM float64
	DistToEndM     float64
	TimeToEndS     float64
	OnEnd          bool
	CurrentStreet  string
}

// ProgressInfo reports the follow state without moving the position.
type ProgressInfo struct {
	TotalDistanceM float64
	DistFromStartM float64
	DistToEndM     float64
	TotalTimeS     float64
	TimeToEndS     float64
	OnEnd          bool
	CurrentStreet  string
	DirectionLat   float64
	DirectionLon   float64
	HasDirection   bool
}

// TurnPreview is one approaching maneuver with a rendered instruction.
type TurnPreview struct {
	Index       uint32
	Sign        int
	Type        string
	Instruction string
	DistMeters  float64
}

// SegmentRecord describes one geometry segment of a subroute.
type SegmentRecord struct {
	Index          uint32
	Turn           int
	TurnType       string
	Lat            float64
	Lon            float64
	AltitudeM      int16
	HasAltitude    bool
	Traffic        string
	DistFromStartM float64
	TimeFromStartS float64
}

// SubrouteDetail is the per segment breakdown of one subroute.
type SubrouteDetail struct {
	Router             string
	UID                uint64
	MatchingThresholdM float64
	Segments           []SegmentRecord
}

// RegisterRoute stores a followable route and opens a follow session for it.
func (ts *TrackerService) RegisterRoute(ctx context.Context, id, name, routerID, profile string,
	coords []datastructure.Coordinate, turns []datastructure.TurnItem, times []datastructure.TimeItem,
	streets []datastructure.StreetItem, traffic []datastructure.SpeedGroup, altitudes []int16,
	absentRegions []string) (RouteSummary, error) {

	if id == "" {
		return RouteSummary{}, server.NewErrorf(server.ErrBadParamInput, "route id cannot be empty!")
	}
	if len(coords) < 2 {
		return RouteSummary{}, server.NewErrorf(server.ErrBadParamInput, "a route needs at least 2 points")
	}
	settings, profile, err := settingsForProfile(profile)
	if err != nil {
		return RouteSummary{}, err
	}
	points := toMercator(coords)
	if err := validateTracks(len(points), turns, times, streets, traffic, altitudes); err != nil {
		return RouteSummary{}, err
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, ok := ts.active[id]; ok {
		return RouteSummary{}, server.NewErrorf(server.ErrConflict, "route %s is already registered", id)
	}
	if _, err := ts.book.GetRoute(id); err == nil {
		return RouteSummary{}, server.NewErrorf(server.ErrConflict, "route %s is already registered", id)
	} else if !errors.Is(err, kv.ErrRouteNotFound) {
		return RouteSummary{}, server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
	}

	rt := route.NewRoute(routerID, points, name)
	rt.SetRoutingSettings(settings)
	applyTracks(rt, turns, times, streets, traffic, altitudes)
	for _, region := range absentRegions {
		rt.AddAbsentRegion(region)
	}

	fs := &followState{route: rt, profile: profile}
	sr := storedFromState(id, fs)
	if err := ts.book.SaveRoute(ctx, sr); err != nil {
		return RouteSummary{}, server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
	}
	if err := ts.index.IndexRoute(id, points); err != nil {
		return RouteSummary{}, server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
	}
	ts.active[id] = fs
	return summarizeStored(sr), nil
}

// AppendLeg splices a continuation onto a registered route. The leg must start
// on the current route end and bring its own arrival turn.
func (ts *TrackerService) AppendLeg(ctx context.Context, id string, coords []datastructure.Coordinate,
	turns []datastructure.TurnItem, times []datastructure.TimeItem, streets []datastructure.StreetItem,
	traffic []datastructure.SpeedGroup, altitudes []int16) (RouteSummary, error) {

	if len(coords) < 2 {
		return RouteSummary{}, server.NewErrorf(server.ErrBadParamInput, "an appended leg needs at least 2 points")
	}
	points := toMercator(coords)
	if err := validateTracks(len(points), turns, times, streets, traffic, altitudes); err != nil {
		return RouteSummary{}, err
	}
	if len(times) == 0 {
		return RouteSummary{}, server.NewErrorf(server.ErrBadParamInput, "an appended leg needs section times")
	}
	if len(turns) == 0 || turns[len(turns)-1].Turn != datastructure.FINISH ||
		int(turns[len(turns)-1].Index) != len(points)-1 {
		return RouteSummary{}, server.NewErrorf(server.ErrBadParamInput,
			"an appended leg must end with an arrival turn at its last point")
	}

	fs, err := ts.session(id)
	if err != nil {
		return RouteSummary{}, err
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()

	// AppendRoute treats violated join preconditions as corruption, reject
	// bad client input here instead.
	rt := fs.route
	ownTurns := rt.GetTurns()
	if len(ownTurns) == 0 || ownTurns[len(ownTurns)-1].Turn != datastructure.FINISH {
		return RouteSummary{}, server.NewErrorf(server.ErrBadParamInput,
			"route %s does not end with an arrival turn, cannot append", id)
	}
	if len(rt.GetTimes()) == 0 {
		return RouteSummary{}, server.NewErrorf(server.ErrBadParamInput,
			"route %s has no section times, cannot append", id)
	}
	ownStreets := rt.GetStreets()
	if len(ownStreets) != 0 && int(ownStreets[len(ownStreets)-1].Index)+1 >= rt.GetPolyline().GetSize() {
		return RouteSummary{}, server.NewErrorf(server.ErrBadParamInput,
			"route %s carries a street name at its arrival point, cannot append", id)
	}
	gap := geo.DistanceOnEarth(rt.GetPolyline().End().Point, points[0])
	if gap >= route.AppendJoinToleranceM {
		return RouteSummary{}, server.NewErrorf(server.ErrBadParamInput,
			"the leg starts %.1f meters away from the route end", gap)
	}

	tail := route.NewRoute(rt.GetRouterId(), points, rt.GetName())
	tail.SetRoutingSettings(rt.GetRoutingSettings())
	applyTracks(tail, turns, times, streets, traffic, altitudes)
	rt.AppendRoute(tail)

	sr := storedFromState(id, fs)
	if err := ts.book.SaveRoute(ctx, sr); err != nil {
		return RouteSummary{}, server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
	}
	if err := ts.index.IndexRoute(id, rt.GetPolyline().GetPoints()); err != nil {
		return RouteSummary{}, server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
	}
	return summarizeStored(sr), nil
}

// UpdatePosition feeds one gps fix into the follow session and reports the
// matched state.
func (ts *TrackerService) UpdatePosition(ctx context.Context, id string, fix datastructure.GpsInfo) (PositionUpdate, error) {
	fs, err := ts.session(id)
	if err != nil {
		return PositionUpdate{}, err
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()

	rt := fs.route
	onRoute := rt.MoveIterator(fix)

	loc := fix
	var rmi datastructure.RouteMatchingInfo
	rt.MatchLocationToRoute(&loc, &rmi)

	return PositionUpdate{
		OnRoute:        onRoute,
		Snapped:        rmi.HasMatchingInfo,
		Lat:            loc.Lat,
		Lon:            loc.Lon,
		Bearing:        loc.Bearing,
		SegmentIndex:   rmi.IndexInRoute,
		DistFromStartM: rt.GetCurrentDistanceFromBeginMeters(),
		DistToEndM:     rt.GetCurrentDistanceToEndMeters(),
		TimeToEndS:     rt.GetCurrentTimeToEndSec(),
		OnEnd:          rt.IsCurrentOnEnd(),
		CurrentStreet:  rt.GetCurrentStreetName(),
	}, nil
}

// Progress reports the follow state at the current position.
func (ts *TrackerService) Progress(ctx context.Context, id string) (ProgressInfo, error) {
	fs, err := ts.session(id)
	if err != nil {
		return ProgressInfo{}, err
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()

	rt := fs.route
	info := ProgressInfo{
		TotalDistanceM: rt.GetTotalDistanceMeters(),
		DistFromStartM: rt.GetCurrentDistanceFromBeginMeters(),
		DistToEndM:     rt.GetCurrentDistanceToEndMeters(),
		TotalTimeS:     rt.GetTotalTimeSec(),
		TimeToEndS:     rt.GetCurrentTimeToEndSec(),
		OnEnd:          rt.IsCurrentOnEnd(),
		CurrentStreet:  rt.GetCurrentStreetName(),
	}
	if dir, ok := rt.GetCurrentDirectionPoint(); ok {
		coord := geo.ToLatLon(dir)
		info.DirectionLat = coord.Lat
		info.DirectionLon = coord.Lon
		info.HasDirection = true
	}
	return info, nil
}

// NextTurns lists the maneuvers ahead of the current position, closest first,
// with instructions rendered against the street name track.
func (ts *TrackerService) NextTurns(ctx context.Context, id string) ([]TurnPreview, error) {
	fs, err := ts.session(id)
	if err != nil {
		return nil, err
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()

	rt := fs.route
	items, ok := rt.GetNextTurns()
	if !ok {
		return []TurnPreview{}, nil
	}
	previews := make([]TurnPreview, 0, len(items))
	for _, item := range items {
		street := rt.GetStreetNameAfterIdx(item.Turn.Index)
		previews = append(previews, TurnPreview{
			Index:       item.Turn.Index,
			Sign:        item.Turn.Turn,
			Type:        datastructure.GetTurnType(item.Turn.Turn),
			Instruction: datastructure.GetTurnDescription(item.Turn.Turn, street),
			DistMeters:  item.DistMeters,
		})
	}
	return previews, nil
}

// Subroute returns the per segment breakdown of one subroute.
func (ts *TrackerService) Subroute(ctx context.Context, id string, subrouteIdx int) (SubrouteDetail, error) {
	fs, err := ts.session(id)
	if err != nil {
		return SubrouteDetail{}, err
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()

	rt := fs.route
	if subrouteIdx < 0 || subrouteIdx >= rt.GetSubrouteCount() {
		return SubrouteDetail{}, server.NewErrorf(server.ErrBadParamInput, "subroute index %d is out of range", subrouteIdx)
	}
	if len(rt.GetTurns()) == 0 || len(rt.GetTimes()) == 0 {
		return SubrouteDetail{}, server.NewErrorf(server.ErrBadParamInput,
			"route %s has no maneuver annotations", id)
	}

	records := rt.GetSubrouteInfo(subrouteIdx)
	settings := rt.GetSubrouteSettings(subrouteIdx)

	segments := make([]SegmentRecord, 0, len(records))
	for _, rec := range records {
		junction := geo.ToLatLon(rec.Junction)
		segments = append(segments, SegmentRecord{
			Index:          rec.Turn.Index,
			Turn:           rec.Turn.Turn,
			TurnType:       datastructure.GetTurnType(rec.Turn.Turn),
			Lat:            junction.Lat,
			Lon:            junction.Lon,
			AltitudeM:      rec.Altitude,
			HasAltitude:    rec.Altitude != datastructure.InvalidAltitude,
			Traffic:        rec.Traffic.String(),
			DistFromStartM: rec.DistFromStartMeters,
			TimeFromStartS: rec.TimeFromStartS,
		})
	}
	return SubrouteDetail{
		Router:             settings.Router,
		UID:                settings.UID,
		MatchingThresholdM: settings.Settings.MatchingThresholdM,
		Segments:           segments,
	}, nil
}

// SetSubrouteUID claims a subroute for a consumer.
func (ts *TrackerService) SetSubrouteUID(ctx context.Context, id string, subrouteIdx int, uid uint64) error {
	fs, err := ts.session(id)
	if err != nil {
		return err
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if subrouteIdx < 0 || subrouteIdx >= fs.route.GetSubrouteCount() {
		return server.NewErrorf(server.ErrBadParamInput, "subroute index %d is out of range", subrouteIdx)
	}
	fs.route.SetSubrouteUid(subrouteIdx, uid)
	return nil
}

// SetProfile switches the routing profile of a follow session.
func (ts *TrackerService) SetProfile(ctx context.Context, id, profile string) (RouteSummary, error) {
	settings, profile, err := settingsForProfile(profile)
	if err != nil {
		return RouteSummary{}, err
	}
	fs, err := ts.session(id)
	if err != nil {
		return RouteSummary{}, err
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.route.SetRoutingSettings(settings)
	fs.profile = profile

	sr := storedFromState(id, fs)
	if err := ts.book.SaveRoute(ctx, sr); err != nil {
		return RouteSummary{}, server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
	}
	return summarizeStored(sr), nil
}

// GetRoute returns the stored route with all annotation tracks.
func (ts *TrackerService) GetRoute(ctx context.Context, id string) (RouteDetail, error) {
	fs, err := ts.session(id)
	if err != nil {
		return RouteDetail{}, err
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()

	sr := storedFromState(id, fs)
	return RouteDetail{
		Summary:       summarizeStored(sr),
		Turns:         sr.Turns,
		Times:         sr.Times,
		Streets:       sr.Streets,
		Traffic:       sr.Traffic,
		Altitudes:     sr.Altitudes,
		AbsentRegions: sr.AbsentRegions,
	}, nil
}

// NearbyRoutes lists registered routes whose geometry passes within radiusM of
// (lat, lon).
func (ts *TrackerService) NearbyRoutes(ctx context.Context, lat, lon, radiusM float64) ([]RouteSummary, error) {
	if radiusM <= 0 {
		return nil, server.NewErrorf(server.ErrBadParamInput, "radius must be positive")
	}

	ids := ts.index.NearbyRouteIDs(geo.FromLatLon(lat, lon), radiusM)
	summaries := make([]RouteSummary, 0, len(ids))
	for _, rid := range ids {
		fs, err := ts.session(rid)
		if err != nil {
			// the index can lag the book right after a delete
			continue
		}
		fs.mu.Lock()
		summaries = append(summaries, summarizeStored(storedFromState(rid, fs)))
		fs.mu.Unlock()
	}
	return summaries, nil
}

// RoutesStartingNear lists stored routes whose start point falls in the h3
// neighborhood of (lat, lon).
func (ts *TrackerService) RoutesStartingNear(ctx context.Context, lat, lon float64) ([]RouteSummary, error) {
	stored, err := ts.book.GetRoutesNearPoint(lat, lon)
	if err != nil {
		if errors.Is(err, kv.ErrRoutesNotFound) {
			return nil, server.WrapErrorf(err, server.ErrNotFound, "no stored routes start near (%.5f, %.5f)", lat, lon)
		}
		return nil, server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
	}

	workers := concurrent.NewWorkerPool[concurrent.SummarizeRouteParam, RouteSummary](8, len(stored))
	for _, sr := range stored {
		workers.AddJob(concurrent.NewSummarizeRouteParam(sr))
	}
	workers.Close()
	workers.Start(ts.summarizeRoute)
	workers.Wait()

	summaries := make([]RouteSummary, 0, len(stored))
	for summary := range workers.CollectResults() {
		summaries = append(summaries, summary)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].ID < summaries[j].ID })
	return summaries, nil
}

func (ts *TrackerService) summarizeRoute(param concurrent.SummarizeRouteParam) RouteSummary {
	return summarizeStored(param.Route)
}

// DeleteRoute removes a route from the session registry, the store and the
// spatial index.
func (ts *TrackerService) DeleteRoute(ctx context.Context, id string) error {
	ts.mu.Lock()
	_, wasActive := ts.active[id]
	delete(ts.active, id)
	ts.mu.Unlock()

	if err := ts.book.DeleteRoute(id); err != nil {
		if !errors.Is(err, kv.ErrRouteNotFound) {
			return server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
		}
		if !wasActive {
			return server.WrapErrorf(err, server.ErrNotFound, "route %s is not registered", id)
		}
	}
	ts.index.RemoveRoute(id)
	return nil
}

// ActiveRouteCount returns the number of follow sessions in memory.
func (ts *TrackerService) ActiveRouteCount() int {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return len(ts.active)
}

// Warm rebuilds the spatial index from every stored route. Sessions stay lazy,
// they are reopened on first use.
func (ts *TrackerService) Warm(ctx context.Context) error {
	stored, err := ts.book.GetRoutes()
	if err != nil {
		return server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
	}
	select {
	case <-ctx.Done():
		return fmt.Errorf("context cancelled")
	default:
	}

	workers := concurrent.NewWorkerPool[concurrent.IndexRouteParam, error](8, len(stored))
	for _, sr := range stored {
		workers.AddJob(concurrent.NewIndexRouteParam(sr.ID, sr.Points))
	}
	workers.Close()
	workers.Start(ts.indexStored)
	workers.Wait()

	for err := range workers.CollectResults() {
		if err != nil {
			return server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
		}
	}
	log.Printf("spatial index warmed with %d stored routes...", len(stored))
	return nil
}

func (ts *TrackerService) indexStored(param concurrent.IndexRouteParam) error {
	return ts.index.IndexRoute(param.RouteID, param.Points)
}

// session returns the follow session for id, rebuilding it from the route
// book when the route is stored but not in memory.
func (ts *TrackerService) session(id string) (*followState, error) {
	ts.mu.RLock()
	fs, ok := ts.active[id]
	ts.mu.RUnlock()
	if ok {
		return fs, nil
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()
	if fs, ok := ts.active[id]; ok {
		return fs, nil
	}

	sr, err := ts.book.GetRoute(id)
	if err != nil {
		if errors.Is(err, kv.ErrRouteNotFound) {
			return nil, server.WrapErrorf(err, server.ErrNotFound, "route %s is not registered", id)
		}
		return nil, server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
	}
	fs, err = followStateFromStored(sr)
	if err != nil {
		return nil, server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
	}
	if err := ts.index.IndexRoute(id, fs.route.GetPolyline().GetPoints()); err != nil {
		return nil, server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
	}
	ts.active[id] = fs
	return fs, nil
}

func followStateFromStored(sr kv.StoredRoute) (*followState, error) {
	settings, profile, err := settingsForProfile(sr.Profile)
	if err != nil {
		return nil, err
	}
	rt := route.NewRoute(sr.Router, sr.Points, sr.Name)
	if !rt.IsValid() {
		return nil, fmt.Errorf("stored route %s has fewer than 2 points", sr.ID)
	}
	rt.SetRoutingSettings(settings)
	applyTracks(rt, sr.Turns, sr.Times, sr.Streets, sr.Traffic, sr.Altitudes)
	for _, region := range sr.AbsentRegions {
		rt.AddAbsentRegion(region)
	}
	return &followState{route: rt, profile: profile}, nil
}

func storedFromState(id string, fs *followState) kv.StoredRoute {
	rt := fs.route
	return kv.StoredRoute{
		ID:            id,
		Name:          rt.GetName(),
		Router:        rt.GetRouterId(),
		Profile:       fs.profile,
		Points:        rt.GetPolyline().GetPoints(),
		Turns:         rt.GetTurns(),
		Times:         rt.GetTimes(),
		Streets:       rt.GetStreets(),
		Traffic:       rt.GetTraffic(),
		Altitudes:     rt.GetAltitudes(),
		AbsentRegions: rt.GetAbsentRegions(),
	}
}

func summarizeStored(sr kv.StoredRoute) RouteSummary {
	distM := 0.0
	for i := 1; i < len(sr.Points); i++ {
		distM += geo.DistanceOnEarth(sr.Points[i-1], sr.Points[i])
	}
	timeS := 0.0
	if len(sr.Times) != 0 {
		timeS = sr.Times[len(sr.Times)-1].Time
	}
	coords := make([]datastructure.Coordinate, len(sr.Points))
	for i, p := range sr.Points {
		coords[i] = geo.ToLatLon(p)
	}
	return RouteSummary{
		ID:             sr.ID,
		Name:           sr.Name,
		Router:         sr.Router,
		Profile:        sr.Profile,
		PointCount:     len(sr.Points),
		TotalDistanceM: distM,
		TotalTimeS:     timeS,
		Polyline:       datastructure.CreatePolyline(coords),
	}
}

func toMercator(coords []datastructure.Coordinate) []datastructure.Point {
	points := make([]datastructure.Point, len(coords))
	for i, c := range coords {
		points[i] = geo.FromLatLon(c.Lat, c.Lon)
	}
	return points
}

func applyTracks(rt *route.Route, turns []datastructure.TurnItem, times []datastructure.TimeItem,
	streets []datastructure.StreetItem, traffic []datastructure.SpeedGroup, altitudes []int16) {
	if len(turns) != 0 {
		rt.SetTurnInstructions(turns)
	}
	if len(times) != 0 {
		rt.SetSectionTimes(times)
	}
	if len(streets) != 0 {
		rt.SetStreetNames(streets)
	}
	if len(traffic) != 0 {
		rt.SetTraffic(traffic)
	}
	if len(altitudes) != 0 {
		rt.SetAltitudes(altitudes)
	}
}

// validateTracks rejects annotation tracks that do not line up with a polySz
// point geometry. The route core treats misaligned tracks as corruption, the
// api boundary turns them into client errors instead.
func validateTracks(polySz int, turns []datastructure.TurnItem, times []datastructure.TimeItem,
	streets []datastructure.StreetItem, traffic []datastructure.SpeedGroup, altitudes []int16) error {

	if !sort.SliceIsSorted(turns, func(i, j int) bool { return turns[i].Index < turns[j].Index }) {
		return server.NewErrorf(server.ErrBadParamInput, "turns must be sorted by point index")
	}
	if len(turns) != 0 && int(turns[len(turns)-1].Index) >= polySz {
		return server.NewErrorf(server.ErrBadParamInput,
			"turn index %d is beyond the route geometry", turns[len(turns)-1].Index)
	}
	if !sort.SliceIsSorted(times, func(i, j int) bool { return times[i].Index < times[j].Index }) {
		return server.NewErrorf(server.ErrBadParamInput, "section times must be sorted by point index")
	}
	if len(times) != 0 && int(times[len(times)-1].Index) >= polySz {
		return server.NewErrorf(server.ErrBadParamInput,
			"section time index %d is beyond the route geometry", times[len(times)-1].Index)
	}
	if !sort.SliceIsSorted(streets, func(i, j int) bool { return streets[i].Index < streets[j].Index }) {
		return server.NewErrorf(server.ErrBadParamInput, "street names must be sorted by point index")
	}
	if len(streets) != 0 && int(streets[len(streets)-1].Index) >= polySz {
		return server.NewErrorf(server.ErrBadParamInput,
			"street name index %d is beyond the route geometry", streets[len(streets)-1].Index)
	}
	if len(traffic) != 0 && len(traffic) != polySz-1 {
		return server.NewErrorf(server.ErrBadParamInput,
			"traffic must annotate all %d segments", polySz-1)
	}
	if len(altitudes) != 0 && len(altitudes) != polySz {
		return server.NewErrorf(server.ErrBadParamInput,
			"altitudes must annotate all %d points", polySz)
	}
	return nil
}

func settingsForProfile(profile string) (route.RoutingSettings, string, error) {
	switch strings.ToLower(profile) {
	case "", ProfileCar:
		return route.CarRoutingSettings(), ProfileCar, nil
	case ProfilePedestrian:
		return route.PedestrianRoutingSettings(), ProfilePedestrian, nil
	}
	return route.RoutingSettings{}, "", server.NewErrorf(server.ErrBadParamInput,
		"unknown routing profile %q, use car or pedestrian", profile)
}
