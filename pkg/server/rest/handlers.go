package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/lintang-b-s/routetracker/pkg/datastructure"
	"github.com/lintang-b-s/routetracker/pkg/server"
	"github.com/lintang-b-s/routetracker/pkg/server/rest/service"
	"github.com/lintang-b-s/routetracker/pkg/util"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

type TrackerService interface {
	RegisterRoute(ctx context.Context, id, name, routerID, profile string,
		coords []datastructure.Coordinate, turns []datastructure.TurnItem, times []datastructure.TimeItem,
		streets []datastructure.StreetItem, traffic []datastructure.SpeedGroup, altitudes []int16,
		absentRegions []string) (service.RouteSummary, error)
	AppendLeg(ctx context.Context, id string, coords []datastructure.Coordinate,
		turns []datastructure.TurnItem, times []datastructure.TimeItem, streets []datastructure.StreetItem,
		traffic []datastructure.SpeedGroup, altitudes []int16) (service.RouteSummary, error)
	UpdatePosition(ctx context.Context, id string, fix datastructure.GpsInfo) (service.PositionUpdate, error)
	Progress(ctx context.Context, id string) (service.ProgressInfo, error)
	NextTurns(ctx context.Context, id string) ([]service.TurnPreview, error)
	Subroute(ctx context.Context, id string, subrouteIdx int) (service.SubrouteDetail, error)
	SetSubrouteUID(ctx context.Context, id string, subrouteIdx int, uid uint64) error
	SetProfile(ctx context.Context, id, profile string) (service.RouteSummary, error)
	GetRoute(ctx context.Context, id string) (service.RouteDetail, error)
	NearbyRoutes(ctx context.Context, lat, lon, radiusM float64) ([]service.RouteSummary, error)
	RoutesStartingNear(ctx context.Context, lat, lon float64) ([]service.RouteSummary, error)
	DeleteRoute(ctx context.Context, id string) error
	ActiveRouteCount() int
}

type TrackerHandler struct {
	svc     TrackerService
	metrics *Metrics
}

func TrackerRouter(r *chi.Mux, svc TrackerService, m *Metrics) {
	handler := &TrackerHandler{svc, m}

	r.Group(func(r chi.Router) {
		r.Route("/api/routes", func(r chi.Router) {
			r.Post("/", handler.RegisterRoute)
			r.Get("/nearby", handler.NearbyRoutes)
			r.Get("/starting-near", handler.RoutesStartingNear)

			r.Route("/{routeID}", func(r chi.Router) {
				r.Get("/", handler.GetRoute)
				r.Delete("/", handler.DeleteRoute)
				r.Post("/legs", handler.AppendLeg)
				r.Post("/position", handler.UpdatePosition)
				r.Get("/progress", handler.Progress)
				r.Get("/turns", handler.NextTurns)
				r.Put("/profile", handler.SetProfile)
				r.Get("/subroutes/{subrouteIdx}", handler.Subroute)
				r.Put("/subroutes/{subrouteIdx}/uid", handler.SetSubrouteUID)
			})
		})
	})
}

// Coord model info
//
//	@Description	a geographic coordinate
type Coord struct {
	Lat float64 `json:"lat" validate:"required,lt=90,gt=-90"`
	Lon float64 `json:"lon" validate:"required,lt=180,gt=-180"`
}

// RegisterRouteRequest model info
//
//	@Description	request body for registering a followable route with its annotation tracks
type RegisterRouteRequest struct {
	ID            string                     `json:"id" validate:"required"`
	Name          string                     `json:"name"`
	Router        string                     `json:"router"`
	Profile       string                     `json:"profile" validate:"omitempty,oneof=car pedestrian"`
	Coordinates   []Coord                    `json:"coordinates" validate:"required,dive"`
	Turns         []datastructure.TurnItem   `json:"turns"`
	Times         []datastructure.TimeItem   `json:"times"`
	Streets       []datastructure.StreetItem `json:"streets"`
	Traffic       []datastructure.SpeedGroup `json:"traffic"`
	Altitudes     []int16                    `json:"altitudes"`
	AbsentRegions []string                   `json:"absent_regions"`
}

func (s *RegisterRouteRequest) Bind(r *http.Request) error {
	if len(s.Coordinates) == 0 {
		return errors.New("invalid request")
	}
	return nil
}

// AppendLegRequest model info
//
//	@Description	request body for splicing a continuation onto a registered route
type AppendLegRequest struct {
	Coordinates []Coord                    `json:"coordinates" validate:"required,dive"`
	Turns       []datastructure.TurnItem   `json:"turns"`
	Times       []datastructure.TimeItem   `json:"times"`
	Streets     []datastructure.StreetItem `json:"streets"`
	Traffic     []datastructure.SpeedGroup `json:"traffic"`
	Altitudes   []int16                    `json:"altitudes"`
}

func (s *AppendLegRequest) Bind(r *http.Request) error {
	if len(s.Coordinates) == 0 {
		return errors.New("invalid request")
	}
	return nil
}

// UpdatePositionRequest model info
//
//	@Description	one gps fix from the location provider. speed is meters per second, zero or missing means not reported
type UpdatePositionRequest struct {
	Timestamp          float64 `json:"timestamp" validate:"required"`
	Lat                float64 `json:"lat" validate:"required,lt=90,gt=-90"`
	Lon                float64 `json:"lon" validate:"required,lt=180,gt=-180"`
	HorizontalAccuracy float64 `json:"horizontal_accuracy"`
	Speed              float64 `json:"speed"`
	Bearing            float64 `json:"bearing"`
}

func (s *UpdatePositionRequest) Bind(r *http.Request) error {
	if s.Timestamp == 0 {
		return errors.New("invalid request")
	}
	if s.HorizontalAccuracy == 0 {
		s.HorizontalAccuracy = 10
	}
	if s.Speed == 0 {
		s.Speed = -1
	}
	return nil
}

// SetProfileRequest model info
//
//	@Description	request body for switching the routing profile of a route
type SetProfileRequest struct {
	Profile string `json:"profile" validate:"required,oneof=car pedestrian"`
}

func (s *SetProfileRequest) Bind(r *http.Request) error {
	if s.Profile == "" {
		return errors.New("invalid request")
	}
	return nil
}

// SetSubrouteUIDRequest model info
//
//	@Description	request body for claiming a subroute
type SetSubrouteUIDRequest struct {
	UID uint64 `json:"uid"`
}

func (s *SetSubrouteUIDRequest) Bind(r *http.Request) error {
	return nil
}

// RouteSummaryResponse model info
//
//	@Description	summary of a registered route
type RouteSummaryResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Router        string  `json:"router"`
	Profile       string  `json:"profile"`
	PointCount    int     `json:"point_count"`
	TotalDistance float64 `json:"total_distance_meters"`
	TotalTime     float64 `json:"total_time_seconds"`
	Polyline      string  `json:"polyline"`
}

func RenderRouteSummaryResponse(s service.RouteSummary) *RouteSummaryResponse {
	return &RouteSummaryResponse{
		ID:            s.ID,
		Name:          s.Name,
		Router:        s.Router,
		Profile:       s.Profile,
		PointCount:    s.PointCount,
		TotalDistance: util.RoundFloat(s.TotalDistanceM, 2),
		TotalTime:     util.RoundFloat(s.TotalTimeS, 2),
		Polyline:      s.Polyline,
	}
}

// RouteDetailResponse model info
//
//	@Description	a registered route with all annotation tracks
type RouteDetailResponse struct {
	RouteSummaryResponse
	Turns         []datastructure.TurnItem   `json:"turns,omitempty"`
	Times         []datastructure.TimeItem   `json:"times,omitempty"`
	Streets       []datastructure.StreetItem `json:"streets,omitempty"`
	Traffic       []string                   `json:"traffic,omitempty"`
	Altitudes     []int16                    `json:"altitudes,omitempty"`
	AbsentRegions []string                   `json:"absent_regions,omitempty"`
}

func RenderRouteDetailResponse(d service.RouteDetail) *RouteDetailResponse {
	traffic := make([]string, 0, len(d.Traffic))
	for _, sg := range d.Traffic {
		traffic = append(traffic, sg.String())
	}
	return &RouteDetailResponse{
		RouteSummaryResponse: *RenderRouteSummaryResponse(d.Summary),
		Turns:                d.Turns,
		Times:                d.Times,
		Streets:              d.Streets,
		Traffic:              traffic,
		Altitudes:            d.Altitudes,
		AbsentRegions:        d.AbsentRegions,
	}
}

// PositionResponse model info
//
//	@Description	the follow state right after a gps fix was matched
type PositionResponse struct {
	OnRoute       bool    `json:"on_route"`
	Snapped       bool    `json:"snapped"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	Bearing       float64 `json:"bearing"`
	Compass       string  `json:"compass"`
	SegmentIndex  int     `json:"segment_index"`
	DistFromStart float64 `json:"dist_from_start_meters"`
	DistToEnd     float64 `json:"dist_to_end_meters"`
	TimeToEnd     float64 `json:"time_to_end_seconds"`
	OnEnd         bool    `json:"on_end"`
	CurrentStreet string  `json:"current_street,omitempty"`
}

func RenderPositionResponse(p service.PositionUpdate) *PositionResponse {
	return &PositionResponse{
		OnRoute:       p.OnRoute,
		Snapped:       p.Snapped,
		Lat:           p.Lat,
		Lon:           p.Lon,
		Bearing:       util.RoundFloat(p.Bearing, 2),
		Compass:       datastructure.BearingToCompass(p.Bearing),
		SegmentIndex:  p.SegmentIndex,
		DistFromStart: util.RoundFloat(p.DistFromStartM, 2),
		DistToEnd:     util.RoundFloat(p.DistToEndM, 2),
		TimeToEnd:     util.RoundFloat(p.TimeToEndS, 2),
		OnEnd:         p.OnEnd,
		CurrentStreet: p.CurrentStreet,
	}
}

// ProgressResponse model info
//
//	@Description	the follow state at the current matched position
type ProgressResponse struct {
	TotalDistance float64 `json:"total_distance_meters"`
	DistFromStart float64 `json:"dist_from_start_meters"`
	DistToEnd     float64 `json:"dist_to_end_meters"`
	TotalTime     float64 `json:"total_time_seconds"`
	TimeToEnd     float64 `json:"time_to_end_seconds"`
	OnEnd         bool    `json:"on_end"`
	CurrentStreet string  `json:"current_street,omitempty"`
	Direction     *Coord  `json:"direction,omitempty"`
}

func RenderProgressResponse(p service.ProgressInfo) *ProgressResponse {
	resp := &ProgressResponse{
		TotalDistance: util.RoundFloat(p.TotalDistanceM, 2),
		DistFromStart: util.RoundFloat(p.DistFromStartM, 2),
		DistToEnd:     util.RoundFloat(p.DistToEndM, 2),
		TotalTime:     util.RoundFloat(p.TotalTimeS, 2),
		TimeToEnd:     util.RoundFloat(p.TimeToEndS, 2),
		OnEnd:         p.OnEnd,
		CurrentStreet: p.CurrentStreet,
	}
	if p.HasDirection {
		resp.Direction = &Coord{Lat: p.DirectionLat, Lon: p.DirectionLon}
	}
	return resp
}

// NextTurnsResponse model info
//
//	@Description	the maneuvers ahead of the current position, closest first
type NextTurnsResponse struct {
	Turns []struct {
		Index       uint32  `json:"index"`
		Sign        int     `json:"sign"`
		Type        string  `json:"type"`
		Instruction string  `json:"instruction"`
		Distance    float64 `json:"distance_meters"`
	} `json:"turns"`
}

func RenderNextTurnsResponse(previews []service.TurnPreview) *NextTurnsResponse {
	turnsResp := []struct {
		Index       uint32  `json:"index"`
		Sign        int     `json:"sign"`
		Type        string  `json:"type"`
		Instruction string  `json:"instruction"`
		Distance    float64 `json:"distance_meters"`
	}{}
	for _, p := range previews {
		turnsResp = append(turnsResp, struct {
			Index       uint32  "json:\"index\""
			Sign        int     "json:\"sign\""
			Type        string  "json:\"type\""
			Instruction string  "json:\"instruction\""
			Distance    float64 "json:\"distance_meters\""
		}{
			p.Index,
			p.Sign,
			p.Type,
			p.Instruction,
			util.RoundFloat(p.DistMeters, 2),
		})
	}
	return &NextTurnsResponse{Turns: turnsResp}
}

// SegmentRecordResponse model info
//
//	@Description	one geometry segment of a subroute
type SegmentRecordResponse struct {
	Index         uint32  `json:"index"`
	Sign          int     `json:"sign"`
	Type          string  `json:"type,omitempty"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	Altitude      *int16  `json:"altitude,omitempty"`
	Traffic       string  `json:"traffic"`
	DistFromStart float64 `json:"dist_from_start_meters"`
	TimeFromStart float64 `json:"time_from_start_seconds"`
}

// SubrouteResponse model info
//
//	@Description	the per segment breakdown of one subroute
type SubrouteResponse struct {
	Router            string                  `json:"router"`
	UID               uint64                  `json:"uid"`
	MatchingThreshold float64                 `json:"matching_threshold_meters"`
	Segments          []SegmentRecordResponse `json:"segments"`
}

func RenderSubrouteResponse(d service.SubrouteDetail) *SubrouteResponse {
	segments := make([]SegmentRecordResponse, 0, len(d.Segments))
	for _, seg := range d.Segments {
		rec := SegmentRecordResponse{
			Index:         seg.Index,
			Sign:          seg.Turn,
			Type:          seg.TurnType,
			Lat:           seg.Lat,
			Lon:           seg.Lon,
			Traffic:       seg.Traffic,
			DistFromStart: util.RoundFloat(seg.DistFromStartM, 2),
			TimeFromStart: util.RoundFloat(seg.TimeFromStartS, 2),
		}
		if seg.HasAltitude {
			altitude := seg.AltitudeM
			rec.Altitude = &altitude
		}
		segments = append(segments, rec)
	}
	return &SubrouteResponse{
		Router:            d.Router,
		UID:               d.UID,
		MatchingThreshold: d.MatchingThresholdM,
		Segments:          segments,
	}
}

// OkResponse model info
//
//	@Description	acknowledgement for operations without a result body
type OkResponse struct {
	Status string `json:"status"`
}

func RenderOkResponse() *OkResponse {
	return &OkResponse{Status: "ok"}
}

// RoutesResponse model info
//
//	@Description	a list of route summaries
type RoutesResponse struct {
	Routes []RouteSummaryResponse `json:"routes"`
}

func RenderRoutesResponse(summaries []service.RouteSummary) *RoutesResponse {
	routes := make([]RouteSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		routes = append(routes, *RenderRouteSummaryResponse(s))
	}
	return &RoutesResponse{Routes: routes}
}

// RegisterRoute
//
//	@Summary		register a followable route. the geometry plus optional turn, time, street, traffic and altitude tracks
//	@Description	register a followable route. the route is persisted, spatially indexed, and a follow session is opened for it
//	@Tags			routes
//	@Param			body	body	RegisterRouteRequest	true	"request body for registering a route"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes [post]
//	@Success		200	{object}	RouteSummaryResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		409	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *TrackerHandler) RegisterRoute(w http.ResponseWriter, r *http.Request) {
	data := &RegisterRouteRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	validate := validator.New()
	if err := validate.Struct(*data); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		render.Render(w, r, ErrValidation(err, vv))
		return
	}

	summary, err := h.svc.RegisterRoute(r.Context(), data.ID, data.Name, data.Router, data.Profile,
		toCoordinates(data.Coordinates), data.Turns, data.Times, data.Streets, data.Traffic,
		data.Altitudes, data.AbsentRegions)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	h.metrics.SetActiveRoutes(h.svc.ActiveRouteCount())

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderRouteSummaryResponse(summary))
}

// AppendLeg
//
//	@Summary		splice a continuation onto a registered route
//	@Description	splice a continuation onto a registered route. the leg must start on the current route end and end with an arrival turn
//	@Tags			routes
//	@Param			routeID	path	string			true	"route id"
//	@Param			body	body	AppendLegRequest	true	"request body for appending a leg"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes/{routeID}/legs [post]
//	@Success		200	{object}	RouteSummaryResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *TrackerHandler) AppendLeg(w http.ResponseWriter, r *http.Request) {
	data := &AppendLegRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	validate := validator.New()
	if err := validate.Struct(*data); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		render.Render(w, r, ErrValidation(err, vv))
		return
	}

	summary, err := h.svc.AppendLeg(r.Context(), chi.URLParam(r, "routeID"),
		toCoordinates(data.Coordinates), data.Turns, data.Times, data.Streets, data.Traffic, data.Altitudes)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderRouteSummaryResponse(summary))
}

// UpdatePosition
//
//	@Summary		feed one gps fix into the follow session of a route
//	@Description	feed one gps fix into the follow session. the position is matched onto the route and the updated follow state is returned
//	@Tags			routes
//	@Param			routeID	path	string					true	"route id"
//	@Param			body	body	UpdatePositionRequest	true	"the gps fix"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes/{routeID}/position [post]
//	@Success		200	{object}	PositionResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *TrackerHandler) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	data := &UpdatePositionRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	validate := validator.New()
	if err := validate.Struct(*data); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		render.Render(w, r, ErrValidation(err, vv))
		return
	}

	fix := datastructure.NewGpsInfo(data.Timestamp, data.Lat, data.Lon,
		data.HorizontalAccuracy, data.Speed, data.Bearing)
	pu, err := h.svc.UpdatePosition(r.Context(), chi.URLParam(r, "routeID"), fix)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	h.metrics.ObservePositionUpdate(pu.OnRoute)

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderPositionResponse(pu))
}

// Progress
//
//	@Summary		report the follow state of a route at the current matched position
//	@Description	report distances, remaining time, arrival flag and the current street without feeding a new fix
//	@Tags			routes
//	@Param			routeID	path	string	true	"route id"
//	@Produce		application/json
//	@Router			/routes/{routeID}/progress [get]
//	@Success		200	{object}	ProgressResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *TrackerHandler) Progress(w http.ResponseWriter, r *http.Request) {
	info, err := h.svc.Progress(r.Context(), chi.URLParam(r, "routeID"))
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderProgressResponse(info))
}

// NextTurns
//
//	@Summary		list the maneuvers ahead of the current position
//	@Description	list the maneuvers ahead of the current position, closest first, with instructions rendered against the street name track
//	@Tags			routes
//	@Param			routeID	path	string	true	"route id"
//	@Produce		application/json
//	@Router			/routes/{routeID}/turns [get]
//	@Success		200	{object}	NextTurnsResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *TrackerHandler) NextTurns(w http.ResponseWriter, r *http.Request) {
	previews, err := h.svc.NextTurns(r.Context(), chi.URLParam(r, "routeID"))
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderNextTurnsResponse(previews))
}

// Subroute
//
//	@Summary		the per segment breakdown of one subroute
//	@Description	per segment maneuvers, junctions, altitudes, traffic and cumulative distance of one subroute
//	@Tags			routes
//	@Param			routeID		path	string	true	"route id"
//	@Param			subrouteIdx	path	int		true	"subroute index"
//	@Produce		application/json
//	@Router			/routes/{routeID}/subroutes/{subrouteIdx} [get]
//	@Success		200	{object}	SubrouteResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *TrackerHandler) Subroute(w http.ResponseWriter, r *http.Request) {
	subrouteIdx, err := strconv.Atoi(chi.URLParam(r, "subrouteIdx"))
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(errors.New("invalid subroute index")))
		return
	}

	detail, err := h.svc.Subroute(r.Context(), chi.URLParam(r, "routeID"), subrouteIdx)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderSubrouteResponse(detail))
}

// SetSubrouteUID
//
//	@Summary		claim a subroute for a consumer
//	@Description	claim a subroute for a consumer by storing its uid on the subroute
//	@Tags			routes
//	@Param			routeID		path	string					true	"route id"
//	@Param			subrouteIdx	path	int						true	"subroute index"
//	@Param			body		body	SetSubrouteUIDRequest	true	"the uid to store"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes/{routeID}/subroutes/{subrouteIdx}/uid [put]
//	@Success		200	{object}	OkResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *TrackerHandler) SetSubrouteUID(w http.ResponseWriter, r *http.Request) {
	subrouteIdx, err := strconv.Atoi(chi.URLParam(r, "subrouteIdx"))
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(errors.New("invalid subroute index")))
		return
	}
	data := &SetSubrouteUIDRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	if err := h.svc.SetSubrouteUID(r.Context(), chi.URLParam(r, "routeID"), subrouteIdx, data.UID); err != nil {
		renderServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderOkResponse())
}

// SetProfile
//
//	@Summary		switch the routing profile of a route
//	@Description	switch between the car and pedestrian follow profiles. the pedestrian profile matches tighter and keeps device bearings
//	@Tags			routes
//	@Param			routeID	path	string				true	"route id"
//	@Param			body	body	SetProfileRequest	true	"the profile to switch to"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes/{routeID}/profile [put]
//	@Success		200	{object}	RouteSummaryResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *TrackerHandler) SetProfile(w http.ResponseWriter, r *http.Request) {
	data := &SetProfileRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	validate := validator.New()
	if err := validate.Struct(*data); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		render.Render(w, r, ErrValidation(err, vv))
		return
	}

	summary, err := h.svc.SetProfile(r.Context(), chi.URLParam(r, "routeID"), data.Profile)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderRouteSummaryResponse(summary))
}

// GetRoute
//
//	@Summary		a registered route with all annotation tracks
//	@Description	the stored route, its geometry polyline and the turn, time, street, traffic and altitude tracks
//	@Tags			routes
//	@Param			routeID	path	string	true	"route id"
//	@Produce		application/json
//	@Router			/routes/{routeID} [get]
//	@Success		200	{object}	RouteDetailResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *TrackerHandler) GetRoute(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.GetRoute(r.Context(), chi.URLParam(r, "routeID"))
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderRouteDetailResponse(detail))
}

// DeleteRoute
//
//	@Summary		delete a registered route
//	@Description	remove a route from the follow session registry, the store and the spatial index
//	@Tags			routes
//	@Param			routeID	path	string	true	"route id"
//	@Produce		application/json
//	@Router			/routes/{routeID} [delete]
//	@Success		200	{object}	OkResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *TrackerHandler) DeleteRoute(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteRoute(r.Context(), chi.URLParam(r, "routeID")); err != nil {
		renderServiceError(w, r, err)
		return
	}
	h.metrics.SetActiveRoutes(h.svc.ActiveRouteCount())

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderOkResponse())
}

// NearbyRoutes
//
//	@Summary		registered routes passing near a position
//	@Description	registered routes whose geometry passes within radius meters of the given position
//	@Tags			routes
//	@Param			lat		query	number	true	"latitude"
//	@Param			lon		query	number	true	"longitude"
//	@Param			radius	query	number	false	"search radius in meters, default 500"
//	@Produce		application/json
//	@Router			/routes/nearby [get]
//	@Success		200	{object}	RoutesResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *TrackerHandler) NearbyRoutes(w http.ResponseWriter, r *http.Request) {
	lat, lon, err := queryLatLon(r)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	radiusM := 500.0
	if raw := r.URL.Query().Get("radius"); raw != "" {
		radiusM, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			render.Render(w, r, ErrInvalidRequest(errors.New("invalid radius")))
			return
		}
	}

	summaries, err := h.svc.NearbyRoutes(r.Context(), lat, lon, radiusM)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderRoutesResponse(summaries))
}

// RoutesStartingNear
//
//	@Summary		stored routes starting near a position
//	@Description	stored routes whose start point falls in the h3 neighborhood of the given position
//	@Tags			routes
//	@Param			lat	query	number	true	"latitude"
//	@Param			lon	query	number	true	"longitude"
//	@Produce		application/json
//	@Router			/routes/starting-near [get]
//	@Success		200	{object}	RoutesResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *TrackerHandler) RoutesStartingNear(w http.ResponseWriter, r *http.Request) {
	lat, lon, err := queryLatLon(r)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	summaries, err := h.svc.RoutesStartingNear(r.Context(), lat, lon)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderRoutesResponse(summaries))
}

func queryLatLon(r *http.Request) (float64, float64, error) {
	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		return 0, 0, errors.New("invalid lat")
	}
	lon, err := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil {
		return 0, 0, errors.New("invalid lon")
	}
	if lat <= -90 || lat >= 90 || lon <= -180 || lon >= 180 {
		return 0, 0, errors.New("coordinate out of range")
	}
	return lat, lon, nil
}

func toCoordinates(coords []Coord) []datastructure.Coordinate {
	out := []datastructure.Coordinate{}
	for _, c := range coords {
		out = append(out, datastructure.Coordinate{
			Lat: c.Lat,
			Lon: c.Lon,
		})
	}
	return out
}

// renderServiceError maps the error code of a failed service call onto an
// http status.
func renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var svcErr *server.Error
	if errors.As(err, &svcErr) {
		switch svcErr.Code() {
		case server.ErrNotFound:
			render.Render(w, r, ErrNotFoundRend(err))
			return
		case server.ErrBadParamInput:
			render.Render(w, r, ErrInvalidRequest(err))
			return
		case server.ErrConflict:
			render.Render(w, r, ErrConflictRend(err))
			return
		}
	}
	render.Render(w, r, ErrInternalServerErrorRend(errors.New("internal server error")))
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

// ErrResponse model info
//
//	@Description	model for an error response
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText    string   `json:"status"`          // user-level status message
	AppCode       int64    `json:"code,omitempty"`  // application-specific error code
	ErrorText     string   `json:"error,omitempty"` // application-level error message, for debugging
	ErrValidation []string `json:"validation,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	validatorErrs := err.(validator.ValidationErrors)
	for _, e := range validatorErrs {
		translatedErr := fmt.Errorf(e.Translate(trans))
		errs = append(errs, translatedErr)
	}
	return errs
}

func ErrValidation(err error, errV []error) render.Renderer {
	vv := []string{}
	for _, v := range errV {
		vv = append(vv, v.Error())
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  vv,
	}
}

func ErrNotFoundRend(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 404,
		StatusText:     "Resource not found.",
		ErrorText:      err.Error(),
	}
}

func ErrConflictRend(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 409,
		StatusText:     "Conflict.",
		ErrorText:      err.Error(),
	}
}

func ErrInternalServerErrorRend(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 500,
		StatusText:     "Internal server error.",
		ErrorText:      err.Error(),
	}
}
