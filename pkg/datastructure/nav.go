package datastructure

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

func NewCoordinates(lat, lon []float64) []Coordinate {
	coords := make([]Coordinate, len(lat))
	for i := range lat {
		coords[i] = NewCoordinate(lat[i], lon[i])
	}
	return coords
}

// GpsInfo is a single position fix from the location provider. Timestamp is
// unix seconds (fractional allowed). Speed is meters per second, negative when
// the provider did not report one. Bearing is compass degrees.
type GpsInfo struct {
	Timestamp          float64
	Lat                float64
	Lon                float64
	HorizontalAccuracy float64
	Speed              float64
	Bearing            float64
}

func NewGpsInfo(timestamp, lat, lon, horizontalAccuracy, speed, bearing float64) GpsInfo {
	return GpsInfo{
		Timestamp:          timestamp,
		Lat:                lat,
		Lon:                lon,
		HorizontalAccuracy: horizontalAccuracy,
		Speed:              speed,
		Bearing:            bearing,
	}
}

func (g *GpsInfo) HasSpeed() bool {
	return g.Speed >= 0
}

// RouteMatchingInfo is the snapshot consumed by map matched rendering: the
// projected position on the route, the segment index it lies on, and the
// planar distance from the route start.
type RouteMatchingInfo struct {
	MatchedPoint      Point
	IndexInRoute      int
	DistFromStartMerc float64
	HasMatchingInfo   bool
}

func (r *RouteMatchingInfo) Set(matched Point, index int, distFromStartMerc float64) {
	r.MatchedPoint = matched
	r.IndexInRoute = index
	r.DistFromStartMerc = distFromStartMerc
	r.HasMatchingInfo = true
}
