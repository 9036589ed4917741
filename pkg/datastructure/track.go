package datastructure

import "math"

// TimeItem annotates one polyline point with the cumulative travel time in
// seconds from the route start to that point.
type TimeItem struct {
	Index uint32  `json:"index"`
	Time  float64 `json:"time"`
}

func NewTimeItem(index uint32, time float64) TimeItem {
	return TimeItem{Index: index, Time: time}
}

// StreetItem annotates one polyline point with the street name in effect from
// that point onward, until the next item.
type StreetItem struct {
	Index uint32 `json:"index"`
	Name  string `json:"name"`
}

func NewStreetItem(index uint32, name string) StreetItem {
	return StreetItem{Index: index, Name: name}
}

// SpeedGroup classifies the realtime traffic flow on one polyline segment.
// ordered from fully blocked to free flow, with Unknown for segments the
// traffic provider has no data for.
type SpeedGroup uint8

const (
	SpeedGroupTempBlock SpeedGroup = iota
	SpeedGroupHeavy
	SpeedGroupSlow
	SpeedGroupModerate
	SpeedGroupNormal
	SpeedGroupFree
	SpeedGroupUnknown
)

func (s SpeedGroup) String() string {
	switch s {
	case SpeedGroupTempBlock:
		return "TEMP_BLOCK"
	case SpeedGroupHeavy:
		return "HEAVY"
	case SpeedGroupSlow:
		return "SLOW"
	case SpeedGroupModerate:
		return "MODERATE"
	case SpeedGroupNormal:
		return "NORMAL"
	case SpeedGroupFree:
		return "FREE"
	default:
		return "UNKNOWN"
	}
}

// InvalidAltitude marks points without elevation data in the altitudes track.
const InvalidAltitude = int16(math.MinInt16)

// SegmentInfo describes one step of a subroute: the polyline point a segment
// ends at, together with the annotations in effect there. Records are built
// for points 1..N-1, so Traffic always refers to the segment arriving at
// Junction.
type SegmentInfo struct {
	Turn                TurnItem   `json:"turn"`
	Junction            Point      `json:"junction"`
	Altitude            int16      `json:"altitude"`
	DistFromStartMeters float64    `json:"dist_from_start_meters"`
	DistFromStartMerc   float64    `json:"dist_from_start_merc"`
	TimeFromStartS      float64    `json:"time_from_start_s"`
	Traffic             SpeedGroup `json:"traffic"`
}

func NewSegmentInfo(turn TurnItem, junction Point, altitude int16,
	distFromStartMeters, distFromStartMerc, timeFromStartS float64, traffic SpeedGroup) SegmentInfo {
	return SegmentInfo{
		Turn:                turn,
		Junction:            junction,
		Altitude:            altitude,
		DistFromStartMeters: distFromStartMeters,
		DistFromStartMerc:   distFromStartMerc,
		TimeFromStartS:      timeFromStartS,
		Traffic:             traffic,
	}
}
