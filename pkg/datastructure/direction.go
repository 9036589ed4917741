package datastructure

import (
	"fmt"
	"strings"
)

const (
	UNKNOWN            = -9999
	U_TURN_UNKNOWN     = -999
	U_TURN_LEFT        = -8
	KEEP_LEFT          = -7
	LEAVE_ROUNDABOUT   = -6
	TURN_SHARP_LEFT    = -3
	TURN_LEFT          = -2
	TURN_SLIGHT_LEFT   = -1
	CONTINUE_ON_STREET = 0
	TURN_SLIGHT_RIGHT  = 1
	TURN_RIGHT         = 2
	TURN_SHARP_RIGHT   = 3
	FINISH             = 4
	USE_ROUNDABOUT     = 6
	IGNORE             = 9999999
	KEEP_RIGHT         = 7
	U_TURN_RIGHT       = 8
	START              = 101
)

// TurnItem annotates one polyline point with a maneuver. Index is the polyline
// point index the maneuver happens at, Turn is one of the sign constants above.
// a populated turns track always ends with FINISH at the last point index.
type TurnItem struct {
	Index uint32 `json:"index"`
	Turn  int    `json:"turn"`
}

func NewTurnItem(index uint32, turn int) TurnItem {
	return TurnItem{Index: index, Turn: turn}
}

func (t TurnItem) IsValid() bool {
	return t.Turn != UNKNOWN
}

// TurnItemDist pairs a turn with its distance in meters from the currently
// matched position.
type TurnItemDist struct {
	Turn       TurnItem `json:"turn"`
	DistMeters float64  `json:"dist_meters"`
}

func NewTurnItemDist(turn TurnItem, distMeters float64) TurnItemDist {
	return TurnItemDist{Turn: turn, DistMeters: distMeters}
}

// GetTurnDescription renders a human readable instruction for a maneuver, e.g.
// "Turn right onto Jalan Slamet Riyadi".
func GetTurnDescription(sign int, streetName string) string {
	var description string

	switch sign {
	case CONTINUE_ON_STREET:
		if isEmpty(streetName) {
			description = "Continue"
		} else {
			description = fmt.Sprintf("Continue onto %s", streetName)
		}
	case START:
		if isEmpty(streetName) {
			description = "Head to your route"
		} else {
			description = fmt.Sprintf("Head toward %s", streetName)
		}
	case FINISH:
		description = fmt.Sprint("you have arrived at your destination")
	default:
		dir, _ := getDirectionDescription(sign)
		if dir == "" {
			description = fmt.Sprintf("unknown  %d", sign)
		} else {
			if isEmpty(streetName) {
				description = dir
			} else {
				switch dir {
				case "Keep left":
					description = fmt.Sprintf("%s to continue on %s", dir, streetName)
				case "Keep right":
					description = fmt.Sprintf("%s continue on %s", dir, streetName)
				default:
					description = fmt.Sprintf("%s onto %s", dir, streetName)
				}
			}
		}
	}

	return description
}

// GetTurnType returns the canonical name of a maneuver sign ("TURN_LEFT", ...).
func GetTurnType(sign int) string {
	switch sign {
	case CONTINUE_ON_STREET:
		return "CONTINUE_ON_STREET"
	case START:
		return "START"
	case FINISH:
		return "FINISH"
	default:
		_, turnType := getDirectionDescription(sign)
		return turnType
	}
}

func BearingToCompass(bearing float64) string {
	if bearing < 22.5 {
		return "North"
	} else if bearing < 67.5 {
		return "North East"
	} else if bearing < 112.5 {
		return "East"
	} else if bearing < 157.5 {
		return "South East"
	} else if bearing < 202.5 {
		return "South"
	} else if bearing < 247.5 {
		return "South West"
	} else if bearing < 292.5 {
		return "West"
	} else if bearing < 337.5 {
		return "North West"
	} else {
		return "North"
	}
}

func getDirectionDescription(sign int) (string, string) {
	switch sign {
	case U_TURN_UNKNOWN:
		return "Make U-turn", "U_TURN_RIGHT"
	case U_TURN_RIGHT:
		return "Make U-turn right", "U_TURN_RIGHT"
	case U_TURN_LEFT:
		return "Make U-turn left", "U_TURN_LEFT"
	case KEEP_LEFT:
		return "Keep left", "KEEP_LEFT"
	case TURN_SHARP_LEFT:
		return "Turn sharp left", "TURN_SHARP_LEFT"
	case TURN_LEFT:
		return "Turn left", "TURN_LEFT"
	case TURN_SLIGHT_LEFT:
		return "Turn slight left", "TURN_SLIGHT_LEFT"
	case TURN_SLIGHT_RIGHT:
		return "Turn slight right", "TURN_SLIGHT_RIGHT"
	case TURN_RIGHT:
		return "Turn right", "TURN_RIGHT"
	case TURN_SHARP_RIGHT:
		return "Turn sharp right", "TURN_SHARP_RIGHT"
	case KEEP_RIGHT:
		return "Keep right", "KEEP_RIGHT"
	case USE_ROUNDABOUT:
		return "Enter the roundabout", "USE_ROUNDABOUT"
	case LEAVE_ROUNDABOUT:
		return "Leave the roundabout", "LEAVE_ROUNDABOUT"
	default:
		return "", ""
	}
}

func isEmpty(str string) bool {
	return strings.TrimSpace(str) == ""
}
