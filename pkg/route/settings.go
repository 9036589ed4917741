package route

// RoutingSettings bundles the per profile constants used while following a
// route. Profiles are value types, callers copy and tweak them freely.
type RoutingSettings struct {
	// MatchBearing lets the matcher overwrite the bearing of a snapped fix
	// with the direction of the current route segment.
	MatchBearing bool
	// KeepPedestrianInfo retains a simplified copy of the geometry used for
	// direction lookahead on small displays.
	KeepPedestrianInfo bool
	// MatchingThresholdM is the maximum distance in meters between a fix and
	// the route for the fix to count as on route.
	MatchingThresholdM float64
}

func NewRoutingSettings(matchBearing, keepPedestrianInfo bool, matchingThresholdM float64) RoutingSettings {
	return RoutingSettings{
		MatchBearing:       matchBearing,
		KeepPedestrianInfo: keepPedestrianInfo,
		MatchingThresholdM: matchingThresholdM,
	}
}

func CarRoutingSettings() RoutingSettings {
	return NewRoutingSettings(true, false, 50.0)
}

func PedestrianRoutingSettings() RoutingSettings {
	return NewRoutingSettings(false, true, 20.0)
}

// InvalidSubrouteUID marks a subroute that has not been claimed by a consumer.
const InvalidSubrouteUID = ^uint64(0)

// SubrouteSettings is the per subroute bundle handed to consumers rendering
// or re-requesting a part of the route.
type SubrouteSettings struct {
	Settings RoutingSettings
	Router   string
	UID      uint64
}

func NewSubrouteSettings(settings RoutingSettings, router string, uid uint64) SubrouteSettings {
	return SubrouteSettings{Settings: settings, Router: router, UID: uid}
}
