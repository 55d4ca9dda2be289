package route

import "backend-wayfarer/internal/preference"

// ResolveRouteType picks the route classification for a request: an explicit
// valid value wins, then the user's stored default, then balanced.
func ResolveRouteType(explicit string, prefs preference.Preferences) RouteType {
	if t, ok := ParseRouteType(explicit); ok {
		return t
	}
	if t, ok := ParseRouteType(prefs.DefaultRouteType); ok {
		return t
	}
	return TypeBalanced
}

// Hint maps a route type to the provider preference parameter. Total over
// the enum; anything unrecognized falls back to the balanced hint.
func (t RouteType) Hint() string {
	switch t {
	case TypeFastest:
		return "fastest"
	case TypeShortest:
		return "shortest"
	default:
		return "recommended"
	}
}
