package route

import (
	"strings"
	"time"
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Method is the mode of travel a route is computed for.
type Method string

const (
	MethodVehicle Method = "vehicle"
	MethodFoot    Method = "foot"
	MethodBike    Method = "bike"
)

// ParseMethod accepts the canonical tokens plus the es-ES aliases the
// original API exposed.
func ParseMethod(s string) (Method, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vehicle", "vehiculo":
		return MethodVehicle, true
	case "foot", "pie", "a pie":
		return MethodFoot, true
	case "bike", "bici", "bicicleta":
		return MethodBike, true
	}
	return "", false
}

// RouteType classifies a computed route.
type RouteType string

const (
	TypeFastest  RouteType = "fastest"
	TypeShortest RouteType = "shortest"
	TypeBalanced RouteType = "balanced"
)

func ParseRouteType(s string) (RouteType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fastest", "rapida":
		return TypeFastest, true
	case "shortest", "corta":
		return TypeShortest, true
	case "balanced", "economica":
		return TypeBalanced, true
	}
	return "", false
}

type Route struct {
	ID          string        `json:"id"`
	Origin      Coordinates   `json:"origin"`
	Destination Coordinates   `json:"destination"`
	DistanceM   int           `json:"distance_m"`
	DurationSec int           `json:"duration_sec"`
	Method      Method        `json:"method"`
	Type        RouteType     `json:"type"`
	Path        []Coordinates `json:"path"`
	Cost        *Cost         `json:"cost,omitempty"`
}

type CostType string

const (
	CostFuel    CostType = "fuel"
	CostCalorie CostType = "calorie"
)

type Energy struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Cost is a cost estimate for a computed route. EconomicCost is nil for
// calorie costs and always set for fuel costs.
type Cost struct {
	Type         CostType `json:"type"`
	VehicleName  string   `json:"vehicle_name,omitempty"`
	Energy       Energy   `json:"energy"`
	EconomicCost *float64 `json:"economic_cost"`
}

// SavedRoute is a named snapshot of a previously computed route. Names are
// unique per user; only the favorite flag mutates after save.
type SavedRoute struct {
	ID       string    `json:"id"`
	UserID   string    `json:"-"`
	Name     string    `json:"name"`
	Route    Route     `json:"route"`
	Favorite bool      `json:"favorite"`
	SavedAt  time.Time `json:"saved_at"`
}
