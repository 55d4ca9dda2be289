package preference

import "time"

// Preferences holds a user's optional defaults for route planning. Zero
// values mean "not set".
type Preferences struct {
	UserID           string    `json:"user_id"`
	DefaultVehicleID string    `json:"default_vehicle_id"`
	DefaultRouteType string    `json:"default_route_type"`
	UpdatedAt        time.Time `json:"updated_at"`
}
