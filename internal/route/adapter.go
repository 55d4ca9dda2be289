package route

import (
	"context"

	"backend-wayfarer/internal/shared/geo"

	"github.com/google/uuid"
)

// Planner computes a route between two points for a mobility method. The
// preference hint is consumed opaquely by the implementation; empty means
// no preference.
type Planner interface {
	Calculate(ctx context.Context, origin, destination Coordinates, method Method, hint string) (Route, error)
}

// HaversinePlanner is a deterministic offline planner: straight-line
// distance scaled by a per-method winding factor, duration from a fixed
// cruising speed. It needs no network and never fails.
type HaversinePlanner struct{}

func NewHaversinePlanner() *HaversinePlanner {
	return &HaversinePlanner{}
}

func methodProfile(m Method) (windingFactor, speedKmh float64) {
	switch m {
	case MethodFoot:
		return 1.2, 5
	case MethodBike:
		return 1.25, 15
	default:
		return 1.3, 60
	}
}

func (p *HaversinePlanner) Calculate(_ context.Context, origin, destination Coordinates, method Method, _ string) (Route, error) {
	winding, speed := methodProfile(method)

	km := geo.HaversineKm(origin.Lat, origin.Lng, destination.Lat, destination.Lng) * winding
	distanceM := int(km * 1000)
	durationSec := 0
	if speed > 0 {
		durationSec = int(km / speed * 3600)
	}

	midpoint := Coordinates{
		Lat: (origin.Lat + destination.Lat) / 2,
		Lng: (origin.Lng + destination.Lng) / 2,
	}

	return Route{
		ID:          uuid.NewString(),
		Origin:      origin,
		Destination: destination,
		DistanceM:   distanceM,
		DurationSec: durationSec,
		Method:      method,
		Type:        TypeBalanced,
		Path:        []Coordinates{origin, midpoint, destination},
	}, nil
}
