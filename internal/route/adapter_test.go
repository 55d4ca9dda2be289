package route

import (
	"context"
	"testing"
)

func TestHaversinePlannerDeterministic(t *testing.T) {
	planner := NewHaversinePlanner()
	ctx := context.Background()

	origin := Coordinates{Lat: 40.4168, Lng: -3.7038}
	dest := Coordinates{Lat: 39.4699, Lng: -0.3763}

	first, err := planner.Calculate(ctx, origin, dest, MethodVehicle, "")
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	second, err := planner.Calculate(ctx, origin, dest, MethodVehicle, "fastest")
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}

	if first.DistanceM != second.DistanceM || first.DurationSec != second.DurationSec {
		t.Fatalf("expected deterministic results: %+v vs %+v", first, second)
	}
	if first.DistanceM <= 0 || first.DurationSec <= 0 {
		t.Fatalf("expected positive distance and duration: %+v", first)
	}
	if len(first.Path) < 2 {
		t.Fatalf("expected a path through at least both endpoints")
	}
	if first.Method != MethodVehicle {
		t.Fatalf("expected method stamped on route")
	}
}

func TestHaversinePlannerMethodSensitivity(t *testing.T) {
	planner := NewHaversinePlanner()
	ctx := context.Background()

	origin := Coordinates{Lat: 40.4168, Lng: -3.7038}
	dest := Coordinates{Lat: 40.4300, Lng: -3.6900}

	car, _ := planner.Calculate(ctx, origin, dest, MethodVehicle, "")
	foot, _ := planner.Calculate(ctx, origin, dest, MethodFoot, "")
	bike, _ := planner.Calculate(ctx, origin, dest, MethodBike, "")

	if !(foot.DurationSec > bike.DurationSec && bike.DurationSec > car.DurationSec) {
		t.Fatalf("expected walking slower than cycling slower than driving: %d %d %d",
			foot.DurationSec, bike.DurationSec, car.DurationSec)
	}
}

func TestHaversinePlannerZeroDistance(t *testing.T) {
	planner := NewHaversinePlanner()
	p := Coordinates{Lat: 40.0, Lng: -3.0}

	r, err := planner.Calculate(context.Background(), p, p, MethodFoot, "")
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if r.DistanceM != 0 || r.DurationSec != 0 {
		t.Fatalf("expected zero distance and duration: %+v", r)
	}
}
