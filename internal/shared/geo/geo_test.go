package geo

import "testing"

func TestHaversineKm(t *testing.T) {
	// Madrid (40.4168, -3.7038) to Valencia (39.4699, -0.3763) ~ 300-310 km
	d := HaversineKm(40.4168, -3.7038, 39.4699, -0.3763)
	if d < 280 || d > 330 {
		t.Fatalf("unexpected distance: %v", d)
	}
}

func TestHaversineKmZero(t *testing.T) {
	if d := HaversineKm(40.0, -3.0, 40.0, -3.0); d != 0 {
		t.Fatalf("expected zero distance, got %v", d)
	}
}
