package route

import (
	"errors"
	"math"

	"backend-wayfarer/internal/vehicle"
)

// CostStrategy turns a computed route (plus an optional vehicle) into a
// cost estimate.
type CostStrategy interface {
	Calculate(r Route, v *vehicle.Vehicle) (Cost, error)
}

// FuelStrategy estimates fuel consumption and its economic cost from the
// vehicle's consumption rate. liters = km * consumption/100; economic cost
// multiplies the rounded liters by the configured price per liter.
type FuelStrategy struct {
	PricePerLiter float64
}

func (s FuelStrategy) Calculate(r Route, v *vehicle.Vehicle) (Cost, error) {
	if v == nil {
		return Cost{}, errors.New("fuel cost requires a vehicle")
	}
	if v.ConsumptionPer100Km < 0 {
		return Cost{}, errors.New("negative consumption rate")
	}

	km := float64(r.DistanceM) / 1000
	liters := round2(km * v.ConsumptionPer100Km / 100)
	economic := round2(liters * s.PricePerLiter)

	return Cost{
		Type:         CostFuel,
		VehicleName:  v.Name,
		Energy:       Energy{Value: liters, Unit: "liters"},
		EconomicCost: &economic,
	}, nil
}

// CalorieStrategy estimates calories burned; vehicle-independent and never
// carries an economic cost.
type CalorieStrategy struct {
	PerKm float64
}

func (s CalorieStrategy) Calculate(r Route, _ *vehicle.Vehicle) (Cost, error) {
	km := float64(r.DistanceM) / 1000
	kcal := round2(km * s.PerKm)

	return Cost{
		Type:   CostCalorie,
		Energy: Energy{Value: kcal, Unit: "kcal"},
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
