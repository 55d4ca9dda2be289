package vehicle

import "time"

type Vehicle struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"user_id"`
	Name                string    `json:"name"`
	FuelType            string    `json:"fuel_type"`
	ConsumptionPer100Km float64   `json:"consumption_per_100km"`
	CreatedAt           time.Time `json:"created_at"`
}
