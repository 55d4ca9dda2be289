package route

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrRouteNotCalculated  = errors.New("no route calculated for user")
	ErrVehicleNotFound     = errors.New("vehicle not found")
	ErrInvalidMethod       = errors.New("invalid mobility method")
	ErrNameTaken           = errors.New("saved route name already in use")
	ErrSavedRouteNotFound  = errors.New("saved route not found")
	ErrRoutingUnavailable  = errors.New("routing service unavailable")
	ErrFuelUnavailable     = errors.New("fuel cost service unavailable")
	ErrCaloriesUnavailable = errors.New("calorie cost service unavailable")
)
