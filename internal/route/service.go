package route

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"backend-wayfarer/internal/db"
	"backend-wayfarer/internal/preference"
	"backend-wayfarer/internal/vehicle"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserDirectory resolves a user id from an email; "" means no such user.
type UserDirectory interface {
	FindIDByEmail(ctx context.Context, email string) (string, error)
}

type VehicleDirectory interface {
	FindByUser(ctx context.Context, userID string) ([]vehicle.Vehicle, error)
}

type PreferencesStore interface {
	GetByUser(ctx context.Context, email string) (preference.Preferences, error)
}

// Service coordinates route planning: it resolves route types, invokes the
// planner, keeps the per-user last-route cache, derives cost estimates and
// manages saved routes.
type Service struct {
	db       db.Querier
	users    UserDirectory
	vehicles VehicleDirectory
	prefs    PreferencesStore
	planner  Planner
	cache    Cache
	fuel     FuelStrategy
	calories CalorieStrategy
}

func NewService(db db.Querier, users UserDirectory, vehicles VehicleDirectory, prefs PreferencesStore, planner Planner, cache Cache, fuelPricePerLiter, caloriesPerKm float64) *Service {
	return &Service{
		db:       db,
		users:    users,
		vehicles: vehicles,
		prefs:    prefs,
		planner:  planner,
		cache:    cache,
		fuel:     FuelStrategy{PricePerLiter: fuelPricePerLiter},
		calories: CalorieStrategy{PerKm: caloriesPerKm},
	}
}

func (s *Service) resolveUser(ctx context.Context, email string) (string, error) {
	id, err := s.users.FindIDByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", ErrUserNotFound
	}
	return id, nil
}

// CalculateRoute computes a route with no preference hint and caches it as
// the user's latest.
func (s *Service) CalculateRoute(ctx context.Context, email string, origin, destination Coordinates, method string) (Route, error) {
	m, ok := ParseMethod(method)
	if !ok {
		return Route{}, ErrInvalidMethod
	}

	userID, err := s.resolveUser(ctx, email)
	if err != nil {
		return Route{}, err
	}

	r, err := s.planner.Calculate(ctx, origin, destination, m, "")
	if err != nil {
		return Route{}, err
	}

	if err := s.cache.Put(ctx, userID, r); err != nil {
		return Route{}, err
	}
	return r, nil
}

// CalculateRouteByType resolves the route type (explicit request value,
// then stored preference, then balanced), passes the matching hint to the
// planner and stamps the result.
func (s *Service) CalculateRouteByType(ctx context.Context, email string, origin, destination Coordinates, method, explicitType string) (Route, error) {
	m, ok := ParseMethod(method)
	if !ok {
		return Route{}, ErrInvalidMethod
	}

	userID, err := s.resolveUser(ctx, email)
	if err != nil {
		return Route{}, err
	}

	prefs, err := s.prefs.GetByUser(ctx, email)
	if err != nil {
		return Route{}, err
	}
	routeType := ResolveRouteType(explicitType, prefs)

	r, err := s.planner.Calculate(ctx, origin, destination, m, routeType.Hint())
	if err != nil {
		return Route{}, err
	}
	r.Type = routeType

	if err := s.cache.Put(ctx, userID, r); err != nil {
		return Route{}, err
	}
	return r, nil
}

// CalculateCost estimates the cost of the user's latest route: fuel for
// vehicle travel (a named vehicle is required), calories for foot or bike.
func (s *Service) CalculateCost(ctx context.Context, email, method, vehicleName string) (Cost, error) {
	userID, err := s.resolveUser(ctx, email)
	if err != nil {
		return Cost{}, err
	}

	r, ok, err := s.cache.Get(ctx, userID)
	if err != nil {
		return Cost{}, err
	}
	if !ok {
		return Cost{}, ErrRouteNotCalculated
	}

	m, valid := ParseMethod(method)
	if !valid {
		return Cost{}, ErrInvalidMethod
	}

	switch m {
	case MethodVehicle:
		return s.fuelCost(ctx, userID, r, vehicleName)
	default:
		return s.calories.Calculate(r, nil)
	}
}

func (s *Service) fuelCost(ctx context.Context, userID string, r Route, vehicleName string) (Cost, error) {
	if vehicleName == "" {
		return Cost{}, ErrVehicleNotFound
	}

	vehicles, err := s.vehicles.FindByUser(ctx, userID)
	if err != nil {
		return Cost{}, err
	}
	for i := range vehicles {
		if vehicles[i].Name == vehicleName {
			return s.fuel.Calculate(r, &vehicles[i])
		}
	}
	return Cost{}, ErrVehicleNotFound
}

// CalculateFuelCost is the fuel convenience path: it attaches the computed
// cost to the cached route and wraps strategy failures.
func (s *Service) CalculateFuelCost(ctx context.Context, email, vehicleName string) (Cost, error) {
	userID, err := s.resolveUser(ctx, email)
	if err != nil {
		return Cost{}, err
	}

	r, ok, err := s.cache.Get(ctx, userID)
	if err != nil {
		return Cost{}, err
	}
	if !ok {
		return Cost{}, ErrRouteNotCalculated
	}

	cost, err := s.fuelCost(ctx, userID, r, vehicleName)
	if err != nil {
		if errors.Is(err, ErrVehicleNotFound) {
			return Cost{}, err
		}
		return Cost{}, fmt.Errorf("%w: %v", ErrFuelUnavailable, err)
	}

	r.Cost = &cost
	if err := s.cache.Put(ctx, userID, r); err != nil {
		return Cost{}, fmt.Errorf("%w: %v", ErrFuelUnavailable, err)
	}
	return cost, nil
}

// CalculateCalories is the calorie convenience path; same attachment
// semantics as CalculateFuelCost.
func (s *Service) CalculateCalories(ctx context.Context, email string) (Cost, error) {
	userID, err := s.resolveUser(ctx, email)
	if err != nil {
		return Cost{}, err
	}

	r, ok, err := s.cache.Get(ctx, userID)
	if err != nil {
		return Cost{}, err
	}
	if !ok {
		return Cost{}, ErrRouteNotCalculated
	}

	cost, err := s.calories.Calculate(r, nil)
	if err != nil {
		return Cost{}, fmt.Errorf("%w: %v", ErrCaloriesUnavailable, err)
	}

	r.Cost = &cost
	if err := s.cache.Put(ctx, userID, r); err != nil {
		return Cost{}, fmt.Errorf("%w: %v", ErrCaloriesUnavailable, err)
	}
	return cost, nil
}

// SaveRoute persists the user's latest route under a name. Saving does not
// clear the cache slot; the same route may be saved under several names.
func (s *Service) SaveRoute(ctx context.Context, email, name string) (SavedRoute, error) {
	userID, err := s.resolveUser(ctx, email)
	if err != nil {
		return SavedRoute{}, err
	}

	r, ok, err := s.cache.Get(ctx, userID)
	if err != nil {
		return SavedRoute{}, err
	}
	if !ok {
		return SavedRoute{}, ErrRouteNotCalculated
	}

	var exists bool
	if err := s.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM saved_routes WHERE user_id=$1 AND name=$2)
	`, userID, name).Scan(&exists); err != nil {
		return SavedRoute{}, err
	}
	if exists {
		return SavedRoute{}, ErrNameTaken
	}

	payload, err := json.Marshal(r)
	if err != nil {
		return SavedRoute{}, err
	}

	saved := SavedRoute{
		ID:     uuid.NewString(),
		UserID: userID,
		Name:   name,
		Route:  r,
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO saved_routes (id, user_id, name, route, favorite)
		VALUES ($1,$2,$3,$4,false)
		RETURNING saved_at
	`, saved.ID, userID, name, payload)
	if err := row.Scan(&saved.SavedAt); err != nil {
		return SavedRoute{}, err
	}
	return saved, nil
}

// SavedRoutes lists the user's saved routes, most recently saved first.
func (s *Service) SavedRoutes(ctx context.Context, email string) ([]SavedRoute, error) {
	userID, err := s.resolveUser(ctx, email)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, name, route, favorite, saved_at
		FROM saved_routes WHERE user_id=$1
		ORDER BY saved_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var saved []SavedRoute
	for rows.Next() {
		var sr SavedRoute
		var payload []byte
		if err := rows.Scan(&sr.ID, &sr.UserID, &sr.Name, &payload, &sr.Favorite, &sr.SavedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payload, &sr.Route); err != nil {
			return nil, err
		}
		saved = append(saved, sr)
	}
	return saved, nil
}

func (s *Service) DeleteSavedRoute(ctx context.Context, email, name string) error {
	userID, err := s.resolveUser(ctx, email)
	if err != nil {
		return err
	}

	tag, err := s.db.Exec(ctx, `DELETE FROM saved_routes WHERE user_id=$1 AND name=$2`, userID, name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSavedRouteNotFound
	}
	return nil
}

// ToggleFavorite flips the favorite flag of a saved route; no other field
// mutates.
func (s *Service) ToggleFavorite(ctx context.Context, email, name string) error {
	userID, err := s.resolveUser(ctx, email)
	if err != nil {
		return err
	}

	var id string
	var favorite bool
	err = s.db.QueryRow(ctx, `
		SELECT id, favorite FROM saved_routes WHERE user_id=$1 AND name=$2
	`, userID, name).Scan(&id, &favorite)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrSavedRouteNotFound
	}
	if err != nil {
		return err
	}

	_, err = s.db.Exec(ctx, `UPDATE saved_routes SET favorite=$2 WHERE id=$1`, id, !favorite)
	return err
}
