package preference

import (
	"context"
	"errors"

	"backend-wayfarer/internal/db"

	"github.com/jackc/pgx/v5"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

// GetByUser returns the preferences stored for the user behind an email.
// A user with no stored preferences gets the zero value, not an error.
func (s *Service) GetByUser(ctx context.Context, email string) (Preferences, error) {
	row := s.db.QueryRow(ctx, `
		SELECT p.user_id, COALESCE(p.default_vehicle_id,''), COALESCE(p.default_route_type,''), p.updated_at
		FROM user_preferences p
		JOIN users u ON u.id = p.user_id
		WHERE u.email = $1
	`, email)
	var p Preferences
	if err := row.Scan(&p.UserID, &p.DefaultVehicleID, &p.DefaultRouteType, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Preferences{}, nil
		}
		return Preferences{}, err
	}
	return p, nil
}

func (s *Service) Upsert(ctx context.Context, input Preferences) (Preferences, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO user_preferences (user_id, default_vehicle_id, default_route_type, updated_at)
		VALUES ($1, NULLIF($2,''), NULLIF($3,''), now())
		ON CONFLICT (user_id) DO UPDATE
		SET default_vehicle_id=EXCLUDED.default_vehicle_id,
		    default_route_type=EXCLUDED.default_route_type,
		    updated_at=now()
		RETURNING updated_at
	`, input.UserID, input.DefaultVehicleID, input.DefaultRouteType)
	if err := row.Scan(&input.UpdatedAt); err != nil {
		return Preferences{}, err
	}
	return input, nil
}
