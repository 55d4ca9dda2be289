package vehicle

import (
	"context"
	"errors"

	"backend-wayfarer/internal/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrNotFound = errors.New("vehicle not found")

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

func (s *Service) Create(ctx context.Context, input Vehicle) (Vehicle, error) {
	input.ID = uuid.NewString()
	row := s.db.QueryRow(ctx, `
		INSERT INTO vehicles (id, user_id, name, fuel_type, consumption_per_100km)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING created_at
	`, input.ID, input.UserID, input.Name, input.FuelType, input.ConsumptionPer100Km)
	if err := row.Scan(&input.CreatedAt); err != nil {
		return Vehicle{}, err
	}
	return input, nil
}

func (s *Service) Update(ctx context.Context, userID, id string, patch Vehicle) (Vehicle, error) {
	v, err := s.Get(ctx, userID, id)
	if err != nil {
		return Vehicle{}, err
	}
	if patch.Name != "" {
		v.Name = patch.Name
	}
	if patch.FuelType != "" {
		v.FuelType = patch.FuelType
	}
	if patch.ConsumptionPer100Km != 0 {
		v.ConsumptionPer100Km = patch.ConsumptionPer100Km
	}

	_, err = s.db.Exec(ctx, `
		UPDATE vehicles SET name=$3, fuel_type=$4, consumption_per_100km=$5
		WHERE id=$1 AND user_id=$2
	`, v.ID, userID, v.Name, v.FuelType, v.ConsumptionPer100Km)
	if err != nil {
		return Vehicle{}, err
	}
	return v, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (Vehicle, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, name, fuel_type, consumption_per_100km, created_at
		FROM vehicles WHERE id=$1 AND user_id=$2
	`, id, userID)
	var v Vehicle
	if err := row.Scan(&v.ID, &v.UserID, &v.Name, &v.FuelType, &v.ConsumptionPer100Km, &v.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Vehicle{}, ErrNotFound
		}
		return Vehicle{}, err
	}
	return v, nil
}

// FindByUser returns all vehicles owned by a user, most recent first.
func (s *Service) FindByUser(ctx context.Context, userID string) ([]Vehicle, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, name, fuel_type, consumption_per_100km, created_at
		FROM vehicles WHERE user_id=$1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []Vehicle
	for rows.Next() {
		var v Vehicle
		if err := rows.Scan(&v.ID, &v.UserID, &v.Name, &v.FuelType, &v.ConsumptionPer100Km, &v.CreatedAt); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM vehicles WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
