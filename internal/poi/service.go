package poi

import (
	"context"
	"errors"

	"backend-wayfarer/internal/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrNotFound = errors.New("poi not found")

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

func (s *Service) Create(ctx context.Context, input POI) (POI, error) {
	input.ID = uuid.NewString()
	row := s.db.QueryRow(ctx, `
		INSERT INTO pois (id, user_id, name, description, lat, lng)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING created_at
	`, input.ID, input.UserID, input.Name, input.Description, input.Lat, input.Lng)
	if err := row.Scan(&input.CreatedAt); err != nil {
		return POI{}, err
	}
	return input, nil
}

func (s *Service) Update(ctx context.Context, userID, id string, patch POI) (POI, error) {
	p, err := s.Get(ctx, userID, id)
	if err != nil {
		return POI{}, err
	}
	if patch.Name != "" {
		p.Name = patch.Name
	}
	if patch.Description != "" {
		p.Description = patch.Description
	}
	if patch.Lat != 0 {
		p.Lat = patch.Lat
	}
	if patch.Lng != 0 {
		p.Lng = patch.Lng
	}

	_, err = s.db.Exec(ctx, `
		UPDATE pois SET name=$3, description=$4, lat=$5, lng=$6
		WHERE id=$1 AND user_id=$2
	`, p.ID, userID, p.Name, p.Description, p.Lat, p.Lng)
	if err != nil {
		return POI{}, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (POI, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, name, description, lat, lng, created_at
		FROM pois WHERE id=$1 AND user_id=$2
	`, id, userID)
	var p POI
	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.Lat, &p.Lng, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return POI{}, ErrNotFound
		}
		return POI{}, err
	}
	return p, nil
}

func (s *Service) GetByName(ctx context.Context, userID, name string) (POI, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, name, description, lat, lng, created_at
		FROM pois WHERE user_id=$1 AND name=$2
	`, userID, name)
	var p POI
	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.Lat, &p.Lng, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return POI{}, ErrNotFound
		}
		return POI{}, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]POI, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, name, description, lat, lng, created_at
		FROM pois WHERE user_id=$1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pois []POI
	for rows.Next() {
		var p POI
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.Lat, &p.Lng, &p.CreatedAt); err != nil {
			return nil, err
		}
		pois = append(pois, p)
	}
	return pois, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM pois WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
