package repository

import (
	"context"

	"shelflife/internal/domain/product"
	"shelflife/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BrandRepository struct {
	pool *pgxpool.Pool
}

func NewBrandRepository(pool *pgxpool.Pool) *BrandRepository {
	return &BrandRepository{pool: pool}
}

func (r *BrandRepository) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]product.Brand, error) {
	const query = `SELECT id, team_id, name FROM brands WHERE team_id = $1 ORDER BY name`

	rows, err := r.pool.Query(ctx, query, teamID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list brands")
	}
	defer rows.Close()

	var brands []product.Brand
	for rows.Next() {
		var b product.Brand
		if err := rows.Scan(&b.ID, &b.TeamID, &b.Name); err != nil {
			return nil, errs.Wrap(err, "failed to scan brand")
		}
		brands = append(brands, b)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(err, "failed to iterate brands")
	}
	return brands, nil
}

func (r *BrandRepository) CreateMany(ctx context.Context, brands []product.Brand) error {
	const query = `INSERT INTO brands (id, team_id, name) VALUES ($1, $2, $3)`

	for _, b := range brands {
		if _, err := r.pool.Exec(ctx, query, b.ID, b.TeamID, b.Name); err != nil {
			return errs.Wrap(err, "failed to create brand")
		}
	}
	return nil
}
