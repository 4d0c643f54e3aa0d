package repository

import (
	"context"

	"shelflife/internal/domain/product"
	"shelflife/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StoreRepository struct {
	pool *pgxpool.Pool
}

func NewStoreRepository(pool *pgxpool.Pool) *StoreRepository {
	return &StoreRepository{pool: pool}
}

func (r *StoreRepository) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]product.Store, error) {
	const query = `SELECT id, team_id, name FROM stores WHERE team_id = $1 ORDER BY name`

	rows, err := r.pool.Query(ctx, query, teamID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list stores")
	}
	defer rows.Close()

	var stores []product.Store
	for rows.Next() {
		var s product.Store
		if err := rows.Scan(&s.ID, &s.TeamID, &s.Name); err != nil {
			return nil, errs.Wrap(err, "failed to scan store")
		}
		stores = append(stores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(err, "failed to iterate stores")
	}
	return stores, nil
}
