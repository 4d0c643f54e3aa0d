package repository

import (
	"context"
	"errors"

	"shelflife/internal/domain/product"
	"shelflife/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BatchRepository struct {
	pool *pgxpool.Pool
}

func NewBatchRepository(pool *pgxpool.Pool) *BatchRepository {
	return &BatchRepository{pool: pool}
}

// FindWithProduct loads a batch together with its owning product, which
// callers need for the team-access check and for cache key construction.
func (r *BatchRepository) FindWithProduct(ctx context.Context, id uuid.UUID) (*product.Batch, *product.Product, error) {
	const query = `SELECT b.id, b.product_id, b.name, b.exp_date, b.amount, b.price, b.price_tmp,
			p.id, p.team_id, p.name, p.code, p.brand_id, p.store_id, p.created_at
		FROM batches b
		JOIN products p ON p.id = b.product_id
		WHERE b.id = $1`

	var b product.Batch
	var p product.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.ProductID, &b.Name, &b.ExpDate, &b.Amount, &b.Price, &b.TempPrice,
		&p.ID, &p.TeamID, &p.Name, &p.Code, &p.BrandID, &p.StoreID, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, errs.WrapKind(err, errs.KindNotFound, "batch not found")
		}
		return nil, nil, errs.Wrap(err, "failed to find batch")
	}
	return &b, &p, nil
}

func (r *BatchRepository) CreateMany(ctx context.Context, batches []product.Batch) error {
	const query = `INSERT INTO batches (id, product_id, name, exp_date, amount, price)
		VALUES ($1, $2, $3, $4, $5, $6)`

	for _, b := range batches {
		if _, err := r.pool.Exec(ctx, query, b.ID, b.ProductID, b.Name, b.ExpDate, b.Amount, b.Price); err != nil {
			return errs.Wrap(err, "failed to create batch")
		}
	}
	return nil
}

func (r *BatchRepository) Save(ctx context.Context, b *product.Batch) error {
	const query = `UPDATE batches
		SET name = $2, exp_date = $3, amount = $4, price = $5, price_tmp = $6
		WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, b.ID, b.Name, b.ExpDate, b.Amount, b.Price, b.TempPrice); err != nil {
		return errs.Wrap(err, "failed to save batch")
	}
	return nil
}
