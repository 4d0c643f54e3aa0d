package repository

import (
	"context"
	"errors"

	"shelflife/internal/domain/product"
	"shelflife/internal/pkg/errs"
	"shelflife/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	const query = `SELECT id, team_id, name, code, brand_id, store_id, created_at
		FROM products WHERE id = $1`

	var p product.Product
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&p.ID, &p.TeamID, &p.Name, &p.Code, &p.BrandID, &p.StoreID, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.WrapKind(err, errs.KindNotFound, "product not found")
		}
		return nil, errs.Wrap(err, "failed to find product")
	}
	return &p, nil
}

// FindDetail loads a product with its brand, store and batches joined in.
// Batches come back in insertion order; expiry ordering is the caller's
// concern.
func (r *ProductRepository) FindDetail(ctx context.Context, id uuid.UUID) (*queries.ProductDetail, error) {
	const query = `SELECT p.id, p.team_id, p.name, p.code, p.brand_id, p.store_id, p.created_at,
			b.name, s.name
		FROM products p
		LEFT JOIN brands b ON b.id = p.brand_id
		LEFT JOIN stores s ON s.id = p.store_id
		WHERE p.id = $1`

	var detail queries.ProductDetail
	var brandName, storeName *string
	p := &detail.Product
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&p.ID, &p.TeamID, &p.Name, &p.Code, &p.BrandID, &p.StoreID, &p.CreatedAt, &brandName, &storeName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.WrapKind(err, errs.KindNotFound, "product not found")
		}
		return nil, errs.Wrap(err, "failed to find product")
	}
	if p.BrandID != nil && brandName != nil {
		detail.Brand = &product.Brand{ID: *p.BrandID, TeamID: p.TeamID, Name: *brandName}
	}
	if p.StoreID != nil && storeName != nil {
		detail.Store = &product.Store{ID: *p.StoreID, TeamID: p.TeamID, Name: *storeName}
	}

	batches, err := r.listBatches(ctx, id)
	if err != nil {
		return nil, err
	}
	detail.Batches = batches

	return &detail, nil
}

func (r *ProductRepository) listBatches(ctx context.Context, productID uuid.UUID) ([]product.Batch, error) {
	const query = `SELECT id, product_id, name, exp_date, amount, price, price_tmp
		FROM batches WHERE product_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list batches")
	}
	defer rows.Close()

	batches := []product.Batch{}
	for rows.Next() {
		var b product.Batch
		if err := rows.Scan(&b.ID, &b.ProductID, &b.Name, &b.ExpDate, &b.Amount, &b.Price, &b.TempPrice); err != nil {
			return nil, errs.Wrap(err, "failed to scan batch")
		}
		batches = append(batches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(err, "failed to iterate batches")
	}
	return batches, nil
}

// ListByCode returns every product in the team carrying the given code,
// store-assigned or not. Duplicate semantics are decided by the domain.
func (r *ProductRepository) ListByCode(ctx context.Context, teamID uuid.UUID, code string) ([]product.Product, error) {
	const query = `SELECT id, team_id, name, code, brand_id, store_id, created_at
		FROM products WHERE team_id = $1 AND code = $2`

	rows, err := r.pool.Query(ctx, query, teamID, code)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list products by code")
	}
	defer rows.Close()

	var products []product.Product
	for rows.Next() {
		var p product.Product
		if err := rows.Scan(&p.ID, &p.TeamID, &p.Name, &p.Code, &p.BrandID, &p.StoreID, &p.CreatedAt); err != nil {
			return nil, errs.Wrap(err, "failed to scan product")
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(err, "failed to iterate products")
	}
	return products, nil
}

func (r *ProductRepository) ListIDsByTeam(ctx context.Context, teamID uuid.UUID) ([]uuid.UUID, error) {
	const query = `SELECT id FROM products WHERE team_id = $1`

	rows, err := r.pool.Query(ctx, query, teamID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list product ids")
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, errs.Wrap(err, "failed to scan product id")
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(err, "failed to iterate product ids")
	}
	return ids, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	const query = `INSERT INTO products (id, team_id, name, code, brand_id, store_id)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query, p.ID, p.TeamID, p.Name, p.Code, p.BrandID, p.StoreID)
	if err != nil {
		return errs.Wrap(err, "failed to create product")
	}
	return nil
}

// DeleteByTeam drops every product of the team; batches go with them via
// the FK cascade.
func (r *ProductRepository) DeleteByTeam(ctx context.Context, teamID uuid.UUID) error {
	const query = `DELETE FROM products WHERE team_id = $1`

	if _, err := r.pool.Exec(ctx, query, teamID); err != nil {
		return errs.Wrap(err, "failed to delete team products")
	}
	return nil
}
