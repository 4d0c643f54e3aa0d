package queries

import (
	"context"
	"log/slog"
	"time"

	"shelflife/internal/domain/product"
	"shelflife/internal/infra/cache"
	"shelflife/internal/usecase"

	"github.com/google/uuid"
)

// ProductDetail is a product with its relations, loaded from the source of
// truth in one shot.
type ProductDetail struct {
	Product product.Product
	Brand   *product.Brand
	Store   *product.Store
	Batches []product.Batch
}

type ProductReadStore interface {
	FindDetail(ctx context.Context, id uuid.UUID) (*ProductDetail, error)
}

type ProductQueries interface {
	GetProduct(ctx context.Context, callerID, teamID, productID uuid.UUID) (*ProductView, error)
}

type productQueriesImpl struct {
	guard     *usecase.Guard
	readStore ProductReadStore
	cache     cache.Store
	ttl       time.Duration
	logger    *slog.Logger
}

func NewProductQueries(guard *usecase.Guard, readStore ProductReadStore, cacheStore cache.Store, ttl time.Duration, logger *slog.Logger) ProductQueries {
	return &productQueriesImpl{
		guard:     guard,
		readStore: readStore,
		cache:     cacheStore,
		ttl:       ttl,
		logger:    logger,
	}
}

// GetProduct serves the product cache-aside: cache first, source of truth
// on a miss, then repopulate. The key is team-scoped so a team-wide
// invalidation reaches every cached product of that team's readers.
func (q *productQueriesImpl) GetProduct(ctx context.Context, callerID, teamID, productID uuid.UUID) (*ProductView, error) {
	if callerID == uuid.Nil {
		return nil, usecase.ErrAuthenticationRequired
	}
	if _, err := q.guard.RequireMember(ctx, callerID, teamID); err != nil {
		return nil, err
	}

	key := cache.ProductKey(teamID, productID)
	cached, hit, err := cache.Fetch[ProductView](ctx, q.cache, key)
	if err != nil {
		q.logger.Warn("cache read failed", "key", key, "error", err)
	}
	if hit {
		return cached, nil
	}

	detail, err := q.readStore.FindDetail(ctx, productID)
	if err != nil {
		return nil, err
	}
	if detail.Product.TeamID != teamID {
		return nil, product.ErrProductNotFound
	}

	view := toProductView(detail)

	if err := cache.Save(ctx, q.cache, key, view, q.ttl); err != nil {
		q.logger.Warn("cache save failed", "key", key, "error", err)
	}

	return view, nil
}

func toProductView(detail *ProductDetail) *ProductView {
	view := &ProductView{
		ID:      detail.Product.ID,
		TeamID:  detail.Product.TeamID,
		Name:    detail.Product.Name,
		Code:    detail.Product.Code,
		Batches: []BatchView{},
	}
	if detail.Brand != nil {
		view.Brand = &BrandView{ID: detail.Brand.ID, Name: detail.Brand.Name}
	}
	if detail.Store != nil {
		view.Store = &StoreView{ID: detail.Store.ID, Name: detail.Store.Name}
	}
	for _, b := range product.SortBatchesByExpDate(detail.Batches) {
		view.Batches = append(view.Batches, BatchView{
			ID:        b.ID,
			Name:      b.Name,
			ExpDate:   b.ExpDate,
			Amount:    b.Amount,
			Price:     b.Price,
			TempPrice: b.TempPrice,
		})
	}
	return view
}
