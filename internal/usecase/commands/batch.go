package commands

import (
	"context"
	"log/slog"
	"time"

	"shelflife/internal/domain/product"
	"shelflife/internal/infra/cache"
	"shelflife/internal/pkg/errs"
	"shelflife/internal/usecase"

	"github.com/google/uuid"
)

var ErrInvalidExpiryDate = errs.E(errs.KindValidation, "batch expiry date is required")

type CreateBatchRequest struct {
	Name    string
	ExpDate time.Time
	Amount  int
	Price   *float64
}

type BatchCommands interface {
	// SetDiscount applies a temporary price to one batch. Access is a plain
	// team-membership check against the product's owning team, not a
	// manager-only rule; see DESIGN.md on batch discount scoping.
	SetDiscount(ctx context.Context, callerID, batchID uuid.UUID, tempPrice *float64) (*product.Batch, error)
	CreateMany(ctx context.Context, callerID, productID uuid.UUID, reqs []CreateBatchRequest) ([]product.Batch, error)
}

type batchCommandsImpl struct {
	guard    *usecase.Guard
	products ProductRepository
	batches  BatchRepository
	inv      invalidator
}

func NewBatchCommands(
	guard *usecase.Guard,
	products ProductRepository,
	batches BatchRepository,
	cacheStore cache.Store,
	logger *slog.Logger,
) BatchCommands {
	return &batchCommandsImpl{
		guard:    guard,
		products: products,
		batches:  batches,
		inv:      newInvalidator(cacheStore, logger),
	}
}

func (c *batchCommandsImpl) SetDiscount(ctx context.Context, callerID, batchID uuid.UUID, tempPrice *float64) (*product.Batch, error) {
	if err := requireCaller(callerID); err != nil {
		return nil, err
	}

	batch, prod, err := c.batches.FindWithProduct(ctx, batchID)
	if err != nil {
		return nil, err
	}

	if _, err := c.guard.RequireMember(ctx, callerID, prod.TeamID); err != nil {
		return nil, err
	}

	batch.TempPrice = tempPrice
	if err := c.batches.Save(ctx, batch); err != nil {
		return nil, err
	}

	// the batch shows up in both the team's product list and the product
	// item entry, so both keys must go
	c.inv.invalidate(ctx,
		cache.TeamProductsKey(prod.TeamID),
		cache.ProductKey(prod.TeamID, prod.ID),
	)

	return batch, nil
}

func (c *batchCommandsImpl) CreateMany(ctx context.Context, callerID, productID uuid.UUID, reqs []CreateBatchRequest) ([]product.Batch, error) {
	if err := requireCaller(callerID); err != nil {
		return nil, err
	}

	prod, err := c.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if _, err := c.guard.RequireMember(ctx, callerID, prod.TeamID); err != nil {
		return nil, err
	}

	batches := make([]product.Batch, 0, len(reqs))
	for _, req := range reqs {
		if req.ExpDate.IsZero() {
			return nil, ErrInvalidExpiryDate
		}
		batches = append(batches, product.Batch{
			ID:        uuid.New(),
			ProductID: prod.ID,
			Name:      req.Name,
			ExpDate:   req.ExpDate,
			Amount:    req.Amount,
			Price:     req.Price,
		})
	}

	if err := c.batches.CreateMany(ctx, batches); err != nil {
		return nil, err
	}

	c.inv.invalidate(ctx,
		cache.TeamProductsKey(prod.TeamID),
		cache.ProductKey(prod.TeamID, prod.ID),
	)

	return batches, nil
}
