package commands

import (
	"context"
	"log/slog"

	"shelflife/internal/domain/product"
	"shelflife/internal/domain/team"
	"shelflife/internal/infra/cache"
	"shelflife/internal/pkg/errs"
	"shelflife/internal/usecase"

	"github.com/google/uuid"
)

var (
	ErrBrandNotFound = errs.E(errs.KindNotFound, "brand was not found")
	ErrStoreNotFound = errs.E(errs.KindNotFound, "store was not found")
)

type CreateProductRequest struct {
	Name    string
	Code    *string
	BrandID *uuid.UUID
	StoreID *uuid.UUID
}

type ProductCommands interface {
	Create(ctx context.Context, callerID, teamID uuid.UUID, req CreateProductRequest) (*product.Product, error)
}

type productCommandsImpl struct {
	guard    *usecase.Guard
	teams    TeamRepository
	members  MemberRepository
	products ProductRepository
	brands   BrandRepository
	stores   StoreRepository
	inv      invalidator
}

func NewProductCommands(
	guard *usecase.Guard,
	teams TeamRepository,
	members MemberRepository,
	products ProductRepository,
	brands BrandRepository,
	stores StoreRepository,
	cacheStore cache.Store,
	logger *slog.Logger,
) ProductCommands {
	return &productCommandsImpl{
		guard:    guard,
		teams:    teams,
		members:  members,
		products: products,
		brands:   brands,
		stores:   stores,
		inv:      newInvalidator(cacheStore, logger),
	}
}

func (c *productCommandsImpl) Create(ctx context.Context, callerID, teamID uuid.UUID, req CreateProductRequest) (*product.Product, error) {
	if err := requireCaller(callerID); err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, product.ErrEmptyName
	}

	if _, err := c.teams.FindByID(ctx, teamID); err != nil {
		return nil, err
	}

	role, err := c.guard.RequireMember(ctx, callerID, teamID)
	if err != nil {
		return nil, err
	}

	storeID, err := c.resolveStore(ctx, callerID, teamID, role, req.StoreID)
	if err != nil {
		return nil, err
	}

	if err := c.checkDuplicate(ctx, teamID, req.Code, storeID); err != nil {
		return nil, err
	}

	brandID, err := c.resolveBrand(ctx, teamID, req.BrandID)
	if err != nil {
		return nil, err
	}

	prod := &product.Product{
		ID:      uuid.New(),
		TeamID:  teamID,
		Name:    req.Name,
		Code:    req.Code,
		BrandID: brandID,
		StoreID: storeID,
	}
	if err := c.products.Create(ctx, prod); err != nil {
		return nil, err
	}

	c.inv.invalidate(ctx, cache.TeamProductsKey(teamID))

	return prod, nil
}

// resolveStore decides which store the new product lands in. Managers may
// pick any store of the team; everyone else gets the store they are
// assigned to, if any.
func (c *productCommandsImpl) resolveStore(ctx context.Context, callerID, teamID uuid.UUID, role team.Role, requested *uuid.UUID) (*uuid.UUID, error) {
	if role == team.RoleManager && requested != nil {
		stores, err := c.stores.ListByTeam(ctx, teamID)
		if err != nil {
			return nil, err
		}
		for _, s := range stores {
			if s.ID == *requested {
				id := s.ID
				return &id, nil
			}
		}
		return nil, ErrStoreNotFound
	}

	m, err := c.members.Find(ctx, teamID, callerID)
	if err != nil {
		return nil, err
	}
	return m.StoreID, nil
}

func (c *productCommandsImpl) checkDuplicate(ctx context.Context, teamID uuid.UUID, code *string, storeID *uuid.UUID) error {
	if code == nil || *code == "" {
		return nil
	}
	withSameCode, err := c.products.ListByCode(ctx, teamID, *code)
	if err != nil {
		return err
	}
	check := product.DuplicateCheck{Code: code, TeamID: teamID, StoreID: storeID}
	if res := product.FindDuplicate(check, withSameCode); res.IsDuplicate {
		return product.ErrDuplicateProduct
	}
	return nil
}

func (c *productCommandsImpl) resolveBrand(ctx context.Context, teamID uuid.UUID, brandID *uuid.UUID) (*uuid.UUID, error) {
	if brandID == nil {
		return nil, nil
	}
	brands, err := c.brands.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	for _, b := range brands {
		if b.ID == *brandID {
			id := b.ID
			return &id, nil
		}
	}
	return nil, ErrBrandNotFound
}
