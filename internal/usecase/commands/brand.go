package commands

import (
	"context"
	"log/slog"
	"strings"

	"shelflife/internal/domain/product"
	"shelflife/internal/infra/cache"
	"shelflife/internal/usecase"

	"github.com/google/uuid"
)

type BrandCommands interface {
	CreateMany(ctx context.Context, callerID, teamID uuid.UUID, names []string) ([]product.Brand, error)
}

type brandCommandsImpl struct {
	guard  *usecase.Guard
	teams  TeamRepository
	brands BrandRepository
	inv    invalidator
}

func NewBrandCommands(
	guard *usecase.Guard,
	teams TeamRepository,
	brands BrandRepository,
	cacheStore cache.Store,
	logger *slog.Logger,
) BrandCommands {
	return &brandCommandsImpl{
		guard:  guard,
		teams:  teams,
		brands: brands,
		inv:    newInvalidator(cacheStore, logger),
	}
}

// CreateMany inserts the brand names the team does not already have. Names
// matching an existing brand case-insensitively are skipped, not rejected.
func (c *brandCommandsImpl) CreateMany(ctx context.Context, callerID, teamID uuid.UUID, names []string) ([]product.Brand, error) {
	if err := requireCaller(callerID); err != nil {
		return nil, err
	}

	if _, err := c.teams.FindByID(ctx, teamID); err != nil {
		return nil, err
	}

	if _, err := c.guard.RequireMember(ctx, callerID, teamID); err != nil {
		return nil, err
	}

	existing, err := c.brands.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	toCreate := make([]product.Brand, 0, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" || brandExists(existing, trimmed) {
			continue
		}
		toCreate = append(toCreate, product.Brand{
			ID:     uuid.New(),
			TeamID: teamID,
			Name:   trimmed,
		})
		existing = append(existing, toCreate[len(toCreate)-1])
	}

	if len(toCreate) == 0 {
		return []product.Brand{}, nil
	}

	if err := c.brands.CreateMany(ctx, toCreate); err != nil {
		return nil, err
	}

	c.inv.invalidate(ctx, cache.TeamBrandsKey(teamID))

	return toCreate, nil
}

func brandExists(brands []product.Brand, name string) bool {
	for _, b := range brands {
		if strings.EqualFold(b.Name, name) {
			return true
		}
	}
	return false
}
