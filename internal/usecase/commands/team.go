package commands

import (
	"context"
	"log/slog"

	"shelflife/internal/domain/team"
	"shelflife/internal/infra/cache"
	"shelflife/internal/usecase"

	"github.com/google/uuid"
)

type TeamCommands interface {
	Delete(ctx context.Context, callerID, teamID uuid.UUID) error
}

type teamCommandsImpl struct {
	guard    *usecase.Guard
	teams    TeamRepository
	products ProductRepository
	inv      invalidator
}

func NewTeamCommands(
	guard *usecase.Guard,
	teams TeamRepository,
	products ProductRepository,
	cacheStore cache.Store,
	logger *slog.Logger,
) TeamCommands {
	return &teamCommandsImpl{
		guard:    guard,
		teams:    teams,
		products: products,
		inv:      newInvalidator(cacheStore, logger),
	}
}

// Delete tears down the whole tenant: products first, then the team row,
// which cascades memberships, brands and stores. This is the only path
// that removes a manager.
func (c *teamCommandsImpl) Delete(ctx context.Context, callerID, teamID uuid.UUID) error {
	if err := requireCaller(callerID); err != nil {
		return err
	}

	if _, err := c.guard.RequireRole(ctx, callerID, teamID, team.RoleManager); err != nil {
		return err
	}

	if _, err := c.teams.FindByID(ctx, teamID); err != nil {
		return err
	}

	// collect item keys before the rows are gone
	productIDs, err := c.products.ListIDsByTeam(ctx, teamID)
	if err != nil {
		return err
	}

	if err := c.products.DeleteByTeam(ctx, teamID); err != nil {
		return err
	}

	if err := c.teams.Remove(ctx, teamID); err != nil {
		return err
	}

	keys := []string{
		cache.TeamProductsKey(teamID),
		cache.TeamMembersKey(teamID),
		cache.TeamBrandsKey(teamID),
		cache.TeamSubscriptionKey(teamID),
	}
	for _, id := range productIDs {
		keys = append(keys, cache.ProductKey(teamID, id))
	}
	c.inv.invalidate(ctx, keys...)

	return nil
}
