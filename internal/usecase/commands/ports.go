package commands

import (
	"context"

	"shelflife/internal/domain/product"
	"shelflife/internal/domain/team"
	"shelflife/internal/usecase"

	"github.com/google/uuid"
)

type TeamRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*team.Team, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type MemberRepository interface {
	Find(ctx context.Context, teamID, userID uuid.UUID) (*team.Member, error)
	Save(ctx context.Context, m *team.Member) error
	Remove(ctx context.Context, teamID, userID uuid.UUID) error
}

type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error)
	ListByCode(ctx context.Context, teamID uuid.UUID, code string) ([]product.Product, error)
	ListIDsByTeam(ctx context.Context, teamID uuid.UUID) ([]uuid.UUID, error)
	Create(ctx context.Context, p *product.Product) error
	DeleteByTeam(ctx context.Context, teamID uuid.UUID) error
}

type BatchRepository interface {
	FindWithProduct(ctx context.Context, id uuid.UUID) (*product.Batch, *product.Product, error)
	CreateMany(ctx context.Context, batches []product.Batch) error
	Save(ctx context.Context, b *product.Batch) error
}

type BrandRepository interface {
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]product.Brand, error)
	CreateMany(ctx context.Context, brands []product.Brand) error
}

type StoreRepository interface {
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]product.Store, error)
}

// requireCaller aborts any mutation reaching the coordinator without a
// resolved caller identity.
func requireCaller(callerID uuid.UUID) error {
	if callerID == uuid.Nil {
		return usecase.ErrAuthenticationRequired
	}
	return nil
}
