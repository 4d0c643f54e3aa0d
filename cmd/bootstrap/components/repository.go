package components

import (
	"shelflife/internal/infra/billing"
	repo_impl "shelflife/internal/infra/repository"
	"shelflife/internal/pkg/config"
	"shelflife/internal/usecase"
	"shelflife/internal/usecase/commands"
	"shelflife/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewTeamRepository,
			fx.As(new(commands.TeamRepository)),
		),
		fx.Annotate(
			repo_impl.NewMemberRepository,
			fx.As(new(commands.MemberRepository)),
			fx.As(new(usecase.MembershipReader)),
			fx.As(new(queries.MemberReadStore)),
			fx.As(new(queries.MemberCounter)),
		),
		fx.Annotate(
			repo_impl.NewProductRepository,
			fx.As(new(commands.ProductRepository)),
			fx.As(new(queries.ProductReadStore)),
		),
		fx.Annotate(
			repo_impl.NewBatchRepository,
			fx.As(new(commands.BatchRepository)),
		),
		fx.Annotate(
			repo_impl.NewBrandRepository,
			fx.As(new(commands.BrandRepository)),
		),
		fx.Annotate(
			repo_impl.NewStoreRepository,
			fx.As(new(commands.StoreRepository)),
		),
		func(cfg config.Config) config.BillingConfig { return cfg.Billing },
		fx.Annotate(
			billing.NewRevenueCatClient,
			fx.As(new(queries.BillingSource)),
		),
	),
)
