package components

import (
	"log/slog"

	"shelflife/internal/infra/cache"
	"shelflife/internal/pkg/clock"
	"shelflife/internal/pkg/config"
	"shelflife/internal/usecase"
	"shelflife/internal/usecase/commands"
	"shelflife/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	usecase.NewGuard,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewProductCommands,
		commands.NewBatchCommands,
		commands.NewBrandCommands,
		commands.NewMemberCommands,
		commands.NewTeamCommands,
	),
)

// Query constructors take their TTL as a plain duration, so each gets a
// small wrapper picking the right knob out of the config.
var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(guard *usecase.Guard, rs queries.ProductReadStore, store cache.Store, cfg config.Config, logger *slog.Logger) queries.ProductQueries {
			return queries.NewProductQueries(guard, rs, store, cfg.Cache.DefaultTTL, logger)
		},
		func(rs queries.MemberReadStore, store cache.Store, cfg config.Config, logger *slog.Logger) queries.MemberQueries {
			return queries.NewMemberQueries(rs, store, cfg.Cache.DefaultTTL, logger)
		},
		func(billing queries.BillingSource, members queries.MemberCounter, store cache.Store, cfg config.Config, clk clock.Clock, logger *slog.Logger) queries.SubscriptionQueries {
			return queries.NewSubscriptionQueries(billing, members, store, cfg.Cache.SubscriptionTTL, clk, logger)
		},
	),
)
