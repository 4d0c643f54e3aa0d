package components

import (
	"shelflife/internal/handler"
	"shelflife/internal/handler/api"
	"shelflife/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewProductHandler,
		api.NewBatchHandler,
		api.NewBrandHandler,
		api.NewTeamHandler,
		api.NewSubscriptionHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
