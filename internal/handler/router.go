package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shelflife/internal/handler/api"
	"shelflife/internal/handler/middleware"
	"shelflife/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	productHandler *api.ProductHandler,
	batchHandler *api.BatchHandler,
	brandHandler *api.BrandHandler,
	teamHandler *api.TeamHandler,
	subscriptionHandler *api.SubscriptionHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, productHandler, batchHandler, brandHandler, teamHandler, subscriptionHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	productHandler *api.ProductHandler,
	batchHandler *api.BatchHandler,
	brandHandler *api.BrandHandler,
	teamHandler *api.TeamHandler,
	subscriptionHandler *api.SubscriptionHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		teams := apiGroup.Group("/teams/:team_id")
		{
			addRoutes(teams, []route{
				{Method: http.MethodDelete, Path: "", Handler: teamHandler.DeleteTeam},
				{Method: http.MethodPost, Path: "/invite/accept", Handler: teamHandler.AcceptInvite},
				{Method: http.MethodGet, Path: "/members", Handler: teamHandler.ListMembers},
				{Method: http.MethodPatch, Path: "/members/:user_id/role", Handler: teamHandler.UpdateMemberRole},
				{Method: http.MethodDelete, Path: "/members/:user_id", Handler: teamHandler.RemoveMember},
				{Method: http.MethodPost, Path: "/products", Handler: productHandler.CreateProduct},
				{Method: http.MethodGet, Path: "/products/:product_id", Handler: productHandler.GetProduct},
				{Method: http.MethodPost, Path: "/brands", Handler: brandHandler.CreateBrands},
				{Method: http.MethodGet, Path: "/subscription/active", Handler: subscriptionHandler.IsTeamActive},
				{Method: http.MethodGet, Path: "/subscription/member-limit", Handler: subscriptionHandler.CheckMemberLimit},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/products/:product_id/batches", Handler: batchHandler.CreateBatches},
			{Method: http.MethodPatch, Path: "/batches/:batch_id/discount", Handler: batchHandler.SetDiscount},
		})
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
