package routes

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/ownerdesk-api/internal/config"
	"github.com/sangkips/ownerdesk-api/internal/presentation/http/dto/response"
	"github.com/sangkips/ownerdesk-api/internal/presentation/http/handler"
	"github.com/sangkips/ownerdesk-api/internal/presentation/http/middleware"
	"github.com/sangkips/ownerdesk-api/pkg/apperror"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Dashboard *handler.DashboardHandler
	Report    *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg *config.Config
	// Ctx bounds background work started by middleware
	Ctx context.Context
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	ctx := deps.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	rateLimiter := middleware.NewClientRateLimiter(ctx,
		middleware.RateLimiterConfigFrom(deps.Cfg.RateLimit.Requests, deps.Cfg.RateLimit.Duration))

	// The owner dashboard calls /api/owner; /api/v1/owner is the versioned alias
	for _, prefix := range []string{"/api/owner", "/api/v1/owner"} {
		owner := router.Group(prefix)
		owner.Use(rateLimiter.Middleware())
		registerOwnerRoutes(owner, h)
	}

	router.NoRoute(func(c *gin.Context) {
		response.Error(c, apperror.ErrNotFound)
	})

	return router
}

func registerOwnerRoutes(owner *gin.RouterGroup, h *Handlers) {
	// Dashboard & analytics
	owner.GET("/dashboard", h.Dashboard.GetDashboard)
	owner.GET("/trends", h.Dashboard.GetTrends)
	owner.GET("/insights", h.Dashboard.GetInsights)
	owner.GET("/charts", h.Dashboard.GetChart)

	// Reports
	reports := owner.Group("/reports")
	{
		reports.GET("/sales", h.Report.SalesReport)
		reports.GET("/inventory", h.Report.InventoryReport)
	}
}
