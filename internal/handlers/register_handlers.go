package handlers

import (
	"time"

	"github.com/SscSPs/posting_spine/cmd/docs"
	portssvc "github.com/SscSPs/posting_spine/internal/core/ports/services"
	"github.com/SscSPs/posting_spine/internal/dto"
	"github.com/SscSPs/posting_spine/internal/middleware"
	"github.com/SscSPs/posting_spine/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

var timeNow = time.Now

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// A nil limiter disables rate limiting.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	dto.RegisterValidators()
	if cfg.DefaultPageSize > 0 {
		defaultPageSize = cfg.DefaultPageSize
	}

	r.GET("/health", getHealth)

	setupAPIV1Routes(r, cfg, services, rateLimiter)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	if rateLimiter != nil {
		v1.Use(middleware.RateLimit(rateLimiter))
	}

	registerDocumentStateRoutes(v1, services.Document)

	tenant := v1.Group("/tenants/:tenant_id", middleware.TenantAccess("tenant_id"))
	RegisterAccountRoutes(tenant, services.Account, services.Posting, services.Reporting)
	RegisterDocumentRoutes(tenant, services)
	RegisterEventRoutes(tenant, services.Event, services.Reversal)
	RegisterBatchRoutes(tenant, services.Posting)
	RegisterReportingRoutes(tenant, services.Reporting)
	RegisterReconciliationRoutes(tenant, services.Reconciliation)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
