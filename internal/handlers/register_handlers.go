package handlers

import (
	"github.com/demobank/bank_ledger_app/cmd/docs"
	portssvc "github.com/demobank/bank_ledger_app/internal/core/ports/services"
	"github.com/demobank/bank_ledger_app/pkg/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	accountService portssvc.AccountSvcFacade,
	conversionService portssvc.ConversionSvc,
) {
	// Add health check route
	r.GET("/health", getHealth)

	// Setup API v1 routes, passing service interfaces
	v1 := r.Group("/api/v1")
	registerAccountRoutes(v1, accountService)
	registerConversionRoutes(v1, conversionService)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
