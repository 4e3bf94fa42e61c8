package handlers

import (
	"fmt"

	"github.com/SscSPs/currency_converter_app/cmd/docs"
	portssvc "github.com/SscSPs/currency_converter_app/internal/core/ports/services"
	"github.com/SscSPs/currency_converter_app/internal/middleware"
	"github.com/SscSPs/currency_converter_app/internal/platform/config"
	"github.com/SscSPs/currency_converter_app/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	analytics *utils.PosthogClientWrapper,
) error {
	registerValidators()

	health := &healthHandler{baseline: services.Baseline}
	r.GET("/health", health.getHealth)

	loginLimiter, err := middleware.NewIPRateLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("failed to configure login rate limit: %w", err)
	}
	registerAuthRoutes(r, loginLimiter, services)

	setupProtectedRoutes(r, cfg, services, analytics)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupProtectedRoutes configures the routes that need a valid bearer token
func setupProtectedRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	analytics *utils.PosthogClientWrapper,
) {
	protected := r.Group("/", middleware.AuthMiddleware(cfg.JWTSecret), middleware.PosthogMiddleware(analytics))

	registerRateRoutes(protected, services.Rates)
	registerConvertRoutes(protected, services.Conversion, analytics)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
