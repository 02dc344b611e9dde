package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/crypto_portfolio_tracker/cmd/docs"
	portssvc "github.com/SscSPs/crypto_portfolio_tracker/internal/core/ports/services"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/middleware"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":       "OK",
			"ratesLoading": services.Currency.Loading(),
			"marketEmpty":  services.MarketData.Snapshot().IsEmpty(),
		})
	})

	if err := setupAPIV1Routes(r, cfg, services); err != nil {
		return err
	}

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) error {
	var chain []gin.HandlerFunc
	if cfg.RateLimit != "" {
		limiterInstance, err := middleware.NewMemoryLimiter(cfg.RateLimit)
		if err != nil {
			return fmt.Errorf("failed to configure rate limiter: %w", err)
		}
		chain = append(chain, middleware.RateLimit(limiterInstance))
	}
	if cfg.AuthEnabled {
		chain = append(chain, middleware.AuthMiddleware(cfg.JWTSecret))
	}
	v1 := r.Group("/api/v1", chain...)

	registerPortfolioRoutes(v1, service.Portfolio, service.Currency)
	registerHoldingsRoutes(v1, service.Holdings, service.Currency)
	registerMarketRoutes(v1, service.MarketData, service.Refresher, service.Currency)
	registerCurrencyRoutes(v1, service.Currency)
	registerExchangeRateRoutes(v1, service.Currency)
	return nil
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
