package router

import (
	"fmt"

	"github.com/anonto42/rede-social/backend/internal/handlers"
	"github.com/anonto42/rede-social/backend/internal/metrics"
	"github.com/anonto42/rede-social/backend/internal/middleware"
	"github.com/anonto42/rede-social/backend/internal/models"
	"github.com/anonto42/rede-social/backend/internal/repositories"
	"github.com/anonto42/rede-social/backend/internal/services"
	"github.com/anonto42/rede-social/backend/internal/token"
	"github.com/anonto42/rede-social/backend/pkg/config"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRoutes migrates the schema, wires services and registers every route.
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config, log *logrus.Logger, opts ...token.Option) error {
	if err := models.Migrate(db); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Info("PostgreSQL auto-migrations completed for all models.")

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("sql handle: %w", err)
	}

	e.Use(metrics.Middleware())

	// --- Services ---
	uow := repositories.NewUnitOfWork(db)
	tokens := token.NewService([]byte(cfg.SecretKey), opts...)
	authService := services.NewAuthService(uow, tokens, cfg.AccessTokenTTL, config.RefreshTokenTTL, log)
	socialService := services.NewSocialService(uow, log)
	requireAuth := middleware.JWTAuthMiddleware(authService)

	// Health check - always accessible
	health := handlers.NewHealthHandler(sqlDB, log)
	e.GET("/health", health.HealthCheck)
	e.GET("/", handlers.Welcome)

	authGroup := e.Group("/auth")
	handlers.NewAuthHandler(authService, log).RegisterAuthRoutes(authGroup, requireAuth)
	log.Debug("Auth routes configured.")

	// Reads under /social are public, mutations carry requireAuth per route.
	social := e.Group("/social")
	handlers.NewCommentHandler(socialService, log).RegisterCommentRoutes(social, requireAuth)
	handlers.NewFollowHandler(socialService, log).RegisterFollowRoutes(social, requireAuth)
	handlers.NewPollHandler(socialService, log).RegisterPollRoutes(social, requireAuth)
	handlers.NewLikeHandler(socialService, log).RegisterLikeRoutes(social, requireAuth)
	handlers.NewUserHandler(socialService, log).RegisterProfileRoutes(social, requireAuth)
	log.Debug("Social routes configured.")

	log.Info("All routes configured.")
	return nil
}
