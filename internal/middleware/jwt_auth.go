package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/anonto42/rede-social/backend/internal/models"
	"github.com/anonto42/rede-social/backend/internal/services"
	"github.com/labstack/echo/v4"
)

const userContextKey = "user"

// Authenticator resolves the user behind a bearer token.
type Authenticator interface {
	Authenticate(ctx context.Context, bearer string) (*models.User, error)
}

// JWTAuthMiddleware requires a valid bearer token whose user still exists and
// stores that user in the context.
func JWTAuthMiddleware(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Acesso negado")
			}

			// Expecting "Bearer <token>"
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Acesso negado")
			}

			user, err := auth.Authenticate(c.Request().Context(), parts[1])
			if err != nil {
				var e *services.Error
				if errors.As(err, &e) && e.Kind == services.KindUnauthorized {
					return echo.NewHTTPError(http.StatusUnauthorized, e.Message)
				}
				return err
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user stored by JWTAuthMiddleware, or nil on public routes.
func CurrentUser(c echo.Context) *models.User {
	user, _ := c.Get(userContextKey).(*models.User)
	return user
}
