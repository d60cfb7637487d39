package handlers

import (
	"net/http"

	"github.com/anonto42/rede-social/backend/internal/middleware"
	"github.com/anonto42/rede-social/backend/internal/services"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// UserHandler serves public user profiles
type UserHandler struct {
	social *services.SocialService
	log    *logrus.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(social *services.SocialService, log *logrus.Logger) *UserHandler {
	return &UserHandler{social: social, log: log}
}

// RegisterProfileRoutes registers user profile-related routes
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group, requireAuth echo.MiddlewareFunc) {
	g.GET("/usuarios/me", h.GetProfile, requireAuth) // Get own profile
	g.GET("/usuarios/:id", h.GetUser)                // Get any user's profile by ID
}

func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	return h.profile(c, id)
}

// GetProfile retrieves the authenticated user's profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	return h.profile(c, middleware.CurrentUser(c).ID)
}

func (h *UserHandler) profile(c echo.Context, id uint) error {
	profile, err := h.social.UserProfile(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(h.log, c, err)
	}
	return c.JSON(http.StatusOK, profile)
}
