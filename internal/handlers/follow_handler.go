package handlers

import (
	"net/http"

	"github.com/anonto42/rede-social/backend/internal/middleware"
	"github.com/anonto42/rede-social/backend/internal/services"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// FollowHandler handles HTTP requests related to following users
type FollowHandler struct {
	social *services.SocialService
	log    *logrus.Logger
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(social *services.SocialService, log *logrus.Logger) *FollowHandler {
	return &FollowHandler{social: social, log: log}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group, requireAuth echo.MiddlewareFunc) {
	users := g.Group("/usuarios")
	users.POST("/:id/seguir", h.Follow, requireAuth)
	users.DELETE("/:id/deixar-de-seguir", h.Unfollow, requireAuth)
	users.GET("/:id/seguidores", h.GetFollowers)
	users.GET("/:id/seguindo", h.GetFollowing)
}

func (h *FollowHandler) Follow(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	target, err := h.social.Follow(c.Request().Context(), middleware.CurrentUser(c), id)
	if err != nil {
		return toHTTPError(h.log, c, err)
	}
	return c.JSON(http.StatusOK, message("Você agora segue "+target.Name))
}

func (h *FollowHandler) Unfollow(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	target, err := h.social.Unfollow(c.Request().Context(), middleware.CurrentUser(c), id)
	if err != nil {
		return toHTTPError(h.log, c, err)
	}
	return c.JSON(http.StatusOK, message("Você parou de seguir "+target.Name))
}

func (h *FollowHandler) GetFollowers(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	followers, err := h.social.ListFollowers(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(h.log, c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"total": len(followers), "seguidores": followers})
}

func (h *FollowHandler) GetFollowing(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	following, err := h.social.ListFollowing(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(h.log, c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"total": len(following), "seguindo": following})
}
