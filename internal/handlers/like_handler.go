package handlers

import (
	"context"
	"net/http"

	"github.com/anonto42/rede-social/backend/internal/middleware"
	"github.com/anonto42/rede-social/backend/internal/models"
	"github.com/anonto42/rede-social/backend/internal/services"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// LikeHandler handles HTTP requests related to likes on comments and polls
type LikeHandler struct {
	social *services.SocialService
	log    *logrus.Logger
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(social *services.SocialService, log *logrus.Logger) *LikeHandler {
	return &LikeHandler{social: social, log: log}
}

// likeOps binds the like use cases of one target kind.
type likeOps struct {
	like     func(ctx context.Context, actor *models.User, id uint) error
	unlike   func(ctx context.Context, actor *models.User, id uint) error
	list     func(ctx context.Context, id uint) ([]models.LikeEntry, error)
	likedMsg string
}

// RegisterLikeRoutes registers like routes under /posts and /enquetes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group, requireAuth echo.MiddlewareFunc) {
	comments := likeOps{
		like:     h.social.LikeComment,
		unlike:   h.social.UnlikeComment,
		list:     h.social.ListCommentLikes,
		likedMsg: "Comentário curtido com sucesso",
	}
	polls := likeOps{
		like:     h.social.LikePoll,
		unlike:   h.social.UnlikePoll,
		list:     h.social.ListPollLikes,
		likedMsg: "Enquete curtida com sucesso",
	}

	for prefix, ops := range map[string]likeOps{"/posts": comments, "/enquetes": polls} {
		g.POST(prefix+"/:id/curtir", h.like(ops), requireAuth)
		g.DELETE(prefix+"/:id/descurtir", h.unlike(ops), requireAuth)
		g.GET(prefix+"/:id/curtidas", h.list(ops))
	}
}

func (h *LikeHandler) like(ops likeOps) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return err
		}

		if err := ops.like(c.Request().Context(), middleware.CurrentUser(c), id); err != nil {
			return toHTTPError(h.log, c, err)
		}
		return c.JSON(http.StatusOK, message(ops.likedMsg))
	}
}

func (h *LikeHandler) unlike(ops likeOps) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return err
		}

		if err := ops.unlike(c.Request().Context(), middleware.CurrentUser(c), id); err != nil {
			return toHTTPError(h.log, c, err)
		}
		return c.JSON(http.StatusOK, message("Curtida removida com sucesso"))
	}
}

func (h *LikeHandler) list(ops likeOps) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return err
		}

		likes, err := ops.list(c.Request().Context(), id)
		if err != nil {
			return toHTTPError(h.log, c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"total": len(likes), "curtidas": likes})
	}
}
