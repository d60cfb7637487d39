package handlers

import (
	"net/http"

	"github.com/anonto42/rede-social/backend/internal/middleware"
	"github.com/anonto42/rede-social/backend/internal/models"
	"github.com/anonto42/rede-social/backend/internal/services"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// CommentHandler handles HTTP requests related to comments and replies
type CommentHandler struct {
	social *services.SocialService
	log    *logrus.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(social *services.SocialService, log *logrus.Logger) *CommentHandler {
	return &CommentHandler{social: social, log: log}
}

// RegisterCommentRoutes registers comment routes. Reads are public.
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group, requireAuth echo.MiddlewareFunc) {
	posts := g.Group("/posts")
	posts.POST("/criar", h.CreateComment, requireAuth)
	posts.GET("/listar", h.ListComments)
	posts.GET("/:id", h.GetComment)
	posts.DELETE("/:id", h.DeleteComment, requireAuth)
	posts.POST("/:id/responder", h.Reply, requireAuth)
	posts.GET("/:id/respostas", h.ListReplies)
}

func (h *CommentHandler) CreateComment(c echo.Context) error {
	var req models.CreateCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.social.CreateComment(c.Request().Context(), middleware.CurrentUser(c), req)
	if err != nil {
		return toHTTPError(h.log, c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":       comment.ID,
		"mensagem": "Comentário criado com sucesso",
	})
}

func (h *CommentHandler) ListComments(c echo.Context) error {
	comments, err := h.social.ListComments(c.Request().Context())
	if err != nil {
		return toHTTPError(h.log, c, err)
	}
	return c.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) GetComment(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	comment, err := h.social.GetComment(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(h.log, c, err)
	}
	return c.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) DeleteComment(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.social.DeleteComment(c.Request().Context(), middleware.CurrentUser(c), id); err != nil {
		return toHTTPError(h.log, c, err)
	}
	return c.JSON(http.StatusOK, message("Comentário deletado com sucesso"))
}

func (h *CommentHandler) Reply(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req models.CreateReplyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	reply, err := h.social.ReplyToComment(c.Request().Context(), middleware.CurrentUser(c), id, req)
	if err != nil {
		return toHTTPError(h.log, c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":       reply.ID,
		"mensagem": "Resposta criada com sucesso",
	})
}

func (h *CommentHandler) ListReplies(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	replies, err := h.social.ListReplies(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(h.log, c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"total": len(replies), "respostas": replies})
}
