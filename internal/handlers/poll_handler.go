package handlers

import (
	"net/http"

	"github.com/anonto42/rede-social/backend/internal/middleware"
	"github.com/anonto42/rede-social/backend/internal/models"
	"github.com/anonto42/rede-social/backend/internal/services"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// PollHandler handles HTTP requests related to polls and votes
type PollHandler struct {
	social *services.SocialService
	log    *logrus.Logger
}

func NewPollHandler(social *services.SocialService, log *logrus.Logger) *PollHandler {
	return &PollHandler{social: social, log: log}
}

func (h *PollHandler) RegisterPollRoutes(g *echo.Group, requireAuth echo.MiddlewareFunc) {
	polls := g.Group("/enquetes")
	polls.POST("/criar", h.CreatePoll, requireAuth)
	polls.GET("/listar", h.ListPolls)
	polls.GET("/:id", h.GetPoll)
	polls.DELETE("/:id", h.DeletePoll, requireAuth)
	polls.POST("/:id/votar", h.Vote, requireAuth)
	polls.GET("/:id/resultado", h.Result)
}

func (h *PollHandler) CreatePoll(c echo.Context) error {
	var req models.CreatePollRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	poll, err := h.social.CreatePoll(c.Request().Context(), middleware.CurrentUser(c), req)
	if err != nil {
		return toHTTPError(h.log, c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":       poll.ID,
		"mensagem": "Enquete criada com sucesso",
	})
}

func (h *PollHandler) ListPolls(c echo.Context) error {
	polls, err := h.social.ListPolls(c.Request().Context())
	if err != nil {
		return toHTTPError(h.log, c, err)
	}
	return c.JSON(http.StatusOK, polls)
}

func (h *PollHandler) GetPoll(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	poll, err := h.social.GetPoll(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(h.log, c, err)
	}
	return c.JSON(http.StatusOK, poll)
}

func (h *PollHandler) DeletePoll(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.social.DeletePoll(c.Request().Context(), middleware.CurrentUser(c), id); err != nil {
		return toHTTPError(h.log, c, err)
	}
	return c.JSON(http.StatusOK, message("Enquete deletada com sucesso"))
}

func (h *PollHandler) Vote(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req models.VoteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.social.Vote(c.Request().Context(), middleware.CurrentUser(c), id, req); err != nil {
		return toHTTPError(h.log, c, err)
	}
	return c.JSON(http.StatusOK, message("Voto registrado com sucesso"))
}

func (h *PollHandler) Result(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	result, err := h.social.PollResult(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(h.log, c, err)
	}
	return c.JSON(http.StatusOK, result)
}
