package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/rede-social/backend/internal/middleware"
	"github.com/anonto42/rede-social/backend/internal/models"
	"github.com/anonto42/rede-social/backend/internal/services"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	auth *services.AuthService
	log  *logrus.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(auth *services.AuthService, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group, requireAuth echo.MiddlewareFunc) {
	g.GET("/", h.Root)
	g.POST("/registrar", h.Register)
	g.POST("/login", h.Login)
	g.POST("/login-form", h.LoginForm)
	g.GET("/refresh", h.Refresh, requireAuth)
}

func (h *AuthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, message("Você está na rota de usuários"))
}

// Register creates an account. It does not log the user in.
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.auth.Register(c.Request().Context(), req); err != nil {
		return toHTTPError(h.log, c, err)
	}
	return c.JSON(http.StatusOK, message("cadastro realizado com sucesso"))
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	pair, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return h.loginError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"access_token":  pair.AccessToken,
		"token_type":    "bearer",
		"refresh_token": pair.RefreshToken,
	})
}

// LoginForm accepts application/x-www-form-urlencoded username/password.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	var req models.LoginFormRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	access, err := h.auth.LoginForm(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return h.loginError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"access_token": access, "token_type": "bearer"})
}

// Refresh issues a fresh access token for whoever presented a valid token.
func (h *AuthHandler) Refresh(c echo.Context) error {
	access, err := h.auth.Refresh(middleware.CurrentUser(c))
	if err != nil {
		return toHTTPError(h.log, c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"access_token": access, "token_type": "bearer"})
}

// loginError keeps bad credentials on 400, the status login clients expect.
func (h *AuthHandler) loginError(c echo.Context, err error) error {
	var e *services.Error
	if errors.As(err, &e) && e.Kind == services.KindUnauthorized {
		return echo.NewHTTPError(http.StatusBadRequest, e.Message)
	}
	return toHTTPError(h.log, c, err)
}
