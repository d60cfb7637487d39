package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/anonto42/rede-social/backend/internal/services"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// bindAndValidate decodes the request into req and runs the registered validator.
// Structural problems are reported as 422.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		msg := "Corpo da requisição inválido"
		if he, ok := err.(*echo.HTTPError); ok {
			if s, ok := he.Message.(string); ok {
				msg = s
			}
		}
		return echo.NewHTTPError(http.StatusUnprocessableEntity, msg)
	}
	return c.Validate(req)
}

// parseID reads a positive integer path parameter.
func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusUnprocessableEntity, "Parâmetro "+name+" inválido")
	}
	return uint(id), nil
}

// toHTTPError maps service errors to HTTP errors. Unknown errors become a 500
// without leaking their text.
func toHTTPError(log *logrus.Logger, c echo.Context, err error) error {
	var e *services.Error
	if !errors.As(err, &e) {
		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Request().Method,
			"path":   c.Path(),
		}).Error("unexpected error")
		return echo.NewHTTPError(http.StatusInternalServerError, "Erro interno do servidor")
	}

	switch e.Kind {
	case services.KindValidation:
		return echo.NewHTTPError(http.StatusUnprocessableEntity, e.Message)
	case services.KindUnauthorized:
		return echo.NewHTTPError(http.StatusUnauthorized, e.Message)
	case services.KindForbidden:
		return echo.NewHTTPError(http.StatusForbidden, e.Message)
	case services.KindNotFound:
		return echo.NewHTTPError(http.StatusNotFound, e.Message)
	default:
		// Conflict and BadRequest both surface as 400.
		return echo.NewHTTPError(http.StatusBadRequest, e.Message)
	}
}

func message(msg string) echo.Map {
	return echo.Map{"mensagem": msg}
}
