package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/anonto42/rede-social/backend/internal/services"
	"github.com/anonto42/rede-social/backend/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name     string
		pingErr  error
		wantCode int
		wantDB   string
	}{
		{"database up", nil, http.StatusOK, `"database":"up"`},
		{"database down", errors.New("connection refused"), http.StatusServiceUnavailable, `"database":"down"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
			require.NoError(t, err)
			defer db.Close()
			mock.ExpectPing().WillReturnError(tt.pingErr)

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

			require.NoError(t, NewHealthHandler(db, testutil.Logger()).HealthCheck(c))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantDB)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestToHTTPError(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{&services.Error{Kind: services.KindValidation, Message: "m"}, http.StatusUnprocessableEntity},
		{services.BadRequest("m"), http.StatusBadRequest},
		{services.Conflict("m"), http.StatusBadRequest},
		{services.Unauthorized("m"), http.StatusUnauthorized},
		{services.Forbidden("m"), http.StatusForbidden},
		{services.NotFound("m"), http.StatusNotFound},
		{errors.New("db exploded"), http.StatusInternalServerError},
	}
	e := echo.New()
	for _, tt := range tests {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		he, ok := toHTTPError(testutil.Logger(), c, tt.err).(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, tt.code, he.Code, "%v", tt.err)
		if tt.code == http.StatusInternalServerError {
			assert.NotContains(t, he.Message, "exploded")
		} else {
			assert.Equal(t, "m", he.Message)
		}
	}
}
