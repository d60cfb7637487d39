package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anonto42/rede-social/backend/internal/models"
	"github.com/anonto42/rede-social/backend/internal/services"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	users map[string]*models.User
	err   error
}

func (f *fakeAuth) Authenticate(_ context.Context, bearer string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.users[bearer]; ok {
		return u, nil
	}
	return nil, services.Unauthorized("Acesso negado")
}

func serve(t *testing.T, auth Authenticator, header string) (*httptest.ResponseRecorder, *models.User, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *models.User
	h := JWTAuthMiddleware(auth)(func(c echo.Context) error {
		seen = CurrentUser(c)
		return c.NoContent(http.StatusOK)
	})
	err := h(c)
	return rec, seen, err
}

func TestJWTAuthMiddleware(t *testing.T) {
	ana := &models.User{ID: 1, Name: "Ana"}
	auth := &fakeAuth{users: map[string]*models.User{"good": ana}}

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic good"},
		{"no token", "Bearer"},
		{"extra parts", "Bearer good extra"},
		{"unknown token", "Bearer bad"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, seen, err := serve(t, auth, tt.header)
			require.Error(t, err)
			he, ok := err.(*echo.HTTPError)
			require.True(t, ok)
			assert.Equal(t, http.StatusUnauthorized, he.Code)
			assert.Nil(t, seen)
		})
	}

	t.Run("valid token", func(t *testing.T) {
		rec, seen, err := serve(t, auth, "bearer good")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Same(t, ana, seen)
	})
}

func TestJWTAuthMiddlewarePassesInternalErrors(t *testing.T) {
	boom := errors.New("db down")
	_, _, err := serve(t, &fakeAuth{err: boom}, "Bearer x")
	assert.ErrorIs(t, err, boom)
}
