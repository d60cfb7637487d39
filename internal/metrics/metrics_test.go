package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_RecordsRouteTemplate(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())
	e.GET("/social/posts/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("boom")
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/social/posts/:id", "200"))
	for _, id := range []string{"1", "2"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/social/posts/"+id, nil))
	}
	assert.Equal(t, before+2, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/social/posts/:id", "200")))

	before = testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/boom", "500"))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/boom", "500")))
}

func TestRecordSocialAction(t *testing.T) {
	before := testutil.ToFloat64(socialActions.WithLabelValues("vote", "conflict"))
	RecordSocialAction("vote", "conflict")
	assert.Equal(t, before+1, testutil.ToFloat64(socialActions.WithLabelValues("vote", "conflict")))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	RecordSocialAction("like_poll", "ok")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "rede_social_social_actions_total"))
}
