package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
)

func newEngine(t *testing.T, metrics bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	RegisterRoutes(r, Deps{
		Config: &config.Config{
			JWTSecret:          "secret",
			Location:           time.UTC,
			Calendar:           domain.DefaultCalendar(),
			RateLimitPerMinute: 60,
			MetricsEnabled:     metrics,
		},
		Log: zap.NewNop(),
	})
	return r
}

func get(r http.Handler, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOpsEndpoints(t *testing.T) {
	r := newEngine(t, true)

	w := get(r, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	assert.Equal(t, http.StatusOK, get(r, "/metrics", nil).Code)

	assert.Equal(t, http.StatusNotFound, get(newEngine(t, false), "/metrics", nil).Code)
}

func TestGuards(t *testing.T) {
	r := newEngine(t, false)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/api/appointments", nil).Code)

	token, err := middleware.IssueToken("secret", domain.Client(5), time.Now())
	assert.NoError(t, err)
	auth := http.Header{"Authorization": {"Bearer " + token}}

	assert.Equal(t, http.StatusForbidden, get(r, "/api/clients", auth).Code)
	assert.Equal(t, http.StatusForbidden, get(r, "/api/audit-logs", auth).Code)
}
