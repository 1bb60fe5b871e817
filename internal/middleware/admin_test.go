package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Joshua4-0p/blood-donation-app/internal/config"
	"github.com/Joshua4-0p/blood-donation-app/internal/middleware"
)

func adminRouter(token string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/verify", middleware.AdminTokenMiddleware(&config.AdminConfig{APIToken: token}), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestAdminTokenMiddleware(t *testing.T) {
	router := adminRouter("super-secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/verify", nil)
	req.Header.Set("X-Admin-Token", "super-secret")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/verify", nil)
	req.Header.Set("X-Admin-Token", "wrong")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/verify", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminTokenMiddlewareUnconfiguredDeniesAll(t *testing.T) {
	router := adminRouter("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/verify", nil)
	req.Header.Set("X-Admin-Token", "")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)
}
