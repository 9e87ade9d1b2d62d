package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/stockify/stockify-api/internal/domain/entity"
)

func runGuard(t *testing.T, setAuth func(c *gin.Context), guard gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(func(c *gin.Context) { setAuth(c) })
	r.GET("/x", guard, func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	return w
}

func TestRequireRole(t *testing.T) {
	guard := RequireRole("super-admin")

	w := runGuard(t, func(c *gin.Context) {
		c.Set("user_roles", []string{"manager", "super-admin"})
	}, guard)
	assert.Equal(t, http.StatusOK, w.Code)

	w = runGuard(t, func(c *gin.Context) {
		c.Set("user_roles", []string{"cashier"})
	}, guard)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = runGuard(t, func(c *gin.Context) {}, guard)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequirePermission(t *testing.T) {
	set := entity.PermissionSet{
		"products": {Read: true},
	}

	w := runGuard(t, func(c *gin.Context) {
		c.Set("user_permissions", set)
	}, RequirePermission("products", entity.ActionRead))
	assert.Equal(t, http.StatusOK, w.Code)

	w = runGuard(t, func(c *gin.Context) {
		c.Set("user_permissions", set)
	}, RequirePermission("products", entity.ActionDelete))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = runGuard(t, func(c *gin.Context) {}, RequirePermission("products", entity.ActionRead))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
