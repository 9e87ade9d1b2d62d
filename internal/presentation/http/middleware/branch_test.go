package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infraRepo "github.com/stockify/stockify-api/internal/infrastructure/repository"
)

func runBranchMiddleware(t *testing.T, setAuth func(c *gin.Context), header string) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var seen *http.Request
	r := gin.New()
	r.Use(func(c *gin.Context) { setAuth(c) })
	r.Use(BranchMiddleware())
	r.GET("/x", func(c *gin.Context) {
		seen = c.Request
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if header != "" {
		req.Header.Set("X-Branch-ID", header)
	}
	r.ServeHTTP(w, req)
	return w, seen
}

func TestBranchMiddlewareSuperAdminUnscoped(t *testing.T) {
	w, seen := runBranchMiddleware(t, func(c *gin.Context) {
		c.Set("user_roles", []string{"super-admin"})
	}, "")

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, seen)

	skip, ok := seen.Context().Value(infraRepo.SkipBranchScopeKey).(bool)
	assert.True(t, ok)
	assert.True(t, skip)
}

func TestBranchMiddlewareSuperAdminNarrowsToHeader(t *testing.T) {
	branchID := uuid.New()
	w, seen := runBranchMiddleware(t, func(c *gin.Context) {
		c.Set("user_roles", []string{"super-admin"})
	}, branchID.String())

	require.Equal(t, http.StatusOK, w.Code)
	got, ok := infraRepo.GetBranchID(seen.Context())
	assert.True(t, ok)
	assert.Equal(t, branchID, got)

	_, skipped := seen.Context().Value(infraRepo.SkipBranchScopeKey).(bool)
	assert.False(t, skipped)
}

func TestBranchMiddlewareSuperAdminRejectsBadHeader(t *testing.T) {
	w, _ := runBranchMiddleware(t, func(c *gin.Context) {
		c.Set("user_roles", []string{"super-admin"})
	}, "not-a-uuid")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBranchMiddlewareScopesToUserBranch(t *testing.T) {
	branchID := uuid.New()
	w, seen := runBranchMiddleware(t, func(c *gin.Context) {
		c.Set("user_roles", []string{"cashier"})
		c.Set("branch_id", branchID)
	}, "")

	require.Equal(t, http.StatusOK, w.Code)
	got, ok := infraRepo.GetBranchID(seen.Context())
	assert.True(t, ok)
	assert.Equal(t, branchID, got)
}

func TestBranchMiddlewareRejectsBranchlessUser(t *testing.T) {
	w, _ := runBranchMiddleware(t, func(c *gin.Context) {
		c.Set("user_roles", []string{"cashier"})
	}, "")

	assert.Equal(t, http.StatusForbidden, w.Code)
}
