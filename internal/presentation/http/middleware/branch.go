package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	infraRepo "github.com/stockify/stockify-api/internal/infrastructure/repository"
	"github.com/stockify/stockify-api/internal/presentation/http/dto/response"
)

// BranchMiddleware injects the authenticated user's branch into the request
// context so repositories scope queries to it. Super admins see every
// branch; they can narrow to one with the X-Branch-ID header.
func BranchMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if hasRole(c, "super-admin") {
			if header := c.GetHeader("X-Branch-ID"); header != "" {
				branchID, err := uuid.Parse(header)
				if err != nil {
					response.BadRequest(c, "Invalid X-Branch-ID header")
					c.Abort()
					return
				}
				ctx = infraRepo.WithBranch(ctx, branchID)
			} else {
				ctx = infraRepo.WithSkipBranchScope(ctx)
			}
			c.Request = c.Request.WithContext(ctx)
			c.Next()
			return
		}

		branchIDVal, exists := c.Get("branch_id")
		if !exists {
			response.Forbidden(c, "No branch assigned to this account")
			c.Abort()
			return
		}

		branchID, ok := branchIDVal.(uuid.UUID)
		if !ok || branchID == uuid.Nil {
			response.Forbidden(c, "No branch assigned to this account")
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(infraRepo.WithBranch(ctx, branchID))
		c.Next()
	}
}

// hasRole reports whether the authenticated user carries the given role
func hasRole(c *gin.Context, role string) bool {
	userRoles, exists := c.Get("user_roles")
	if !exists {
		return false
	}
	list, ok := userRoles.([]string)
	if !ok {
		return false
	}
	for _, r := range list {
		if r == role {
			return true
		}
	}
	return false
}
