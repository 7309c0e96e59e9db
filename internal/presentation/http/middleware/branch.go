package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kiranps/tradebooks-api/internal/domain/entity"
	"github.com/kiranps/tradebooks-api/internal/domain/repository"
	infraRepo "github.com/kiranps/tradebooks-api/internal/infrastructure/repository"
	"github.com/kiranps/tradebooks-api/internal/presentation/http/dto/response"
)

// BranchHeader is the HTTP header carrying the branch filter
const BranchHeader = "X-Branch-ID"

// BranchMiddleware reads an optional branch ID from the request header and
// scopes queries to that branch. Requests without the header see all branches.
// Admins may send "all" to bypass scoping explicitly when a client pins a
// default branch header on every request.
func BranchMiddleware(branchRepo repository.BranchRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(BranchHeader)
		if raw == "" {
			c.Next()
			return
		}

		if raw == "all" {
			if c.GetString("user_role") != entity.RoleAdmin {
				response.Forbidden(c, "Access denied")
				c.Abort()
				return
			}
			ctx := infraRepo.WithSkipBranchScope(c.Request.Context(), true)
			c.Request = c.Request.WithContext(ctx)
			c.Next()
			return
		}

		branchID, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid branch ID")
			c.Abort()
			return
		}

		branch, err := branchRepo.GetByID(c.Request.Context(), branchID)
		if err != nil || branch == nil {
			response.NotFound(c, "Branch not found")
			c.Abort()
			return
		}

		c.Set("branch_id", branch.ID)
		c.Set("branch", branch)

		// Propagate into the request context so repositories can scope queries
		ctx := infraRepo.WithBranch(c.Request.Context(), branch.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetBranchID retrieves the branch ID from gin context
func GetBranchID(c *gin.Context) *uuid.UUID {
	branchID, exists := c.Get("branch_id")
	if !exists {
		return nil
	}
	id, ok := branchID.(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}
