package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/projectboard/project-task-api/internal/constants"
	apierrors "github.com/projectboard/project-task-api/internal/errors"
	"github.com/projectboard/project-task-api/internal/services"
)

// RequireAuth verifies the bearer token and stores the authenticated
// user ID in the request context.
func RequireAuth(tokenService *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, constants.BearerSchema) {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		claims, err := tokenService.Verify(strings.TrimPrefix(header, constants.BearerSchema))
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.Subject)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
