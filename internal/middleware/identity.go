package middleware

import (
	"github.com/gin-gonic/gin"

	appErrors "github.com/axis-planner/axis-api/pkg/errors"
	"github.com/axis-planner/axis-api/pkg/response"
)

// ContextUserKey is the gin context key storing the caller's user id.
const ContextUserKey = "currentUser"

// UserHeader carries the caller identity. The API trusts the frontend or
// gateway in front of it to have authenticated the user.
const UserHeader = "X-User-ID"

// RequireUser extracts the user id header and stores it on the context.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(UserHeader)
		if userID == "" {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "missing X-User-ID header"))
			c.Abort()
			return
		}
		c.Set(ContextUserKey, userID)
		c.Next()
	}
}

// UserID returns the user id stored by RequireUser, or empty.
func UserID(c *gin.Context) string {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return ""
	}
	id, _ := value.(string)
	return id
}
