package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/max-shi/game-api-server/internal/models"
	"github.com/max-shi/game-api-server/internal/service"
)

// AuthHeader carries the opaque session token issued at login.
const AuthHeader = "X-Authorization"

const userKey = "currentUser"

// RequireAuth resolves the X-Authorization token to a user and aborts with
// 401 when the header is missing or matches no user.
func RequireAuth(users service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(AuthHeader)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		user, err := users.GetByToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// OptionalAuth sets the current user if a valid token is present, but does
// not fail when the token is missing or invalid.
func OptionalAuth(users service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := c.GetHeader(AuthHeader); token != "" {
			if user, err := users.GetByToken(c.Request.Context(), token); err == nil {
				c.Set(userKey, user)
			}
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by RequireAuth/OptionalAuth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(userKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
