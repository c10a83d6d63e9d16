package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
)

// userContextKey is the gin context key under which RequireAuth stores the
// resolved user.
const userContextKey = "gatekeeper/user"

// UserFromContext extracts the authenticated user attached by RequireAuth.
func UserFromContext(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

// MustUserFromContext is UserFromContext for handlers that only run behind
// RequireAuth. It panics when no user is attached, which would mean a
// routing mistake rather than a runtime condition.
func MustUserFromContext(c *gin.Context) *models.User {
	user, ok := UserFromContext(c)
	if !ok {
		panic("httpapi: handler without RequireAuth asked for the user")
	}
	return user
}

// RequireAuth guards a route group. It reads the session token from the
// x-access-token header, resolves it through the service, and attaches the
// user to the context. A missing and an invalid token answer with different
// messages; a store failure answers 500 and never masquerades as 401.
func (h *Handler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(common.AccessTokenHeaderName)

		user, err := h.auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, common.ErrMissingToken):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access token missing"})
			case errors.Is(err, common.ErrInvalidToken):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid access token"})
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Failed to authenticate access token"})
			}
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}
