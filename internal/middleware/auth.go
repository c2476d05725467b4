package middleware

import (
	"net/http"
	"strings"
	"time"

	"todoapp/internal/util"

	"github.com/gin-gonic/gin"
)

// Identity is the authenticated principal attached to the request context.
type Identity struct {
	UserID string
	Email  string
}

const identityKey = "identity"

// AuthMiddleware verifies the bearer token and injects the caller's identity.
// It is a pure check of (token, now, secret): no database lookup happens here.
// On any failure the request is aborted with a generic 401 envelope.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}
		}

		if tokenStr == "" {
			util.Error(c, http.StatusUnauthorized, "Unauthorized", "")
			c.Abort()
			return
		}

		claims, err := util.ParseToken(jwtSecret, tokenStr)
		if err != nil || claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
			util.Error(c, http.StatusUnauthorized, "Unauthorized", "")
			c.Abort()
			return
		}

		c.Set(identityKey, Identity{UserID: claims.UserID, Email: claims.Email})
		c.Next()
	}
}

// CurrentIdentity returns the identity set by AuthMiddleware.
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}
