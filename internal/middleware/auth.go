package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"voxbill/internal/port"
)

const (
	ContextKeyUserID    = "user_id"
	ContextKeySessionID = "session_id"
)

// Auth returns Gin middleware that validates the bearer session token and
// injects the verified identity into the request context.
func Auth(verifier port.SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "missing or invalid authorization header"},
			})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := verifier.VerifySession(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "invalid or expired session"},
			})
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeySessionID, claims.SessionID)
		c.Next()
	}
}

// GetUserID extracts the verified user id from the Gin context; empty when the
// verifier ran in pass-through mode.
func GetUserID(c *gin.Context) string {
	val, exists := c.Get(ContextKeyUserID)
	if !exists {
		return ""
	}
	return val.(string)
}
