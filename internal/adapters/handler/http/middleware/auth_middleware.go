package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/njuphywg-cyber/weight-loss-app/internal/core/services"
)

// ContextUserIDKey is where the authenticated user's id lives on the gin
// context once AuthMiddleware has run.
const ContextUserIDKey = "userID"

const bearerPrefix = "Bearer "

// AuthMiddleware rejects requests without a valid bearer token and stashes
// the token's subject under ContextUserIDKey for the handlers.
func AuthMiddleware(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, found := strings.CutPrefix(c.GetHeader("Authorization"), bearerPrefix)
		raw = strings.TrimSpace(raw)
		if !found || raw == "" {
			abortUnauthorized(c, "missing or malformed bearer token")
			return
		}

		userID, err := tokens.ValidateToken(raw)
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// GetUserID reads the id AuthMiddleware stored on the context.
func GetUserID(c *gin.Context) (string, bool) {
	id, exists := c.Get(ContextUserIDKey)
	if !exists {
		return "", false
	}
	idStr, ok := id.(string)
	return idStr, ok
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}
