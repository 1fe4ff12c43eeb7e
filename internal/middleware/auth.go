package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bellezapura/salon-api/internal/model"
	"github.com/bellezapura/salon-api/internal/service/auth"
)

const claimsContextKey = "auth_claims"

// Auth validates the bearer token and stores its claims on the context.
func Auth(authSvc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "error": gin.H{"message": "missing authorization header"}})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "error": gin.H{"message": "invalid authorization header"}})
			return
		}

		claims, err := authSvc.Validate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "error": gin.H{"message": "invalid or expired token"}})
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// RequireRole gates a route group to the given roles.
func RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "error": gin.H{"message": "missing credentials"}})
			return
		}
		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"status": "error", "error": gin.H{"message": "insufficient permissions"}})
	}
}

// ClaimsFromContext reads the claims set by Auth.
func ClaimsFromContext(c *gin.Context) (*model.TokenClaims, bool) {
	value, exists := c.Get(claimsContextKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*model.TokenClaims)
	return claims, ok
}
