package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bellezapura/salon-api/pkg/logger"
)

// Recovery converts panics into 500 responses instead of dropped
// connections.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error(fmt.Errorf("%v", r), "panic recovered",
					"path", c.Request.URL.Path,
					"request_id", RequestIDFromContext(c),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"status": "error",
					"error":  gin.H{"message": "internal server error"},
				})
			}
		}()
		c.Next()
	}
}
