package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Prem-himanshu/food-waste-management/internal/services"
)

// RequireReady refuses data requests until the required tables exist,
// answering 503 with the unready message. The readiness service attempts a
// load from the source files on the first miss.
func RequireReady(readiness *services.ReadinessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := readiness.EnsureReady(); err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"status":  "error",
				"message": "Data not ready",
				"error":   err.Error(),
			})
			return
		}
		c.Next()
	}
}
