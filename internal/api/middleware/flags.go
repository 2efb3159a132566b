package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/princeprakhar/portfolio-backend/internal/services"
	"github.com/princeprakhar/portfolio-backend/internal/utils"
)

// RequireFlag hides a route group behind a feature flag. Disabled features
// answer 404 so the route set matches what the site renders.
func RequireFlag(flags *services.FlagService, name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !flags.IsEnabled(c.Request.Context(), name) {
			utils.SendNotFound(c, "Not found")
			c.Abort()
			return
		}
		c.Next()
	}
}
