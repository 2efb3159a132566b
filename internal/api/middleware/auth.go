package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/princeprakhar/portfolio-backend/internal/config"
	"github.com/princeprakhar/portfolio-backend/internal/utils"
)

// SessionCookieName carries the admin panel session token.
const SessionCookieName = "admin_session"

// AdminAuth accepts the session either from the admin cookie or a Bearer
// header, so the panel and API clients share one middleware.
func AdminAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""

		if cookie, err := c.Cookie(SessionCookieName); err == nil {
			tokenString = cookie
		} else if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				utils.SendUnauthorized(c, "Bearer token required")
				c.Abort()
				return
			}
		}

		if tokenString == "" {
			utils.SendUnauthorized(c, "Authentication required")
			c.Abort()
			return
		}

		claims, err := utils.ValidateSessionToken(tokenString, cfg.JWTSecret)
		if err != nil {
			utils.SendUnauthorized(c, "Invalid or expired session")
			c.Abort()
			return
		}

		c.Set("admin_id", claims.AdminID)
		c.Set("admin_username", claims.Username)
		c.Next()
	}
}
