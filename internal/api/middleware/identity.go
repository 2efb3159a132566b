package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/princeprakhar/portfolio-backend/internal/identity"
)

// IdentityKey is where the resolved visitor identifier lives in the request
// context. An empty value means the visitor could not be identified.
const IdentityKey = "visitor_identity"

// VisitorIdentity resolves the pseudonymous identifier once per request and
// stashes it for the rating handlers.
func VisitorIdentity(provider identity.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(IdentityKey, provider.Identify(c))
		c.Next()
	}
}
