// Package identity issues and recovers the pseudonymous visitor identifier
// used to deduplicate ratings. The identifier is an opaque bearer token with
// no authentication guarantee; the client holds it in a long-lived cookie.
package identity

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// CookieName is where the server persists the identifier client-side.
	CookieName = "visitor_id"
	// HeaderName lets clients that manage their own identifier (the SPA
	// keeps a copy in local storage) send it explicitly.
	HeaderName = "X-Visitor-ID"

	// maxIdentifierLength bounds what we accept from the wire; anything
	// longer is treated as no identity at all.
	maxIdentifierLength = 128

	cookieMaxAge = 10 * 365 * 24 * 60 * 60 // effectively no expiry
)

// Provider resolves the visitor identifier for a request. An empty return
// value is the sentinel for "unidentifiable": callers must refuse to submit
// rather than group such visitors under a shared fake identity.
type Provider interface {
	Identify(c *gin.Context) string
}

// CookieProvider generates an identifier on first contact and persists it in
// a cookie; subsequent requests return the stored value unchanged.
type CookieProvider struct {
	Secure bool
}

func NewCookieProvider(secure bool) *CookieProvider {
	return &CookieProvider{Secure: secure}
}

func (p *CookieProvider) Identify(c *gin.Context) string {
	if v := c.GetHeader(HeaderName); v != "" {
		return sanitize(v)
	}

	if v, err := c.Cookie(CookieName); err == nil {
		if id := sanitize(v); id != "" {
			return id
		}
	}

	id := "visitor_" + uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, id, cookieMaxAge, "/", "", p.Secure, true)
	return id
}

// Static always returns a fixed identifier. It exists for tests that need
// deterministic identities.
type Static struct {
	ID string
}

func (s Static) Identify(*gin.Context) string {
	return s.ID
}

func sanitize(v string) string {
	if len(v) > maxIdentifierLength {
		return ""
	}
	for _, r := range v {
		if r < 0x21 || r > 0x7e || r == ';' || r == ',' {
			return ""
		}
	}
	return v
}
