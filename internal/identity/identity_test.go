package identity

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T, req *http.Request) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func TestCookieProviderIssuesIdentifierOnce(t *testing.T) {
	provider := NewCookieProvider(false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c, w := testContext(t, req)

	id := provider.Identify(c)
	require.NotEmpty(t, id)
	assert.True(t, strings.HasPrefix(id, "visitor_"))

	// The identifier must have been persisted client-side.
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, id, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestCookieProviderReturnsStoredIdentifier(t *testing.T) {
	provider := NewCookieProvider(false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "visitor_existing"})
	c, w := testContext(t, req)

	assert.Equal(t, "visitor_existing", provider.Identify(c))
	assert.Empty(t, w.Result().Cookies(), "no new cookie when one already exists")
}

func TestHeaderOverridesCookie(t *testing.T) {
	provider := NewCookieProvider(false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderName, "visitor_from_header")
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "visitor_from_cookie"})
	c, _ := testContext(t, req)

	assert.Equal(t, "visitor_from_header", provider.Identify(c))
}

func TestMalformedIdentifiersBecomeSentinel(t *testing.T) {
	provider := NewCookieProvider(false)

	cases := map[string]string{
		"oversize":      strings.Repeat("x", 200),
		"control chars": "visitor\x00evil",
		"whitespace":    "visitor id",
	}

	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(HeaderName, value)
			c, _ := testContext(t, req)

			assert.Empty(t, provider.Identify(c),
				"a garbage identifier must map to the unidentifiable sentinel, not a shared bucket")
		})
	}
}

func TestStaticProvider(t *testing.T) {
	p := Static{ID: "fixed"}
	assert.Equal(t, "fixed", p.Identify(nil))
}
