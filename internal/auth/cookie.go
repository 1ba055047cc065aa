package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SetTokenCookie stores the token in an HttpOnly cookie scoped to the whole site.
func SetTokenCookie(c *gin.Context, token string, ttl time.Duration, secure bool) {
	if secure {
		// Cross-site frontends need SameSite=None, which browsers only accept with Secure.
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(TokenCookieName, token, int(ttl.Seconds()), "/", "", secure, true)
}

// ClearTokenCookie expires the token cookie on the client.
func ClearTokenCookie(c *gin.Context, secure bool) {
	if secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(TokenCookieName, "", -1, "/", "", secure, true)
}
