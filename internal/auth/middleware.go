package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/zenithcamp/medcamp-backend/internal/pkg/apperror"
	"github.com/zenithcamp/medcamp-backend/internal/pkg/response"
)

// Transport selects where the token travels. One instance only ever reads one of them.
type Transport int

const (
	CookieTransport Transport = iota
	HeaderTransport
)

// TokenCookieName is the cookie carrying the token under CookieTransport.
const TokenCookieName = "token"

var (
	ErrTokenMissing = apperror.Unauthorized("unauthorized: missing token")
	ErrTokenInvalid = apperror.Unauthorized("unauthorized: invalid or expired token")
)

// ParseTransport maps a config value to a Transport. Unknown values fall back to cookies.
func ParseTransport(s string) Transport {
	if strings.EqualFold(s, "header") {
		return HeaderTransport
	}
	return CookieTransport
}

// AuthRequired is a Gin middleware that validates the token carried by transport
// and stores the decoded identity in the context.
func AuthRequired(jwtManager *JWTManager, transport Transport) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c, transport)
		if tokenStr == "" {
			response.Abort(c, ErrTokenMissing)
			return
		}

		identity, err := jwtManager.ParseAndValidate(tokenStr)
		if err != nil {
			response.Abort(c, ErrTokenInvalid)
			return
		}

		setIdentity(c, identity)

		c.Next()
	}
}

// extractToken reads the raw token. The header form accepts both
// "Bearer <token>" and a bare token value.
func extractToken(c *gin.Context, transport Transport) string {
	if transport == CookieTransport {
		v, err := c.Cookie(TokenCookieName)
		if err != nil {
			return ""
		}
		return strings.TrimSpace(v)
	}

	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}
