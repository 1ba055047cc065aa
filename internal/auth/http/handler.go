package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zenithcamp/medcamp-backend/internal/auth"
	"github.com/zenithcamp/medcamp-backend/internal/pkg/response"
)

type Handler struct {
	jwtManager   *auth.JWTManager
	transport    auth.Transport
	cookieSecure bool
}

func NewHandler(jwtManager *auth.JWTManager, transport auth.Transport, cookieSecure bool) *Handler {
	return &Handler{
		jwtManager:   jwtManager,
		transport:    transport,
		cookieSecure: cookieSecure,
	}
}

// SignIn issues a token for the identity payload the caller sends. Any extra
// claims are embedded as-is, but a non-empty string uid is required because
// the verifier rejects tokens without one.
// Under the cookie transport the token never appears in the body.
func (h *Handler) SignIn(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}
	if uid, _ := payload["uid"].(string); uid == "" {
		response.BadRequest(c, "uid is required", nil)
		return
	}

	token, err := h.jwtManager.GenerateToken(payload)
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.transport == auth.HeaderTransport {
		c.JSON(http.StatusOK, SignInResponse{Success: true, Token: token})
		return
	}

	auth.SetTokenCookie(c, token, h.jwtManager.TTL(), h.cookieSecure)
	c.JSON(http.StatusOK, SignInResponse{Success: true})
}

// SignOut clears the token cookie. Header-transport clients just drop their token.
func (h *Handler) SignOut(c *gin.Context) {
	auth.ClearTokenCookie(c, h.cookieSecure)
	c.JSON(http.StatusOK, SignOutResponse{Success: true})
}
