package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the token issue/clear endpoints.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, rateLimit gin.HandlerFunc) {
	group := g.Group("/jwt")
	{
		group.POST("/sign-in", rateLimit, h.SignIn)
		group.POST("/sign-out", h.SignOut)
	}
}
