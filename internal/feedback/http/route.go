package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers all feedback-related routes.
func RegisterRoutes(g *gin.RouterGroup, h *FeedbackHandler, authMiddleware gin.HandlerFunc) {
	g.GET("/feedback", h.List)
	g.POST("/feedback", authMiddleware, h.Create)
}
