package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the payment routes. rateLimit guards intent creation.
func RegisterRoutes(g *gin.RouterGroup, h *PaymentHandler, rateLimit gin.HandlerFunc) {
	g.POST("/create-payment-intent", rateLimit, h.CreateIntent)
}
