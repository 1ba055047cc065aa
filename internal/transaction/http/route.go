package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers all transaction-related routes.
func RegisterRoutes(g *gin.RouterGroup, h *TransactionHandler, authMiddleware gin.HandlerFunc) {
	g.POST("/transactions", authMiddleware, h.Create)
	g.GET("/transactions/:uid", authMiddleware, h.History)
}
