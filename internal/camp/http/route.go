package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all camp-related routes.
func RegisterRoutes(g *gin.RouterGroup, h *CampHandler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	// Public Routes
	g.GET("/camps", h.List)
	g.GET("/camps/popular", h.Popular)
	g.GET("/camps/:id", h.Get)
	g.GET("/search", h.Search)
	g.DELETE("/delete-camp/:id", h.Delete)

	// Authenticated Routes
	g.PATCH("/participant-count/inc/:id", authMiddleware, h.IncrementParticipants)

	// Admin Routes
	g.POST("/camps", authMiddleware, adminMiddleware, h.Create)
	g.PATCH("/update-camp/:id", authMiddleware, adminMiddleware, h.Update)
}
