package http

import (
	"github.com/gin-gonic/gin"
	"github.com/zenithcamp/medcamp-backend/internal/auth"
)

// RegisterRoutes registers all user-related routes.
func RegisterRoutes(g *gin.RouterGroup, h *UserHandler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	self := auth.RequireOwner(auth.OwnerFromParam("uid"))

	// Public Routes
	g.POST("/users/google-sign-in", h.GoogleSignIn)

	// Authenticated Routes
	g.POST("/users", authMiddleware, h.Create)
	g.GET("/user/:uid", authMiddleware, self, h.Get)
	g.PATCH("/user/:uid", authMiddleware, self, h.Update)
	g.GET("/users/admin/:uid", authMiddleware, self, h.CheckAdmin)

	// Admin Routes
	g.GET("/users", authMiddleware, adminMiddleware, h.List)
}
