package http

import (
	"github.com/gin-gonic/gin"
	"github.com/zenithcamp/medcamp-backend/internal/auth"
)

// RegisterRoutes registers all registration-related routes.
// When listAdminOnly is set, GET /reg-camps additionally requires the admin role.
func RegisterRoutes(g *gin.RouterGroup, h *RegistrationHandler, authMiddleware, adminMiddleware gin.HandlerFunc, listAdminOnly bool) {
	self := auth.RequireOwner(auth.OwnerFromParam("uid"))
	owner := auth.RequireOwner(h.ownerOfRegistration)

	// Authenticated Routes
	g.POST("/reg-camps", authMiddleware, h.Create)
	g.GET("/reg-camps/:uid", authMiddleware, self, h.ListByParticipant)
	g.GET("/reg-camp/:id", authMiddleware, h.Get)
	g.PATCH("/set-Payment-status/:id", authMiddleware, h.MarkPaid)
	g.PATCH("/feedback-status/:id", authMiddleware, h.MarkFeedbackGiven)
	g.DELETE("/cancel-reg/:id", authMiddleware, owner, h.Delete)

	if listAdminOnly {
		g.GET("/reg-camps", authMiddleware, adminMiddleware, h.List)
	} else {
		g.GET("/reg-camps", authMiddleware, h.List)
	}

	// Admin Routes
	g.PATCH("/set-confirm-status/:id", authMiddleware, adminMiddleware, h.Confirm)
	g.DELETE("/delete-reg/:id", authMiddleware, adminMiddleware, h.Delete)
}
