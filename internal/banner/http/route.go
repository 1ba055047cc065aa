package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the carousel and banner file routes.
func RegisterRoutes(r gin.IRouter, handler *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	carousel := r.Group("/home/banner/carousel")
	carousel.GET("", handler.List)
	carousel.POST("", authMiddleware, adminMiddleware, handler.Upload)
	carousel.DELETE("/:id", authMiddleware, adminMiddleware, handler.Delete)

	files := r.Group("/files/banners")
	files.GET("/:id", handler.ServeImage)
	files.GET("/:id/thumbnail", handler.ServeThumbnail)
}
