package api

import (
	"github.com/gin-gonic/gin"
	"github.com/zenithcamp/medcamp-backend/internal/auth"
	"github.com/zenithcamp/medcamp-backend/internal/pkg/apperror"
	"github.com/zenithcamp/medcamp-backend/internal/pkg/response"
	"github.com/zenithcamp/medcamp-backend/internal/user"
)

var ErrAdminRequired = apperror.Forbidden("forbidden: admin access required")

// RequireAdmin ensures the authenticated user currently holds the admin role.
// The user row is read on every request so a demotion takes effect immediately.
// It MUST be used after auth.AuthRequired middleware.
func RequireAdmin(userService user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := auth.GetUserID(c)
		if uid == "" {
			response.Abort(c, auth.ErrTokenMissing)
			return
		}

		isAdmin, err := userService.IsAdmin(c.Request.Context(), uid)
		if err != nil {
			response.Abort(c, err)
			return
		}

		if !isAdmin {
			response.Abort(c, ErrAdminRequired)
			return
		}

		c.Next()
	}
}
