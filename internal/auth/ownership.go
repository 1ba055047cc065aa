package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/zenithcamp/medcamp-backend/internal/pkg/apperror"
	"github.com/zenithcamp/medcamp-backend/internal/pkg/response"
)

var ErrNotOwner = apperror.Forbidden("forbidden: resource belongs to another user")

// OwnerResolver returns the uid owning the resource a request addresses.
type OwnerResolver func(c *gin.Context) (string, error)

// OwnerFromParam resolves the owner straight from a path parameter such as :uid.
func OwnerFromParam(name string) OwnerResolver {
	return func(c *gin.Context) (string, error) {
		return c.Param(name), nil
	}
}

// IsOwner reports whether the authenticated caller is ownerUID.
// Roles play no part: admins are owners of nothing but their own resources.
func IsOwner(c *gin.Context, ownerUID string) bool {
	uid := GetUserID(c)
	return uid != "" && uid == ownerUID
}

// RequireOwner rejects the request with 403 unless the caller owns the resource.
// It MUST be used after AuthRequired.
func RequireOwner(resolve OwnerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, err := resolve(c)
		if err != nil {
			response.Abort(c, err)
			return
		}

		if !IsOwner(c, owner) {
			response.Abort(c, ErrNotOwner)
			return
		}

		c.Next()
	}
}
