package auth

import "github.com/gin-gonic/gin"

const (
	uidKey      = "uid"
	identityKey = "identity"
)

func setIdentity(c *gin.Context, id *Identity) {
	c.Set(uidKey, id.UID)
	c.Set(identityKey, id)
}

// GetUserID returns the authenticated caller's uid or empty string.
func GetUserID(c *gin.Context) string {
	if v, ok := c.Get(uidKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetIdentity returns the identity attached by AuthRequired, or nil.
func GetIdentity(c *gin.Context) *Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(*Identity); ok {
			return id
		}
	}
	return nil
}
