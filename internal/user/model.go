package user

import (
	"net/http"
	"time"

	"github.com/zenithcamp/medcamp-backend/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "user not found")
	ErrAlreadyExists = apperror.New(http.StatusConflict, "user already exists")
	ErrUIDRequired   = apperror.New(http.StatusBadRequest, "uid is required")
)

// Roles stored in users.role. Anything other than RoleAdmin is an ordinary user.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is keyed by the uid issued by the external sign-in provider.
type User struct {
	UID       string
	Name      string
	Email     string
	PhotoURL  string
	Role      string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin reports whether the role is exactly "admin".
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ProfileUpdate carries the fields a user may change on their own record.
// Nil means "leave as is". Role is deliberately absent.
type ProfileUpdate struct {
	Name     *string
	Email    *string
	PhotoURL *string
	Phone    *string
	Address  *string
}
