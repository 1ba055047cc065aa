package http

import (
	"time"

	"github.com/zenithcamp/medcamp-backend/internal/user"
)

// UserResponse is the shape of user data returned in API responses.
type UserResponse struct {
	UID       string    `json:"uid"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	PhotoURL  string    `json:"photoURL"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewUserResponse converts domain user.User to UserResponse used by the API.
func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		UID:       u.UID,
		Name:      u.Name,
		Email:     u.Email,
		PhotoURL:  u.PhotoURL,
		Role:      u.Role,
		Phone:     u.Phone,
		Address:   u.Address,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// CreateUserRequest is the payload for POST /users and POST /users/google-sign-in.
type CreateUserRequest struct {
	UID      string `json:"uid" binding:"required,max=128"`
	Name     string `json:"name"`
	Email    string `json:"email" binding:"omitempty,email"`
	PhotoURL string `json:"photoURL"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

func (r *CreateUserRequest) toDomain() *user.User {
	return &user.User{
		UID:      r.UID,
		Name:     r.Name,
		Email:    r.Email,
		PhotoURL: r.PhotoURL,
		Phone:    r.Phone,
		Address:  r.Address,
	}
}

// UpdateUserRequest defines fields allowed to be updated via PATCH /user/:uid.
// Use pointers to distinguish between "field not sent" and "field sent as empty".
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	PhotoURL *string `json:"photoURL"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

// GoogleSignInResponse reports whether the sign-in created the user.
type GoogleSignInResponse struct {
	Inserted bool `json:"inserted"`
}

// AdminStatusResponse answers GET /users/admin/:uid.
type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}
