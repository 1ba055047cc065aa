package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zenithcamp/medcamp-backend/internal/auth"
	"github.com/zenithcamp/medcamp-backend/internal/pkg/request"
	"github.com/zenithcamp/medcamp-backend/internal/pkg/response"
	"github.com/zenithcamp/medcamp-backend/internal/user"
)

type UserHandler struct {
	userService user.Service
}

func NewHandler(userService user.Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// List returns every user.
// Access Control: Admin only.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]UserResponse, len(users))
	for i, u := range users {
		items[i] = NewUserResponse(u)
	}

	c.JSON(http.StatusOK, items)
}

// Create stores the caller's own user record.
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	if !auth.IsOwner(c, req.UID) {
		response.Error(c, auth.ErrNotOwner)
		return
	}

	u, err := h.userService.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewUserResponse(u))
}

// GoogleSignIn records a social sign-in; calling it again for the same uid is a no-op.
func (h *UserHandler) GoogleSignIn(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	inserted, err := h.userService.SignInWithGoogle(c.Request.Context(), req.toDomain())
	if err != nil {
		response.Error(c, err)
		return
	}

	status := http.StatusOK
	if inserted {
		status = http.StatusCreated
	}
	c.JSON(status, GoogleSignInResponse{Inserted: inserted})
}

// Get returns one user.
// Access Control: the user themselves.
func (h *UserHandler) Get(c *gin.Context) {
	var req request.ByUIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	u, err := h.userService.GetByUID(c.Request.Context(), req.UID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewUserResponse(u))
}

// Update merges profile fields into the user, creating the record if needed.
// Access Control: the user themselves.
func (h *UserHandler) Update(c *gin.Context) {
	var uri request.ByUIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	var body UpdateUserRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid body", err)
		return
	}

	upd := user.ProfileUpdate{
		Name:     body.Name,
		Email:    body.Email,
		PhotoURL: body.PhotoURL,
		Phone:    body.Phone,
		Address:  body.Address,
	}

	u, err := h.userService.UpdateProfile(c.Request.Context(), uri.UID, upd)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewUserResponse(u))
}

// CheckAdmin reports whether the addressed user holds the admin role.
// Access Control: the user themselves.
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	var req request.ByUIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	isAdmin, err := h.userService.IsAdmin(c.Request.Context(), req.UID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, AdminStatusResponse{Admin: isAdmin})
}
