package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zenithcamp/medcamp-backend/internal/auth"
	"github.com/zenithcamp/medcamp-backend/internal/pkg/request"
	"github.com/zenithcamp/medcamp-backend/internal/pkg/response"
	"github.com/zenithcamp/medcamp-backend/internal/registration"
)

type RegistrationHandler struct {
	service registration.Service
}

func NewHandler(s registration.Service) *RegistrationHandler {
	return &RegistrationHandler{service: s}
}

// Create registers the caller for a camp.
// The participant uid defaults to the caller and may not name anyone else.
func (h *RegistrationHandler) Create(c *gin.Context) {
	var req CreateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	if req.ParticipantUID == "" {
		req.ParticipantUID = auth.GetUserID(c)
	}
	if !auth.IsOwner(c, req.ParticipantUID) {
		response.Error(c, auth.ErrNotOwner)
		return
	}

	r, err := h.service.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewRegistrationResponse(r))
}

// List returns every registration, newest first.
func (h *RegistrationHandler) List(c *gin.Context) {
	regs, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, newRegistrationList(regs))
}

// ListByParticipant returns the caller's own registrations.
// Access Control: the participant themselves.
func (h *RegistrationHandler) ListByParticipant(c *gin.Context) {
	var req request.ByUIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	regs, err := h.service.ListByParticipant(c.Request.Context(), req.UID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, newRegistrationList(regs))
}

func (h *RegistrationHandler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.BadRequest(c, "invalid id", err)
		return
	}

	r, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewRegistrationResponse(r))
}

func (h *RegistrationHandler) MarkPaid(c *gin.Context) {
	h.setStatus(c, h.service.MarkPaid)
}

func (h *RegistrationHandler) MarkFeedbackGiven(c *gin.Context) {
	h.setStatus(c, h.service.MarkFeedbackGiven)
}

// Confirm approves a registration.
// Access Control: Admin only.
func (h *RegistrationHandler) Confirm(c *gin.Context) {
	h.setStatus(c, h.service.Confirm)
}

type statusFunc func(ctx context.Context, id string) (*registration.Registration, error)

func (h *RegistrationHandler) setStatus(c *gin.Context, set statusFunc) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.BadRequest(c, "invalid id", err)
		return
	}

	r, err := set(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewRegistrationResponse(r))
}

// Delete removes a registration. Admins use it for any registration; the
// cancel route reaches it only after the ownership check.
func (h *RegistrationHandler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.BadRequest(c, "invalid id", err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{DeletedCount: 1})
}

// ownerOfRegistration resolves the participant of the registration named by :id.
func (h *RegistrationHandler) ownerOfRegistration(c *gin.Context) (string, error) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", registration.ErrNotFound
	}
	return h.service.OwnerOf(c.Request.Context(), id)
}
