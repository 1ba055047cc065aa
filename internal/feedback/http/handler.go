package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zenithcamp/medcamp-backend/internal/auth"
	"github.com/zenithcamp/medcamp-backend/internal/feedback"
	"github.com/zenithcamp/medcamp-backend/internal/pkg/response"
)

type FeedbackHandler struct {
	service feedback.Service
}

func NewHandler(s feedback.Service) *FeedbackHandler {
	return &FeedbackHandler{service: s}
}

func (h *FeedbackHandler) Create(c *gin.Context) {
	var req CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	f, err := h.service.Create(c.Request.Context(), req.toDomain(auth.GetUserID(c)))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewFeedbackResponse(f))
}

// List returns public feedback with shortened participant names.
func (h *FeedbackHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]FeedbackResponse, len(items))
	for i, f := range items {
		out[i] = NewFeedbackResponse(f)
	}

	c.JSON(http.StatusOK, out)
}
