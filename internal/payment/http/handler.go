package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zenithcamp/medcamp-backend/internal/payment"
	"github.com/zenithcamp/medcamp-backend/internal/pkg/response"
)

type PaymentHandler struct {
	service payment.Service
}

func NewHandler(s payment.Service) *PaymentHandler {
	return &PaymentHandler{service: s}
}

func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	intent, err := h.service.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, CreateIntentResponse{
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
		Currency:     intent.Currency,
	})
}
