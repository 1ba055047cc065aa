package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zenithcamp/medcamp-backend/internal/auth"
	"github.com/zenithcamp/medcamp-backend/internal/pkg/request"
	"github.com/zenithcamp/medcamp-backend/internal/pkg/response"
	"github.com/zenithcamp/medcamp-backend/internal/transaction"
)

type TransactionHandler struct {
	service transaction.Service
}

func NewHandler(s transaction.Service) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// Create records a payment made by the caller.
func (h *TransactionHandler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	if req.UID == "" {
		req.UID = auth.GetUserID(c)
	}
	if !auth.IsOwner(c, req.UID) {
		response.Error(c, auth.ErrNotOwner)
		return
	}

	t, err := h.service.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewTransactionResponse(t))
}

// History lists a user's transactions with registration status.
func (h *TransactionHandler) History(c *gin.Context) {
	var req request.ByUIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	items, err := h.service.History(c.Request.Context(), req.UID)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]HistoryResponse, len(items))
	for i, it := range items {
		out[i] = NewHistoryResponse(it)
	}

	c.JSON(http.StatusOK, out)
}
