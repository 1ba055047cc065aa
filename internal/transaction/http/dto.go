package http

import (
	"time"

	"github.com/zenithcamp/medcamp-backend/internal/transaction"
)

// TransactionResponse is the shape of a stored transaction.
type TransactionResponse struct {
	ID             string    `json:"_id"`
	RegistrationID *string   `json:"registrationId"`
	UID            string    `json:"uid"`
	TransactionID  string    `json:"transactionId"`
	Amount         float64   `json:"amount"`
	CampName       string    `json:"campName"`
	PaidAt         time.Time `json:"paidAt"`
}

func NewTransactionResponse(t *transaction.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:             t.ID,
		RegistrationID: t.RegistrationID,
		UID:            t.UID,
		TransactionID:  t.TransactionID,
		Amount:         t.Amount,
		CampName:       t.CampName,
		PaidAt:         t.PaidAt,
	}
}

// HistoryResponse is a transaction with its registration's current state.
type HistoryResponse struct {
	TransactionResponse
	PaymentStatus      *bool `json:"paymentStatus"`
	ConfirmationStatus *bool `json:"confirmationStatus"`
}

func NewHistoryResponse(h *transaction.History) HistoryResponse {
	return HistoryResponse{
		TransactionResponse: NewTransactionResponse(&h.Transaction),
		PaymentStatus:       h.PaymentStatus,
		ConfirmationStatus:  h.ConfirmationStatus,
	}
}

// CreateTransactionRequest is the payload for POST /transactions.
type CreateTransactionRequest struct {
	RegistrationID *string `json:"registrationId" binding:"omitempty,uuid"`
	UID            string  `json:"uid" binding:"max=128"`
	TransactionID  string  `json:"transactionId" binding:"required,max=255"`
	Amount         float64 `json:"amount" binding:"gte=0"`
	CampName       string  `json:"campName"`
}

func (r *CreateTransactionRequest) toDomain() *transaction.Transaction {
	return &transaction.Transaction{
		RegistrationID: r.RegistrationID,
		UID:            r.UID,
		TransactionID:  r.TransactionID,
		Amount:         r.Amount,
		CampName:       r.CampName,
	}
}
