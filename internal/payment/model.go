package payment

import (
	"context"
	"net/http"

	"github.com/zenithcamp/medcamp-backend/internal/pkg/apperror"
)

var (
	ErrInvalidPrice  = apperror.New(http.StatusBadRequest, "price must be a positive amount")
	ErrNotConfigured = apperror.New(http.StatusServiceUnavailable, "payment gateway not configured")
)

// Intent is a payment intent created with the payment provider.
type Intent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
}

// Provider creates payment intents for an amount in minor currency units.
type Provider interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (*Intent, error)
}
