package payment

import (
	"context"
	"math"
)

// Service defines business logic for taking payments.
type Service interface {
	CreateIntent(ctx context.Context, price *float64) (*Intent, error)
}

type service struct {
	provider Provider
	currency string
}

// NewService creates a payment Service. A nil provider means payments are not
// configured and every request fails with ErrNotConfigured.
func NewService(provider Provider, currency string) Service {
	return &service{provider: provider, currency: currency}
}

// CreateIntent converts price to minor units and asks the provider for an
// intent. Missing, zero or negative prices never reach the provider.
func (s *service) CreateIntent(ctx context.Context, price *float64) (*Intent, error) {
	amount, err := MinorUnits(price)
	if err != nil {
		return nil, err
	}
	if s.provider == nil {
		return nil, ErrNotConfigured
	}
	return s.provider.CreateIntent(ctx, amount, s.currency)
}

// maxPrice keeps price*100 well inside int64.
const maxPrice = 1e15

// MinorUnits returns round(price*100).
func MinorUnits(price *float64) (int64, error) {
	if price == nil || math.IsNaN(*price) || math.IsInf(*price, 0) || *price <= 0 || *price > maxPrice {
		return 0, ErrInvalidPrice
	}
	amount := int64(math.Round(*price * 100))
	if amount < 1 {
		return 0, ErrInvalidPrice
	}
	return amount, nil
}
