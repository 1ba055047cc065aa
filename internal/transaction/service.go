package transaction

import (
	"context"
	"strings"
)

// Service defines business logic related to payment transactions.
type Service interface {
	Create(ctx context.Context, t *Transaction) (*Transaction, error)
	History(ctx context.Context, uid string) ([]*History, error)
}

type service struct {
	repo Repository
}

// NewService creates a new transaction Service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, t *Transaction) (*Transaction, error) {
	t.UID = strings.TrimSpace(t.UID)
	if t.UID == "" {
		return nil, ErrUIDRequired
	}
	t.TransactionID = strings.TrimSpace(t.TransactionID)
	if t.TransactionID == "" {
		return nil, ErrTransactionIDRequired
	}
	if t.Amount < 0 {
		return nil, ErrInvalidAmount
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) History(ctx context.Context, uid string) ([]*History, error) {
	if strings.TrimSpace(uid) == "" {
		return nil, ErrUIDRequired
	}
	return s.repo.ListHistory(ctx, uid)
}
