package feedback

import (
	"context"
	"strings"
)

// Service defines business logic related to camp feedback.
type Service interface {
	Create(ctx context.Context, f *Feedback) (*Feedback, error)
	List(ctx context.Context) ([]*Feedback, error)
}

type service struct {
	repo Repository
}

// NewService creates a new feedback Service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, f *Feedback) (*Feedback, error) {
	if strings.TrimSpace(f.ParticipantUID) == "" {
		return nil, ErrUIDRequired
	}
	if f.Rating < 1 || f.Rating > 5 {
		return nil, ErrInvalidRating
	}
	f.Comment = strings.TrimSpace(f.Comment)

	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) List(ctx context.Context) ([]*Feedback, error) {
	return s.repo.ListPublic(ctx)
}
