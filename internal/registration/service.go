package registration

import (
	"context"
	"strings"
)

// Service defines business logic related to camp registrations.
type Service interface {
	Create(ctx context.Context, r *Registration) (*Registration, error)
	List(ctx context.Context) ([]*Registration, error)
	ListByParticipant(ctx context.Context, uid string) ([]*Registration, error)
	GetByID(ctx context.Context, id string) (*Registration, error)
	OwnerOf(ctx context.Context, id string) (string, error)
	MarkPaid(ctx context.Context, id string) (*Registration, error)
	MarkFeedbackGiven(ctx context.Context, id string) (*Registration, error)
	Confirm(ctx context.Context, id string) (*Registration, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

// NewService creates a new registration Service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create stores a new registration. Status flags always start lowered.
func (s *service) Create(ctx context.Context, r *Registration) (*Registration, error) {
	r.ParticipantUID = strings.TrimSpace(r.ParticipantUID)
	if r.ParticipantUID == "" {
		return nil, ErrParticipantRequired
	}
	if r.Age < 0 || r.Age > 150 {
		return nil, ErrInvalidAge
	}
	r.ParticipantEmail = strings.ToLower(strings.TrimSpace(r.ParticipantEmail))
	r.PaymentStatus = false
	r.ConfirmationStatus = false
	r.FeedbackStatus = false

	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) List(ctx context.Context) ([]*Registration, error) {
	return s.repo.List(ctx, Filter{})
}

func (s *service) ListByParticipant(ctx context.Context, uid string) ([]*Registration, error) {
	if strings.TrimSpace(uid) == "" {
		return nil, ErrParticipantRequired
	}
	return s.repo.List(ctx, Filter{ParticipantUID: uid})
}

func (s *service) GetByID(ctx context.Context, id string) (*Registration, error) {
	return s.repo.GetByID(ctx, id)
}

// OwnerOf returns the participant uid of a registration.
func (s *service) OwnerOf(ctx context.Context, id string) (string, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return r.ParticipantUID, nil
}

func (s *service) MarkPaid(ctx context.Context, id string) (*Registration, error) {
	return s.repo.SetStatus(ctx, id, StatusPaid)
}

func (s *service) MarkFeedbackGiven(ctx context.Context, id string) (*Registration, error) {
	return s.repo.SetStatus(ctx, id, StatusFeedbackGave)
}

func (s *service) Confirm(ctx context.Context, id string) (*Registration, error) {
	return s.repo.SetStatus(ctx, id, StatusConfirmed)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
