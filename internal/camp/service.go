package camp

import (
	"context"
	"strings"
)

// Service defines business logic related to camps.
type Service interface {
	List(ctx context.Context, filter Filter) ([]*Camp, error)
	Popular(ctx context.Context) ([]*Camp, error)
	Search(ctx context.Context, pattern string) ([]*Camp, error)
	GetByID(ctx context.Context, id string) (*Camp, error)
	Create(ctx context.Context, c *Camp) (*Camp, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Camp, error)
	Delete(ctx context.Context, id string) error
	IncrementParticipants(ctx context.Context, id string) (int, error)
}

type service struct {
	repo Repository
}

// NewService creates a new camp Service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Camp, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Popular(ctx context.Context) ([]*Camp, error) {
	return s.repo.Popular(ctx, PopularLimit)
}

// Search with an empty pattern matches every camp.
func (s *service) Search(ctx context.Context, pattern string) ([]*Camp, error) {
	if pattern == "" {
		return s.repo.List(ctx, Filter{})
	}
	return s.repo.Search(ctx, pattern)
}

func (s *service) GetByID(ctx context.Context, id string) (*Camp, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, c *Camp) (*Camp, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return nil, ErrNameRequired
	}
	if c.Fees < 0 {
		return nil, ErrInvalidFees
	}
	c.ParticipantCount = 0

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Camp, error) {
	if req.Name != nil {
		n := strings.TrimSpace(*req.Name)
		if n == "" {
			return nil, ErrNameRequired
		}
		req.Name = &n
	}
	if req.Fees != nil && *req.Fees < 0 {
		return nil, ErrInvalidFees
	}
	return s.repo.Update(ctx, id, req)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) IncrementParticipants(ctx context.Context, id string) (int, error) {
	return s.repo.IncrementParticipants(ctx, id)
}
