package user

import (
	"context"
	"errors"
	"strings"
)

// Service defines business logic related to users.
type Service interface {
	GetByUID(ctx context.Context, uid string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Create(ctx context.Context, u *User) (*User, error)
	SignInWithGoogle(ctx context.Context, u *User) (bool, error)
	UpdateProfile(ctx context.Context, uid string, upd ProfileUpdate) (*User, error)
	IsAdmin(ctx context.Context, uid string) (bool, error)
}

type service struct {
	repo Repository
}

// NewService creates a new user Service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByUID(ctx context.Context, uid string) (*User, error) {
	return s.repo.GetByUID(ctx, uid)
}

func (s *service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

// Create stores a new ordinary user. Admins are only ever promoted out of band.
func (s *service) Create(ctx context.Context, u *User) (*User, error) {
	if err := normalize(u); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// SignInWithGoogle records a social sign-in. Repeated calls for the same uid
// leave exactly one row and report false.
func (s *service) SignInWithGoogle(ctx context.Context, u *User) (bool, error) {
	if err := normalize(u); err != nil {
		return false, err
	}
	return s.repo.CreateIfAbsent(ctx, u)
}

func (s *service) UpdateProfile(ctx context.Context, uid string, upd ProfileUpdate) (*User, error) {
	if strings.TrimSpace(uid) == "" {
		return nil, ErrUIDRequired
	}
	if upd.Email != nil {
		e := normalizeEmail(*upd.Email)
		upd.Email = &e
	}
	return s.repo.Upsert(ctx, uid, upd)
}

// IsAdmin reads the row on every call. A missing user is simply not an admin.
func (s *service) IsAdmin(ctx context.Context, uid string) (bool, error) {
	u, err := s.repo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return u.IsAdmin(), nil
}

func normalize(u *User) error {
	u.UID = strings.TrimSpace(u.UID)
	if u.UID == "" {
		return ErrUIDRequired
	}
	u.Email = normalizeEmail(u.Email)
	u.Name = strings.TrimSpace(u.Name)
	u.Role = RoleUser
	return nil
}

// normalizeEmail trims spaces and lowercases the email.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
