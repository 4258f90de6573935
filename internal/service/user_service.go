package service

import (
	"context"
	"errors"
	"fmt"

	"campmed/internal/model"
	"campmed/internal/repository"
)

// ErrUserAlreadyExists is returned when a user with the email is already stored.
var ErrUserAlreadyExists = errors.New("user already exists")

// UserService exposes user operations.
type UserService interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) (*repository.InsertResult, error)
	UpdateProfile(ctx context.Context, id string, profile model.UserProfile) (*repository.UpdateResult, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
}

type userService struct {
	repo        repository.UserRepository
	phoneRegion string
}

// NewUserService builds a UserService. phoneRegion is the region assumed for
// contact numbers given without a country code.
func NewUserService(repo repository.UserRepository, phoneRegion string) UserService {
	return &userService{repo: repo, phoneRegion: phoneRegion}
}

func (s *userService) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

// CreateUser stores the user on first sign-in. The role is always member;
// admins are promoted out of band.
func (s *userService) CreateUser(ctx context.Context, user *model.User) (*repository.InsertResult, error) {
	existing, err := s.repo.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("check user existence: %w", err)
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	contact, err := normalizeContact(user.Contact, s.phoneRegion)
	if err != nil {
		return nil, err
	}
	user.Contact = contact
	user.Role = model.RoleMember

	res, err := s.repo.Create(ctx, user)
	if repository.IsDuplicateKey(err) {
		return nil, ErrUserAlreadyExists
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id string, profile model.UserProfile) (*repository.UpdateResult, error) {
	contact, err := normalizeContact(profile.Contact, s.phoneRegion)
	if err != nil {
		return nil, err
	}
	profile.Contact = contact
	return s.repo.UpdateProfile(ctx, id, profile)
}

func (s *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}
