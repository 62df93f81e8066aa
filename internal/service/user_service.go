package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"feedbackboard/internal/auth"
	apperrors "feedbackboard/internal/errors"
	"feedbackboard/internal/model"
	"feedbackboard/internal/repository"
)

// UserService exposes account operations.
type UserService interface {
	Register(ctx context.Context, username, password, email, firstName, lastName string) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
	Get(ctx context.Context, username string) (*model.User, error)
	Delete(ctx context.Context, username string) error
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// Register creates a new user with a hashed password. Duplicate usernames and
// emails come back as field-attributable errors for the registration form.
func (s *userService) Register(ctx context.Context, username, password, email, firstName, lastName string) (*model.User, error) {
	if existing, err := s.repo.FindByUsername(ctx, username); err == nil && existing != nil {
		return nil, apperrors.ErrUsernameTaken
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existing, err := s.repo.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:  username,
		Password:  hashed,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		// A concurrent registration can still trip the unique constraint.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Authenticate verifies credentials. Unknown usernames and wrong passwords
// return the same error so responses cannot enumerate accounts.
func (s *userService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPassword(password, user.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// Get returns a user with their feedback preloaded.
func (s *userService) Get(ctx context.Context, username string) (*model.User, error) {
	return s.repo.FindWithFeedback(ctx, username)
}

// Delete removes the user and, by cascade, all their feedback.
func (s *userService) Delete(ctx context.Context, username string) error {
	return s.repo.Delete(ctx, username)
}
