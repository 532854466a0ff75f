package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Dosada05/matchmerit/models"
	"github.com/Dosada05/matchmerit/repositories"
	"github.com/Dosada05/matchmerit/utils"
)

type UserService interface {
	GetUser(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*models.User, error)
}

// UpdateProfileInput carries a partial profile update. Only the owner of the
// profile may change it.
type UpdateProfileInput struct {
	UserID      string  `json:"-"`
	RequesterID string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Password    *string `json:"password,omitempty"`
}

type userService struct {
	userRepo repositories.UserRepository
	now      func() time.Time
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
		now:      time.Now,
	}
}

func (s *userService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user %s: %w", userID, err)
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*models.User, error) {
	if input.Name == nil && input.Email == nil && input.Password == nil {
		return nil, ErrRequiredFieldMissing.withDetail("no fields provided for update")
	}
	if input.UserID != input.RequesterID {
		return nil, ErrInsufficientPermissions
	}

	user, err := s.GetUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrRequiredFieldMissing.withDetail("name must not be empty")
		}
		user.Name = name
	}
	if input.Email != nil {
		email := strings.TrimSpace(*input.Email)
		if !utils.IsValidEmail(email) {
			return nil, ErrInvalidEmailFormat
		}
		user.Email = email
	}
	if input.Password != nil {
		if *input.Password == "" {
			return nil, ErrRequiredFieldMissing.withDetail("password must not be empty")
		}
		hashedPassword, err := utils.HashPassword(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hashedPassword
	}
	user.UpdatedAt = s.now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user %s: %w", user.ID, err)
	}
	return user, nil
}
