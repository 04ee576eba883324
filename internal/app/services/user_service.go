package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rashed/campschool/internal/app/models"
	"github.com/rashed/campschool/internal/app/models/dto"
	"github.com/rashed/campschool/internal/app/repositories"
	"github.com/rashed/campschool/internal/pkg/apperrors"
)

// UserService handles user-related operations
type UserService interface {
	AddUser(ctx context.Context, req dto.AddUserRequest) (int64, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	GetInstructors(ctx context.Context) ([]*models.User, error)
	SetRole(ctx context.Context, id int64, role string) (int64, error)
	HasRole(ctx context.Context, email string, role models.RoleType) (bool, error)
}

type userService struct {
	userRepo repositories.IUserRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repositories.IUserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// AddUser registers a user with the student role. A user whose email is
// already present is reported via ErrUserAlreadyExists; the check is
// opportunistic, not a store-level constraint.
func (s *userService) AddUser(ctx context.Context, req dto.AddUserRequest) (int64, error) {
	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return 0, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return 0, apperrors.ErrUserAlreadyExists
	}

	user := &models.User{
		Name:      req.Name,
		Email:     req.Email,
		PhotoURL:  req.PhotoURL,
		Role:      models.RoleStudent,
		CreatedAt: time.Now(),
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// GetAllUsers retrieves every registered user
func (s *userService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	return users, nil
}

// GetInstructors retrieves instructor-role users, newest first
func (s *userService) GetInstructors(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.GetByRole(ctx, models.RoleInstructor)
	if err != nil {
		return nil, fmt.Errorf("error retrieving instructors: %w", err)
	}
	return users, nil
}

// SetRole assigns a role to a user by id and reports the modified count
func (s *userService) SetRole(ctx context.Context, id int64, role string) (int64, error) {
	modified, err := s.userRepo.SetRole(ctx, id, models.RoleType(role))
	if err != nil {
		return 0, fmt.Errorf("error setting role: %w", err)
	}
	return modified, nil
}

// HasRole reports whether the user registered under email holds the role.
// An unknown email answers false rather than erroring, matching the
// original's optional-chaining lookup.
func (s *userService) HasRole(ctx context.Context, email string, role models.RoleType) (bool, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("error retrieving user: %w", err)
	}

	return user.Role == role, nil
}
